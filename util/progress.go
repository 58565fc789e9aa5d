package util

import (
	"golang.org/x/time/rate"
	"io"
	"time"
)

const (
	defaultProgressDelay    = time.Second
	defaultProgressInterval = 150 * time.Millisecond
)

// ProgressReader counts the bytes read through it and reports them to a callback, at most once per interval.
// It is not safe for concurrent use; uploads and downloads read it from a single goroutine.
// Originally from https://github.com/machinebox/progress (Apache License 2.0)
type ProgressReader struct {
	reader    io.ReadCloser
	processed int64
	total     int64
	fn        ProgressFunc
	started   time.Time
	delay     time.Duration
	limiter   *rate.Limiter
	done      bool
}

// ProgressFunc is callback that is called during uploads and downloads to indicate progress to the user.
type ProgressFunc func(processed int64, total int64, done bool)

// NewProgressReader creates a new ProgressReader using fn as the callback function for progress updates,
// and total as the optional max value that is passed through to fn. This constructor uses the default
// progress delay and interval.
func NewProgressReader(r io.ReadCloser, total int64, fn ProgressFunc) *ProgressReader {
	return NewProgressReaderWithDelay(r, total, fn, defaultProgressDelay, defaultProgressInterval)
}

// NewProgressReaderWithDelay creates a new ProgressReader using fn as the callback function for progress updates,
// and total as the optional max value that is passed through to fn. The progress function is triggered at most
// once per interval, and only after certain delay.
func NewProgressReaderWithDelay(r io.ReadCloser, total int64, fn ProgressFunc, delay time.Duration, interval time.Duration) *ProgressReader {
	return &ProgressReader{
		reader:    r,
		processed: 0,
		total:     total,
		fn:        fn,
		started:   time.Now(),
		delay:     delay,
		limiter:   rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Read passes reads through to the underlying reader, but also updates the internal state of how many bytes
// have been processed.
func (r *ProgressReader) Read(p []byte) (n int, err error) {
	n, err = r.reader.Read(p)
	r.processed += int64(n)
	if n > 0 && time.Since(r.started) >= r.delay && r.limiter.Allow() {
		r.fn(r.processed, r.total, false)
	}
	return
}

// Close closes the underlying reader. The first call also calls the callback function one last time,
// with the "done" flag set.
func (r *ProgressReader) Close() error {
	err := r.reader.Close()
	if !r.done {
		r.done = true
		r.fn(r.processed, r.total, true)
	}
	return err
}
