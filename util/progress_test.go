package util

import (
	"io"
	"strings"
	"testing"
	"time"
)

type progressRecorder struct {
	ticks     int
	processed int64
	total     int64
	done      bool
}

func (p *progressRecorder) fn(processed int64, total int64, done bool) {
	p.ticks++
	p.processed = processed
	p.total = total
	p.done = done
}

func TestProgressReader_NoDelay(t *testing.T) {
	rec := &progressRecorder{}
	r := io.NopCloser(strings.NewReader("this is a 34 byte long test string"))
	p := NewProgressReaderWithDelay(r, 34, rec.fn, 0, 50*time.Millisecond)

	// First read reports immediately
	if _, err := p.Read(make([]byte, 11)); err != nil {
		t.Fatal(err)
	}
	if rec.ticks != 1 || rec.processed != 11 || rec.total != 34 {
		t.Fatalf("unexpected progress after first read: %+v", rec)
	}

	// Second read within the interval is not reported
	if _, err := p.Read(make([]byte, 3)); err != nil {
		t.Fatal(err)
	}
	if rec.ticks != 1 {
		t.Fatalf("expected 1 tick, got %d", rec.ticks)
	}

	// Third read after the interval is reported
	time.Sleep(60 * time.Millisecond)
	if _, err := p.Read(make([]byte, 999)); err != nil {
		t.Fatal(err)
	}
	if rec.ticks != 2 || rec.processed != 34 {
		t.Fatalf("unexpected progress after third read: %+v", rec)
	}

	// Close reports done exactly once
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	p.Close()
	if rec.ticks != 3 || !rec.done || rec.processed != 34 {
		t.Fatalf("unexpected progress after close: %+v", rec)
	}
}

func TestProgressReader_WithDelay(t *testing.T) {
	rec := &progressRecorder{}
	r := io.NopCloser(strings.NewReader("short"))
	p := NewProgressReaderWithDelay(r, -1, rec.fn, time.Hour, time.Millisecond)
	if _, err := io.ReadAll(p); err != nil {
		t.Fatal(err)
	}
	if rec.ticks != 0 {
		t.Fatalf("expected no ticks before delay, got %d", rec.ticks)
	}
	p.Close()
	if rec.ticks != 1 || !rec.done || rec.processed != 5 || rec.total != -1 {
		t.Fatalf("unexpected progress after close: %+v", rec)
	}
}
