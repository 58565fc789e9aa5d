// Package client provides the miniupload client that uploads files to and downloads files from a file server
package client

import (
	"bytes"
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"heckel.io/miniupload/config"
	"heckel.io/miniupload/util"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

const (
	formFieldFile  = "path"
	formFieldMkdir = "mkdir"
)

// Client represents a miniupload client. Each method issues a single blocking request
// (Upload issues two if a folder is configured). There are no retries.
type Client struct {
	config     *config.Effective
	httpClient *http.Client
	log        *zap.Logger
	progress   util.ProgressFunc
	workDir    string
}

// Option configures a Client
type Option func(c *Client)

// WithLogger sets the logger for diagnostic output. Without it, nothing is logged.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithProgress sets a callback that is called while file contents are transferred
func WithProgress(fn util.ProgressFunc) Option {
	return func(c *Client) {
		c.progress = fn
	}
}

// WithWorkingDir sets the directory that relative local paths are resolved against. It defaults
// to the current working directory of the process.
func WithWorkingDir(dir string) Option {
	return func(c *Client) {
		c.workDir = dir
	}
}

// NewClient creates a new miniupload client. The effective target is not validated; an empty or
// malformed target results in a malformed request URL, which fails with ErrTransport.
func NewClient(conf *config.Effective, options ...Option) *Client {
	c := &Client{
		config:     conf,
		httpClient: util.NewHTTPClient(),
		log:        zap.NewNop(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// EnsureFolder asks the server to create the effective remote folder by POSTing a "mkdir" form field to
// the upload URL. If no folder is configured, nothing is sent. The response is discarded.
func (c *Client) EnsureFolder() error {
	folder := c.config.Folder()
	if folder == "" {
		return nil
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField(formFieldMkdir, folder); err != nil {
		return err
	}
	if err := form.Close(); err != nil {
		return err
	}

	url := c.config.UploadURL()
	c.log.Debug("creating remote folder", zap.String("url", url), zap.String("folder", folder))
	req, err := c.newRequest(http.MethodPost, url, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return &ErrTransport{Method: req.Method, URL: url, Err: err}
	}
	c.log.Debug("remote folder response", zap.Int("status", resp.StatusCode))
	return nil
}

// Upload sends the local file to the server as the "path" field of a multipart form. Relative paths are
// resolved against the working directory. If the file does not exist or is not readable, ErrFileNotFound is
// returned before anything is sent. Otherwise the remote folder is created first (see EnsureFolder),
// and the file is then streamed to the folder's upload URL. The response is discarded, unless debug
// logging is enabled, in which case it is logged.
func (c *Client) Upload(localPath string) error {
	filename, err := c.resolve(localPath)
	if err != nil {
		return err
	}
	if err := util.CheckReadable(filename); err != nil {
		return &ErrFileNotFound{Path: filename, Err: err}
	}
	stat, err := os.Stat(filename)
	if err != nil {
		return &ErrFileNotFound{Path: filename, Err: err}
	} else if stat.IsDir() {
		return fmt.Errorf("cannot upload %s: %w", filename, errIsDirectory)
	}

	if err := c.EnsureFolder(); err != nil {
		return err
	}

	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	body, contentType := newMultipartFileReader(formFieldFile, filepath.Base(filename), c.withProgressReader(file, stat.Size()))
	defer body.Close()

	url := c.config.FolderUploadURL()
	c.log.Debug("uploading file", zap.String("url", url), zap.String("file", filename), zap.Int64("size", stat.Size()))
	req, err := c.newRequest(http.MethodPost, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if ce := c.log.Check(zapcore.DebugLevel, "upload response"); ce != nil {
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return &ErrTransport{Method: req.Method, URL: url, Err: err}
		}
		ce.Write(zap.Int("status", resp.StatusCode), zap.String("body", string(b)))
		return nil
	}
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return &ErrTransport{Method: req.Method, URL: url, Err: err}
	}
	return nil
}

// Download fetches the remote file name from the effective folder and streams it into destPath. Relative
// paths are resolved against the working directory. The destination file is created (or truncated) before
// the request is sent. The response status is not checked; whatever the server returns is written.
func (c *Client) Download(name string, destPath string) error {
	filename, err := c.resolve(destPath)
	if err != nil {
		return err
	}
	url := c.config.DownloadURL(name)

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	c.log.Debug("downloading file", zap.String("url", url), zap.String("file", filename))
	req, err := c.newRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	body := c.withProgressReader(resp.Body, resp.ContentLength)
	defer body.Close()

	n, err := io.Copy(f, body)
	if err != nil {
		return fmt.Errorf("cannot download %s to %s: %w", url, filename, err)
	}
	c.log.Debug("download response", zap.Int("status", resp.StatusCode), zap.Int64("bytes", n))
	return f.Close()
}

func (c *Client) newRequest(method string, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		if closer, ok := body.(io.Closer); ok {
			closer.Close()
		}
		return nil, &ErrTransport{Method: method, URL: url, Err: err}
	}
	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ErrTransport{Method: req.Method, URL: req.URL.String(), Err: err}
	}
	return resp, nil
}

func (c *Client) resolve(path string) (string, error) {
	dir := c.workDir
	if dir == "" {
		var err error
		if dir, err = os.Getwd(); err != nil {
			return "", err
		}
	}
	return util.ResolvePath(dir, path), nil
}

func (c *Client) withProgressReader(reader io.ReadCloser, total int64) io.ReadCloser {
	if c.progress != nil {
		return util.NewProgressReader(reader, total, c.progress)
	}
	return reader
}

// newMultipartFileReader returns a reader that produces a multipart form with a single file field, and the
// matching content type. The form is written on the fly, so the file is never held in memory. The file is
// closed before the form is terminated, or when the returned reader is closed early.
func newMultipartFileReader(field string, filename string, file io.ReadCloser) (io.ReadCloser, string) {
	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)
	go func() {
		part, err := form.CreateFormFile(field, filename)
		if err == nil {
			_, err = io.Copy(part, file)
		}
		if err == nil {
			err = form.Close()
		}
		file.Close()
		pw.CloseWithError(err)
	}()
	return pr, form.FormDataContentType()
}
