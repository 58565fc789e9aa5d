// Package server provides a minimal file server that speaks the protocol of the miniupload client:
// multipart POSTs to /upload?path=/FOLDER/ with a "path" file field or a "mkdir" field, and plain
// GETs for files. It is used to test the client and CLI end-to-end.
package server

import (
	"errors"
	"fmt"
	"go.uber.org/zap"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const (
	uploadPath     = "/upload"
	queryParamPath = "path"
	formFieldFile  = "path"
	formFieldMkdir = "mkdir"
	maxFormMemory  = 10 << 20
	dirMode        = 0755
	fileMode       = 0644
)

type handleFunc func(http.ResponseWriter, *http.Request) error

// Server serves the files below its root directory
type Server struct {
	dir string
	log *zap.Logger
}

// New creates a new file server rooted at dir. If log is nil, nothing is logged.
func New(dir string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		dir: dir,
		log: log,
	}
}

// ServeHTTP routes the request to the upload or download handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := s.route(r)(w, r); err != nil {
		var httpErr *ErrHTTP
		if errors.As(err, &httpErr) {
			s.fail(w, r, httpErr.Code, err)
		} else {
			s.fail(w, r, http.StatusInternalServerError, err)
		}
	}
}

func (s *Server) route(r *http.Request) handleFunc {
	if r.Method == http.MethodPost && r.URL.Path == uploadPath {
		return s.handleUpload
	} else if r.Method == http.MethodGet {
		return s.handleGet
	}
	return func(http.ResponseWriter, *http.Request) error {
		return ErrHTTPMethodNotAllowed
	}
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) error {
	folder := r.URL.Query().Get(queryParamPath)
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return ErrHTTPBadRequest
	}
	defer r.MultipartForm.RemoveAll()

	for _, dir := range r.MultipartForm.Value[formFieldMkdir] {
		target := s.resolve(folder, dir)
		s.log.Debug("creating folder", zap.String("dir", target))
		if err := os.MkdirAll(target, dirMode); err != nil {
			return err
		}
	}
	for _, fh := range r.MultipartForm.File[formFieldFile] {
		target := s.resolve(folder, fh.Filename)
		s.log.Debug("storing file", zap.String("file", target), zap.Int64("size", fh.Size))
		if err := s.store(fh, target); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("ok\n"))
	return err
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) error {
	target := s.resolve(r.URL.Path)
	stat, err := os.Stat(target)
	if err != nil || stat.IsDir() {
		return ErrHTTPNotFound
	}
	f, err := os.Open(target)
	if err != nil {
		return err
	}
	defer f.Close()
	w.Header().Set("Content-Length", fmt.Sprintf("%d", stat.Size()))
	_, err = io.Copy(w, f)
	return err
}

func (s *Server) store(fh *multipart.FileHeader, target string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	if err := os.MkdirAll(filepath.Dir(target), dirMode); err != nil {
		return err
	}
	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileMode)
	if err != nil {
		return err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	return dst.Close()
}

// resolve joins the given URL path elements and maps them into the root directory. The path is cleaned
// as an absolute path first, so ".." elements cannot escape the root.
func (s *Server) resolve(elems ...string) string {
	clean := path.Clean("/" + strings.Join(elems, "/"))
	return filepath.Join(s.dir, filepath.FromSlash(clean))
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, code int, err error) {
	s.log.Warn("request failed", zap.String("remote", r.RemoteAddr), zap.String("method", r.Method),
		zap.String("uri", r.RequestURI), zap.Error(err))
	w.WriteHeader(code)
	w.Write([]byte(http.StatusText(code)))
}
