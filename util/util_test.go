package util

import (
	"bytes"
	"heckel.io/miniupload/test"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestBytesToHuman(t *testing.T) {
	test.StrEquals(t, "10 B", BytesToHuman(10))
	test.StrEquals(t, "1.0 kB", BytesToHuman(1024))
	test.StrEquals(t, "10.8 MB", BytesToHuman(11324620))
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()
	test.StrEquals(t, filepath.Join(dir, "a", "b.txt"), ResolvePath(dir, filepath.Join("a", "b.txt")))
	abs := filepath.Join(dir, "c.txt")
	test.StrEquals(t, abs, ResolvePath("/somewhere/else", abs))
}

func TestIsTerminal_NotAFile(t *testing.T) {
	test.BoolEquals(t, false, IsTerminal(&bytes.Buffer{}))
}

func TestCheckReadable_Exists(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(filename, []byte("hi"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := CheckReadable(filename); err != nil {
		t.Fatal(err)
	}
}

func TestCheckReadable_Missing(t *testing.T) {
	err := CheckReadable(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestNewHTTPClient_DoesNotFollowRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/elsewhere" {
			t.Fatal("redirect should not have been followed")
		}
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	}))
	defer server.Close()

	resp, err := NewHTTPClient().Get(server.URL + "/file")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	test.IntEquals(t, http.StatusFound, resp.StatusCode)
	test.StrEquals(t, "/elsewhere", resp.Header.Get("Location"))
}
