package config

import (
	"heckel.io/miniupload/test"
	"testing"
)

func TestJoinURL(t *testing.T) {
	test.StrEquals(t, "http://x/upload?path=/", joinURL("http://x/", "upload?path=/"))
	test.StrEquals(t, "http://x/upload?path=/", joinURL("http://x", "upload?path=/"))
	test.StrEquals(t, "upload?path=/", joinURL("", "upload?path=/"))
	test.StrEquals(t, "http://x/docs/a.txt", joinURL("http://x/", "docs", "a.txt"))
	test.StrEquals(t, "http://x/docs/a.txt", joinURL("http://x/", "/docs/", "/a.txt"))
	test.StrEquals(t, "http://x/a.txt", joinURL("http://x/", "", "a.txt"))
	test.StrEquals(t, "http://x/a/b/c.txt", joinURL("http://x/", "a/b", "c.txt"))
	test.StrEquals(t, "http://x/", joinURL("http://x/"))
}

func TestTrimSlashes(t *testing.T) {
	test.StrEquals(t, "docs", trimSlashes("/docs/"))
	test.StrEquals(t, "a/b", trimSlashes("a/b//"))
	test.StrEquals(t, "", trimSlashes("/"))
}
