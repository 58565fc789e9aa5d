// Package test provides assertion helpers for the miniupload tests
package test

import (
	"os"
	"strings"
	"testing"
)

// StrEquals tests two strings for equality and fails t if they are not equal
func StrEquals(t *testing.T, expected string, actual string) {
	t.Helper()
	if actual != expected {
		t.Fatalf("expected %s, got %s", expected, actual)
	}
}

// StrContains tests if substr is contained in s and fails t if it is not
func StrContains(t *testing.T, s string, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Fatalf("expected %s to be contained in string, but it wasn't: %s", substr, s)
	}
}

// IntEquals tests two ints for equality and fails t if they are not equal
func IntEquals(t *testing.T, expected int, actual int) {
	t.Helper()
	if actual != expected {
		t.Fatalf("expected %d, got %d", expected, actual)
	}
}

// BoolEquals tests if two bools for equality and fails t if they are not equal
func BoolEquals(t *testing.T, expected bool, actual bool) {
	t.Helper()
	if actual != expected {
		t.Fatalf("expected %t, got %t", expected, actual)
	}
}

// FileNotExist asserts that a file does not exist and fails t if it does
func FileNotExist(t *testing.T, filename string) {
	t.Helper()
	if stat, _ := os.Stat(filename); stat != nil {
		t.Fatalf("expected file %s to not exist, but it does", filename)
	}
}

// FileExist asserts that a file exists and fails t if it does not
func FileExist(t *testing.T, filename string) {
	t.Helper()
	if stat, _ := os.Stat(filename); stat == nil {
		t.Fatalf("expected file %s to exist, but it does not", filename)
	}
}

// FileContentEquals asserts that a file exists and has the expected content, and fails t otherwise
func FileContentEquals(t *testing.T, expected string, filename string) {
	t.Helper()
	b, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	StrEquals(t, expected, string(b))
}
