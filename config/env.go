package config

import (
	"os"
	"strings"
)

// Env is a snapshot of environment variables. Effective values are resolved against a snapshot
// rather than the live process environment.
type Env map[string]string

// OSEnv returns a snapshot of the current process environment
func OSEnv() Env {
	return EnvFromList(os.Environ())
}

// EnvFromList creates a snapshot from a list of "KEY=value" entries, as returned by os.Environ.
// Entries without "=" are treated as present with an empty value. Later entries win.
func EnvFromList(entries []string) Env {
	env := make(Env)
	for _, entry := range entries {
		key, value, _ := strings.Cut(entry, "=")
		if key == "" {
			continue // Windows has entries like "=C:=C:\"
		}
		env[key] = value
	}
	return env
}

// Lookup returns the value of key and whether it is present at all. A present but empty
// variable returns ("", true).
func (e Env) Lookup(key string) (string, bool) {
	value, ok := e[key]
	return value, ok
}
