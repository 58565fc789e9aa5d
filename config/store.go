package config

import (
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	configFileName = "default-config.toml"
	dirMode        = 0700
	fileMode       = 0600
)

// ErrParse is returned if a config file exists, but cannot be decoded
type ErrParse struct {
	Filename string
	Err      error
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("invalid config file %s: %s", e.Filename, e.Err.Error())
}

func (e *ErrParse) Unwrap() error {
	return e.Err
}

// Store represents the per-user config folder. Each application name has its own sub-folder
// with a single config file in it.
type Store struct {
	dir string
}

// NewStore creates a new config store rooted at the directory named by MINIUPLOAD_CONFIG_DIR in env, or
// if that is not set or empty, at the platform's user config dir (e.g. ~/.config on Linux).
func NewStore(env Env) (*Store, error) {
	if dir, _ := env.Lookup(EnvConfigDir); dir != "" {
		return newStoreWithDir(dir), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return newStoreWithDir(dir), nil
}

// newStoreWithDir creates a config store using the given directory as root
func newStoreWithDir(dir string) *Store {
	return &Store{
		dir: dir,
	}
}

// FileFromName returns the config file path for the given application name
func (s *Store) FileFromName(app string) string {
	return filepath.Join(s.dir, strings.ToLower(app), configFileName)
}

// Load reads the config for the given application name. If no config file exists, the default
// config is returned. A config file that cannot be read or decoded results in an error.
func (s *Store) Load(app string) (*Config, error) {
	filename := s.FileFromName(app)
	conf := New()
	if _, err := toml.DecodeFile(filename, conf); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		var perr *fs.PathError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("cannot read config file: %w", err)
		}
		return nil, &ErrParse{Filename: filename, Err: err}
	}
	return conf, nil
}

// Save writes the config for the given application name, creating the config folder if needed.
// There is no locking; concurrent writers may overwrite each other.
func (s *Store) Save(app string, conf *Config) error {
	filename := s.FileFromName(app)
	if err := os.MkdirAll(filepath.Dir(filename), dirMode); err != nil {
		return fmt.Errorf("cannot create config dir: %w", err)
	}
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileMode)
	if err != nil {
		return fmt.Errorf("cannot write config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(conf); err != nil {
		return fmt.Errorf("cannot write config file: %w", err)
	}
	return f.Close()
}
