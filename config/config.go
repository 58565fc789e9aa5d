// Package config provides the persisted miniupload configuration and the logic to resolve its effective
// values against the environment
package config

import (
	"fmt"
)

const (
	// AppName is the application name under which the config file is stored
	AppName = "MiniUpload"

	// CurrentVersion is the schema version written to new config files
	CurrentVersion = 0

	// EnvTarget overrides the persisted target (base URL of the file server)
	EnvTarget = "MINIUPLOAD_TARGET"

	// EnvFolder overrides the persisted remote folder
	EnvFolder = "MINIUPLOAD_FOLDER"

	// EnvConfigDir allows overriding the user-specific config dir
	EnvConfigDir = "MINIUPLOAD_CONFIG_DIR"

	uploadSuffix = "upload?path=/"
)

// Config is the persisted record. It is created with empty defaults, changed only by the "config" command,
// and read by the upload and download commands. Values are not validated; a malformed target simply
// results in a malformed URL.
type Config struct {
	Version int    `toml:"version"`
	Target  string `toml:"target"`
	Folder  string `toml:"folder"`
}

// New returns the default config
func New() *Config {
	return &Config{
		Version: CurrentVersion,
		Target:  "",
		Folder:  "",
	}
}

// Effective combines the config with the environment snapshot env. The returned values prefer the
// environment over the persisted values.
func (c *Config) Effective(env Env) *Effective {
	return &Effective{
		config: c,
		env:    env,
	}
}

// Effective resolves the values that are actually used for uploads and downloads
type Effective struct {
	config *Config
	env    Env
}

// Target returns the value of MINIUPLOAD_TARGET if it is present (even if it is empty),
// and the persisted target otherwise.
func (e *Effective) Target() string {
	if target, ok := e.env.Lookup(EnvTarget); ok {
		return target
	}
	return e.config.Target
}

// Folder returns the value of MINIUPLOAD_FOLDER if it is present (even if it is empty),
// and the persisted folder otherwise.
func (e *Effective) Folder() string {
	if folder, ok := e.env.Lookup(EnvFolder); ok {
		return folder
	}
	return e.config.Folder
}

// UploadURL returns the URL that files and folder creation requests are POSTed to,
// e.g. "http://x/upload?path=/" for the target "http://x/".
func (e *Effective) UploadURL() string {
	return joinURL(e.Target(), uploadSuffix)
}

// FolderUploadURL returns the upload URL pointing into the remote folder, e.g.
// "http://x/upload?path=/docs/". Without a folder, this is the same as UploadURL.
func (e *Effective) FolderUploadURL() string {
	upload := e.UploadURL()
	folder := trimSlashes(e.Folder())
	if folder == "" {
		return upload
	}
	return fmt.Sprintf("%s%s/", upload, folder)
}

// DownloadURL returns the URL of the remote file name, e.g. "http://x/docs/a.txt" for the
// target "http://x/" and the folder "docs", or "http://x/a.txt" if no folder is set.
func (e *Effective) DownloadURL(name string) string {
	return joinURL(e.Target(), e.Folder(), name)
}
