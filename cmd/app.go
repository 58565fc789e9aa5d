// Package cmd provides the miniupload CLI application
package cmd

import (
	"errors"
	"github.com/urfave/cli/v2"
	"heckel.io/miniupload/client"
	"heckel.io/miniupload/config"
	"heckel.io/miniupload/logger"
	"heckel.io/miniupload/util"
	"os"
)

const (
	// exitCodeFileNotFound is used if the file to upload cannot be found. Unlike other errors, this one
	// is always raised before anything is sent to the server.
	exitCodeFileNotFound = 2
	exitCodeError        = 1
)

var transferFlags = []cli.Flag{
	&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, EnvVars: []string{"MINIUPLOAD_DEBUG"}, Usage: "log requests and server responses to STDERR"},
	&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "do not output progress"},
}

// New creates a new CLI application
func New() *cli.App {
	return &cli.App{
		Name:                   "miniupload",
		Usage:                  "upload files to and download files from a file server",
		UsageText:              "miniupload COMMAND [OPTION..] [ARG..]",
		HideVersion:            true,
		EnableBashCompletion:   true,
		UseShortOptionHandling: true,
		Reader:                 os.Stdin,
		Writer:                 os.Stdout,
		ErrWriter:              os.Stderr,
		Commands: []*cli.Command{
			cmdUpload,
			cmdDownload,
			cmdConfig,
		},
	}
}

// Run runs the CLI application with the given arguments
func Run(app *cli.App, args ...string) error {
	return app.Run(args)
}

// ExitCode returns the process exit code for an error returned by Run
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var notFound *client.ErrFileNotFound
	if errors.As(err, &notFound) {
		return exitCodeFileNotFound
	}
	return exitCodeError
}

// loadConfig loads the persisted config from the user's config store, along with a snapshot of
// the environment to resolve it against.
func loadConfig() (*config.Store, *config.Config, config.Env, error) {
	env := config.OSEnv()
	store, err := config.NewStore(env)
	if err != nil {
		return nil, nil, nil, err
	}
	conf, err := store.Load(config.AppName)
	if err != nil {
		return nil, nil, nil, err
	}
	return store, conf, env, nil
}

func newClient(c *cli.Context) (*client.Client, error) {
	_, conf, env, err := loadConfig()
	if err != nil {
		return nil, err
	}
	options := []client.Option{
		client.WithLogger(logger.New(c.App.ErrWriter, c.Bool("debug"))),
	}
	if !c.Bool("quiet") && util.IsTerminal(c.App.ErrWriter) {
		options = append(options, client.WithProgress(func(processed int64, total int64, done bool) {
			progressOutput(c.App.ErrWriter, processed, total, done)
		}))
	}
	return client.NewClient(conf.Effective(env), options...), nil
}
