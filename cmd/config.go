package cmd

import (
	"fmt"
	"github.com/urfave/cli/v2"
	"heckel.io/miniupload/config"
)

var cmdConfig = &cli.Command{
	Name:      "config",
	Aliases:   []string{"c"},
	Usage:     "Set configuration options for this tool",
	UsageText: "miniupload config [OPTIONS..]",
	Action:    execConfig,
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "folder", Aliases: []string{"f"}, Usage: "set the folder to use for uploads and downloads to `FOLDER`"},
		&cli.StringFlag{Name: "address", Aliases: []string{"a"}, Usage: "set the server address to `ADDR`, e.g. http://myhost:8080/"},
		&cli.BoolFlag{Name: "print", Aliases: []string{"p"}, Usage: "print the currently configured values"},
		&cli.BoolFlag{Name: "path", Usage: "print the location of the config file"},
	},
	Description: `Updates and/or prints the persisted configuration. The config file is written on every
invocation, even if nothing was changed.

The printed values are the effective values: if MINIUPLOAD_TARGET or MINIUPLOAD_FOLDER
are set (even to an empty value), they take precedence over the config file.

Examples:
  miniupload config -a http://myhost:8080/      # Sets the server address
  miniupload config -f docs -p                  # Sets the folder and prints the config
  miniupload config -f ""                       # Clears the folder`,
}

func execConfig(c *cli.Context) error {
	store, conf, env, err := loadConfig()
	if err != nil {
		return err
	}
	if c.IsSet("folder") {
		conf.Folder = c.String("folder")
	}
	if c.IsSet("address") {
		conf.Target = c.String("address")
	}
	if c.Bool("print") {
		effective := conf.Effective(env)
		fmt.Fprintf(c.App.Writer, "Current Target: %s\n", effective.Target())
		fmt.Fprintf(c.App.Writer, "Current Folder: %s\n", effective.Folder())
	}
	if c.Bool("path") {
		fmt.Fprintln(c.App.Writer, store.FileFromName(config.AppName))
	}
	return store.Save(config.AppName, conf)
}
