package cmd

import (
	"errors"
	"github.com/urfave/cli/v2"
)

var cmdUpload = &cli.Command{
	Name:      "upload",
	Aliases:   []string{"u"},
	Usage:     "Upload a file to the file server",
	UsageText: "miniupload upload [OPTIONS..] FILE",
	Action:    execUpload,
	Flags:     transferFlags,
	Description: `Uploads FILE to the configured target. If a folder is configured, the command
first asks the server to create it, and then uploads the file into it.

The target and folder are read from the config file (see 'miniupload config'), unless
they are overridden via the MINIUPLOAD_TARGET and MINIUPLOAD_FOLDER environment variables.

Examples:
  miniupload upload notes.txt                          # Uploads notes.txt to the configured folder
  MINIUPLOAD_FOLDER=tmp miniupload upload notes.txt    # Uploads notes.txt to the 'tmp' folder`,
}

func execUpload(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("invalid syntax: exactly one FILE argument expected, see 'miniupload upload --help'")
	}
	uclient, err := newClient(c)
	if err != nil {
		return err
	}
	return uclient.Upload(c.Args().First())
}
