package cmd

import (
	"errors"
	"github.com/urfave/cli/v2"
)

var cmdDownload = &cli.Command{
	Name:      "download",
	Aliases:   []string{"d"},
	Usage:     "Download a file from the file server",
	UsageText: "miniupload download [OPTIONS..] FILE_NAME DEST",
	Action:    execDownload,
	Flags:     transferFlags,
	Description: `Downloads FILE_NAME from the configured folder on the target and writes it to DEST.
DEST is created or overwritten before the download starts.

Examples:
  miniupload download notes.txt notes.txt      # Downloads notes.txt to the current directory
  miniupload download notes.txt /tmp/n.txt     # Downloads notes.txt to /tmp/n.txt`,
}

func execDownload(c *cli.Context) error {
	if c.NArg() != 2 {
		return errors.New("invalid syntax: FILE_NAME and DEST arguments expected, see 'miniupload download --help'")
	}
	dclient, err := newClient(c)
	if err != nil {
		return err
	}
	return dclient.Download(c.Args().Get(0), c.Args().Get(1))
}
