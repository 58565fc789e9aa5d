package main

import (
	"fmt"
	"github.com/urfave/cli/v2"
	"heckel.io/miniupload/cmd"
	"os"
	"runtime"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cli.AppHelpTemplate += fmt.Sprintf(`
Try 'miniupload COMMAND --help' for more information.

miniupload %s (%s), runtime %s, built at %s
`, version, shortCommit(commit), runtime.Version(), date)

	app := cmd.New()
	app.Version = version

	if err := cmd.Run(app, os.Args...); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(cmd.ExitCode(err))
	}
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
