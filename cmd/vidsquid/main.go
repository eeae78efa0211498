package main

import (
	"os"

	"github.com/cameronspears/vidsquid/internal/cli"
	"github.com/cameronspears/vidsquid/internal/ui"
)

func main() {
	app := cli.NewApp("dev", ui.Run)
	if err := app.Execute(os.Args[1:]); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
