package main

import (
	"log"
	"os"

	"github.com/cameronspears/vidsquid/internal/cli"
	"github.com/cameronspears/vidsquid/internal/ui"
)

// version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	log.Printf("vidsquid v%s starting...", version)

	app := cli.NewApp(version, ui.Run)
	if err := app.Execute(os.Args[1:]); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
