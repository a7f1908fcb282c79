package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// Build information injected at build time via ldflags.
var (
	Commit  = "unknown"
	Version = "dev"
)

const appName = "pomodoro"

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name(appName),
		kong.Description("A pomodoro timer for the desktop and the terminal"),
		kong.Vars{
			"version": fmt.Sprintf("%s %s (commit: %s)", appName, Version, Commit),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	defer cli.Close()

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
