package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/babelkit/internal/cli/configcmd"
	"github.com/nightconcept/babelkit/internal/cli/create"
	"github.com/nightconcept/babelkit/internal/cli/self"
)

var version = "v0.1.0"

func main() {
	app := &cli.App{
		Name:    "babelkit",
		Usage:   "Interactively scaffold a babel project",
		Version: version,
		Flags:   create.Flags(),
		Action:  create.Action,
		Commands: []*cli.Command{
			create.Command(),
			configcmd.NewConfigCommand(),
			self.NewSelfCommand(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
