// Package create implements the interactive babel project scaffold.
package create

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/babelkit/internal/core/config"
	"github.com/nightconcept/babelkit/internal/core/console"
	"github.com/nightconcept/babelkit/internal/core/fsys"
	"github.com/nightconcept/babelkit/internal/core/options"
	"github.com/nightconcept/babelkit/internal/core/prompt"
	"github.com/nightconcept/babelkit/internal/core/registry"
	"github.com/nightconcept/babelkit/internal/core/resolver"
	"github.com/nightconcept/babelkit/internal/core/runner"
	"github.com/nightconcept/babelkit/internal/core/scaffold"
)

// ErrQuit is returned by CollectOptions when the user picks Quit.
var ErrQuit = errors.New("quit")

const (
	actionCreate = "create"
	actionQuit   = "quit"
)

// Flags are the global flags read by the create flow.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose output",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to the babelkit config file",
		},
	}
}

// CollectOptions asks the scaffold questions in order and returns the answers.
func CollectOptions(asker prompt.Asker) (options.Options, error) {
	var opts options.Options

	action, err := asker.Select("What would you like to do?", []prompt.Choice{
		{Label: "Create a new babel project", Value: actionCreate},
		{Label: "Quit", Value: actionQuit},
	})
	if err != nil {
		return opts, err
	}
	if action == actionQuit {
		return opts, ErrQuit
	}

	confirms := []struct {
		message string
		target  *bool
	}{
		{"Do you want to use flow for type checking?", &opts.Flow},
		{"Do you want to use ESLint?", &opts.ESLint},
		{"Do you want to use mocha & chai for testing", &opts.Mocha},
		{"Do you plan to publish this on npm?", &opts.Publish},
	}
	for _, q := range confirms {
		if *q.target, err = asker.Confirm(q.message); err != nil {
			return opts, err
		}
	}

	kind, err := asker.Select("Does this package execute or is it imported?", []prompt.Choice{
		{Label: "Executable", Value: "executable"},
		{Label: "Imported", Value: "imported"},
	})
	if err != nil {
		return opts, err
	}
	opts.Executable = kind == "executable"

	if opts.React, err = asker.Confirm("Do you want to use React for the UI?"); err != nil {
		return opts, err
	}
	return opts, nil
}

// Action runs the interactive scaffold in the current directory.
func Action(c *cli.Context) error {
	printer := &console.Printer{Out: c.App.Writer, Err: c.App.ErrWriter, Verbose: c.Bool("verbose")}

	configPath := c.String("config")
	if configPath == "" {
		configPath = config.DefaultPath()
	} else if exists, err := fsys.Exists(configPath); err == nil && !exists {
		printer.Warn("config file %s not found, using defaults", configPath)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to load config %s: %v", configPath, err), 1)
	}
	printer.Debugf("config: %s (registry %s)", configPath, cfg.Registry)

	opts, err := CollectOptions(prompt.New(c.App.Reader, c.App.Writer))
	if errors.Is(err, ErrQuit) || errors.Is(err, prompt.ErrAborted) {
		return nil
	}
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to read answers: %v", err), 1)
	}

	wd, err := os.Getwd()
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to get current directory: %v", err), 1)
	}

	res := resolver.New(registry.New(cfg.Registry))
	res.Timeout = cfg.LookupTimeout()

	s := &scaffold.Scaffolder{
		Runner:      runner.New(),
		Resolver:    res,
		InitCommand: cfg.InitCommand,
		Printer:     printer,
	}
	result, err := s.Run(c.Context, wd, opts)
	if err != nil {
		printer.Error(err)
		return cli.Exit("Failed to create project", 1)
	}

	for _, dep := range result.Dependencies {
		printer.Debugf("%s %s (%s)", dep.Name, dep.Version, dep.Kind)
	}
	printer.Success("Created babel project in %s", result.Dir)
	printer.Step("Run `npm install` to install %d dependencies.", len(result.Dependencies))
	return nil
}

// Command exposes the scaffold as an explicit subcommand.
func Command() *cli.Command {
	return &cli.Command{
		Name:   "create",
		Usage:  "Interactively scaffold a babel project in the current directory",
		Action: Action,
	}
}
