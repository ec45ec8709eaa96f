// Package configcmd implements the "config" command.
package configcmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/babelkit/internal/core/config"
	"github.com/nightconcept/babelkit/internal/core/fsys"
)

func configPath(c *cli.Context) string {
	if p := c.String("config"); p != "" {
		return p
	}
	return config.DefaultPath()
}

// NewConfigCommand creates the "config" command with show and init subcommands.
func NewConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Show or create the babelkit config file",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Print the effective configuration",
				Action: showAction,
			},
			{
				Name:  "init",
				Usage: "Write a config file with the default settings",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Overwrite an existing config file",
					},
				},
				Action: initAction,
			},
		},
	}
}

func showAction(c *cli.Context) error {
	path := configPath(c)
	cfg, err := config.Load(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to load config %s: %v", path, err), 1)
	}
	data, err := config.Encode(cfg)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to encode config: %v", err), 1)
	}
	_, _ = fmt.Fprintf(c.App.Writer, "# %s\n%s", path, data)
	return nil
}

func initAction(c *cli.Context) error {
	path := configPath(c)
	exists, err := fsys.Exists(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if exists && !c.Bool("force") {
		return cli.Exit(fmt.Sprintf("Config file %s already exists. Use --force to overwrite.", path), 1)
	}
	if err := config.Write(path, config.Default()); err != nil {
		return cli.Exit(fmt.Sprintf("Failed to write config %s: %v", path, err), 1)
	}
	_, _ = fmt.Fprintf(c.App.Writer, "Wrote %s\n", path)
	return nil
}
