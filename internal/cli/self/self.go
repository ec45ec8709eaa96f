// Package self implements commands that manage the babelkit binary itself.
package self

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/urfave/cli/v2"

	"github.com/nightconcept/babelkit/internal/core/console"
)

// DefaultRepository is the GitHub repository releases are fetched from.
const DefaultRepository = "nightconcept/babelkit"

// NewSelfCommand creates the "self" command and its subcommands.
func NewSelfCommand() *cli.Command {
	return &cli.Command{
		Name:  "self",
		Usage: "Manage the babelkit CLI application itself",
		Subcommands: []*cli.Command{
			{
				Name:  "update",
				Usage: "Update babelkit to the latest release",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Automatically confirm the update",
					},
					&cli.BoolFlag{
						Name:  "check",
						Usage: "Check for available updates without installing",
					},
					&cli.StringFlag{
						Name:  "source",
						Usage: "GitHub update source as 'owner/repo'",
						Value: DefaultRepository,
					},
				},
				Action: updateAction,
			},
		},
	}
}

// parseVersion accepts versions with or without a leading "v".
func parseVersion(raw string) (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(raw, "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing version '%s': %w", raw, err)
	}
	return v, nil
}

// parseSource validates an 'owner/repo' slug.
func parseSource(raw string) (string, error) {
	parts := strings.Split(raw, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("invalid --source format, expected 'owner/repo', got: %s", raw)
	}
	return raw, nil
}

func updateAction(c *cli.Context) error {
	printer := &console.Printer{Out: c.App.Writer, Err: c.App.ErrWriter, Verbose: c.Bool("verbose")}
	currentVersion := c.App.Version

	current, err := parseVersion(currentVersion)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	slug, err := parseSource(c.String("source"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	printer.Debugf("current version %s, source %s", current, slug)

	ghSource, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error creating GitHub source: %v", err), 1)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: ghSource})
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to initialize updater: %v", err), 1)
	}

	printer.Step("Checking for latest version...")
	latest, found, err := updater.DetectLatest(c.Context, selfupdate.ParseSlug(slug))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error detecting latest version: %v", err), 1)
	}
	if !found || !latest.GreaterThan(current.String()) {
		printer.Success("Current version %s is already the latest.", currentVersion)
		return nil
	}
	printer.Debugf("latest release %s at %s", latest.Version(), latest.URL)

	printer.Step("New version available: %s (current: %s)", latest.Version(), currentVersion)
	if c.Bool("check") {
		return nil
	}

	if !c.Bool("yes") {
		_, _ = fmt.Fprint(c.App.Writer, "Do you want to update? (y/N): ")
		input, _ := bufio.NewReader(c.App.Reader).ReadString('\n')
		if strings.TrimSpace(strings.ToLower(input)) != "y" {
			printer.Step("Update cancelled.")
			return nil
		}
	}

	execPath, err := os.Executable()
	if err != nil {
		return cli.Exit(fmt.Sprintf("Could not get executable path: %v", err), 1)
	}
	printer.Step("Updating to %s...", latest.Version())
	if err := updater.UpdateTo(c.Context, latest, execPath); err != nil {
		return cli.Exit(fmt.Sprintf("Failed to update: %v", err), 1)
	}

	printer.Success("Successfully updated to version %s.", latest.Version())
	return nil
}
