// Package scaffold lays out a new babel project: directories, config files,
// and a package.json with resolved dependencies and scripts.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/nightconcept/babelkit/internal/core/console"
	"github.com/nightconcept/babelkit/internal/core/fsys"
	"github.com/nightconcept/babelkit/internal/core/manifest"
	"github.com/nightconcept/babelkit/internal/core/options"
	"github.com/nightconcept/babelkit/internal/core/templates"
)

// Runner executes a command line in dir and returns its stdout.
type Runner interface {
	Run(ctx context.Context, dir, commandLine string) (string, error)
}

// Resolver maps dependencies to version constraints, in order.
type Resolver interface {
	Resolve(ctx context.Context, deps []options.Dependency) ([]string, error)
}

// Scaffolder runs one scaffolding pass.
type Scaffolder struct {
	Runner      Runner
	Resolver    Resolver
	InitCommand string // creates package.json when it is missing
	Printer     *console.Printer
}

// Result describes what a run produced.
type Result struct {
	Dir                 string
	Created             []string
	Dependencies        []manifest.Resolved
	InitializedManifest bool
}

// Run scaffolds the project in dir. Manifest initialization and version
// resolution run in the background while directories and files are written;
// package.json is merged and rewritten once both have finished. Nothing is
// rolled back on failure.
func (s *Scaffolder) Run(ctx context.Context, dir string, opts options.Options) (*Result, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, &fsys.FileSystemError{Op: "resolve", Path: dir, Err: err}
	}
	printer := s.Printer
	if printer == nil {
		printer = console.Discard()
	}

	deps := options.Dependencies(opts)
	printer.Debugf("dependencies: %v", options.Names(deps))

	hasManifest, err := fsys.Exists(manifest.Path(absDir))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	var versions []string
	g.Go(func() error {
		v, err := s.Resolver.Resolve(gctx, deps)
		if err != nil {
			return err
		}
		versions = v
		return nil
	})

	if !hasManifest {
		printer.Command(s.InitCommand)
		g.Go(func() error {
			_, err := s.Runner.Run(gctx, absDir, s.InitCommand)
			return err
		})
	}

	created, err := writeSkeleton(absDir, opts, printer)
	if err != nil {
		cancel()
		_ = g.Wait()
		return nil, err
	}

	printer.Step("Getting versions of dependencies")
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resolved, err := manifest.Pair(deps, versions)
	if err != nil {
		return nil, err
	}

	doc, err := manifest.Load(absDir)
	if err != nil {
		return nil, err
	}
	merged, err := manifest.Merge(doc, opts, resolved)
	if err != nil {
		if errors.Is(err, manifest.ErrMalformed) {
			return nil, &fsys.FileSystemError{Op: "parse", Path: manifest.Path(absDir), Err: err}
		}
		return nil, err
	}

	printer.Step("Writing dependencies to %s", manifest.FileName)
	if err := manifest.Write(absDir, merged); err != nil {
		return nil, err
	}

	return &Result{
		Dir:                 absDir,
		Created:             created,
		Dependencies:        resolved,
		InitializedManifest: !hasManifest,
	}, nil
}

// writeSkeleton creates the directories and template files. It returns the
// paths written, relative to dir.
func writeSkeleton(dir string, opts options.Options, printer *console.Printer) ([]string, error) {
	var created []string

	if err := fsys.EnsureDir(filepath.Join(dir, "src")); err != nil {
		return nil, err
	}
	if opts.Mocha {
		if err := fsys.EnsureDir(filepath.Join(dir, "test")); err != nil {
			return nil, err
		}
	}
	if opts.React {
		// Not guarded: re-running over an existing React project fails here.
		if err := fsys.Mkdir(filepath.Join(dir, "public")); err != nil {
			return nil, err
		}
	}

	files, err := templates.Render(opts, filepath.Base(dir))
	if err != nil {
		return nil, fmt.Errorf("rendering templates: %w", err)
	}
	for _, f := range files {
		if err := fsys.WriteFile(filepath.Join(dir, filepath.FromSlash(f.Path)), f.Content); err != nil {
			return nil, err
		}
		printer.Created(f.Path)
		created = append(created, f.Path)
	}
	return created, nil
}
