// Package resolver turns a dependency list into caret version constraints.
package resolver

import (
	"context"
	"time"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/errgroup"

	"github.com/nightconcept/babelkit/internal/core/options"
	"github.com/nightconcept/babelkit/internal/core/registry"
)

// Lookup returns the current published version of a package.
type Lookup interface {
	Latest(ctx context.Context, name string) (string, error)
}

// Resolver looks up every dependency concurrently.
type Resolver struct {
	lookup Lookup

	// Timeout bounds the whole resolution when positive.
	Timeout time.Duration
}

// New returns a Resolver backed by lookup.
func New(lookup Lookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// Resolve returns one "^<version>" constraint per dependency, in input order.
// All lookups start immediately; the first failure fails the whole call.
func (r *Resolver) Resolve(ctx context.Context, deps []options.Dependency) ([]string, error) {
	constraints := make([]string, len(deps))

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, dep := range deps {
		g.Go(func() error {
			raw, err := r.lookup.Latest(ctx, dep.Name)
			if err != nil {
				return err
			}
			version, err := semver.NewVersion(raw)
			if err != nil {
				return &registry.LookupError{Package: dep.Name, Err: err}
			}
			constraints[i] = "^" + version.Original()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return constraints, nil
}
