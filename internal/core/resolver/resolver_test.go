// Package resolver_test contains tests for the resolver package.
package resolver_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightconcept/babelkit/internal/core/options"
	"github.com/nightconcept/babelkit/internal/core/registry"
	"github.com/nightconcept/babelkit/internal/core/resolver"
)

// stubLookup answers from a fixed table. When gatedName is set, its lookup
// blocks until every other lookup has returned.
type stubLookup struct {
	versions  map[string]string
	gatedName string
	others    sync.WaitGroup

	mu    sync.Mutex
	order []string
}

func (s *stubLookup) Latest(ctx context.Context, name string) (string, error) {
	if name == s.gatedName {
		s.others.Wait()
	} else if s.gatedName != "" {
		defer s.others.Done()
	}

	s.mu.Lock()
	s.order = append(s.order, name)
	s.mu.Unlock()

	v, ok := s.versions[name]
	if !ok {
		return "", &registry.LookupError{Package: name, Err: fmt.Errorf("package not found")}
	}
	return v, nil
}

func devDeps(names ...string) []options.Dependency {
	deps := make([]options.Dependency, len(names))
	for i, n := range names {
		deps[i] = options.Dependency{Name: n, Kind: options.Development}
	}
	return deps
}

func TestResolve_PreservesInputOrder(t *testing.T) {
	t.Parallel()
	stub := &stubLookup{
		versions: map[string]string{
			"babel-cli":        "6.26.0",
			"babel-preset-env": "1.7.0",
			"rimraf":           "2.6.2",
		},
		gatedName: "babel-cli",
	}
	stub.others.Add(2)

	constraints, err := resolver.New(stub).Resolve(context.Background(), devDeps("babel-cli", "babel-preset-env", "rimraf"))
	require.NoError(t, err)
	assert.Equal(t, []string{"^6.26.0", "^1.7.0", "^2.6.2"}, constraints)

	require.Len(t, stub.order, 3)
	assert.Equal(t, "babel-cli", stub.order[2], "first dependency should have completed last")
}

func TestResolve_RuntimeDependencyLooksUpPlainName(t *testing.T) {
	t.Parallel()
	stub := &stubLookup{versions: map[string]string{"react": "16.4.1"}}

	constraints, err := resolver.New(stub).Resolve(context.Background(), []options.Dependency{
		{Name: "react", Kind: options.Runtime},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"^16.4.1"}, constraints)
}

func TestResolve_AnyFailureFailsAll(t *testing.T) {
	t.Parallel()
	stub := &stubLookup{versions: map[string]string{"mocha": "5.2.0"}}

	constraints, err := resolver.New(stub).Resolve(context.Background(), devDeps("mocha", "does-not-exist"))
	require.Error(t, err)
	assert.Nil(t, constraints)

	var lookupErr *registry.LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "does-not-exist", lookupErr.Package)
}

func TestResolve_InvalidVersion(t *testing.T) {
	t.Parallel()
	stub := &stubLookup{versions: map[string]string{"chai": "latest-and-greatest"}}

	_, err := resolver.New(stub).Resolve(context.Background(), devDeps("chai"))
	require.Error(t, err)

	var lookupErr *registry.LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "chai", lookupErr.Package)
}

func TestResolve_Empty(t *testing.T) {
	t.Parallel()
	constraints, err := resolver.New(&stubLookup{}).Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, constraints)
}

// blockingLookup never answers until its context is done.
type blockingLookup struct{}

func (blockingLookup) Latest(ctx context.Context, name string) (string, error) {
	<-ctx.Done()
	return "", &registry.LookupError{Package: name, Err: ctx.Err()}
}

func TestResolve_Timeout(t *testing.T) {
	t.Parallel()
	r := resolver.New(blockingLookup{})
	r.Timeout = 20 * time.Millisecond

	_, err := r.Resolve(context.Background(), devDeps("flow-bin"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "expected a deadline error, got %v", err)
}
