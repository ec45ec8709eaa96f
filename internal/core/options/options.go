// Package options holds the answers collected for a new project and the
// dependency list derived from them.
package options

// Options is the resolved set of choices for a single scaffolding run.
// It is built once from the user's answers and only read afterwards.
type Options struct {
	Flow       bool // flow for type checking
	ESLint     bool
	Mocha      bool // mocha & chai for testing
	Publish    bool // package will be published to npm
	Executable bool // executed rather than imported
	React      bool // React UI bundled with parcel
}

// Kind tells the manifest which dependency map a package belongs to.
type Kind int

const (
	Development Kind = iota
	Runtime
)

func (k Kind) String() string {
	if k == Runtime {
		return "runtime"
	}
	return "development"
}

// Dependency is a package the generated project needs.
type Dependency struct {
	Name string
	Kind Kind
}

func devDeps(names ...string) []Dependency {
	deps := make([]Dependency, 0, len(names))
	for _, name := range names {
		deps = append(deps, Dependency{Name: name, Kind: Development})
	}
	return deps
}

func runtimeDeps(names ...string) []Dependency {
	deps := make([]Dependency, 0, len(names))
	for _, name := range names {
		deps = append(deps, Dependency{Name: name, Kind: Runtime})
	}
	return deps
}

// Dependencies returns the packages required by opts, in a stable order.
func Dependencies(opts Options) []Dependency {
	deps := devDeps("babel-cli", "babel-preset-env", "rimraf")
	if opts.Flow {
		deps = append(deps, devDeps("babel-preset-flow", "flow-bin")...)
		if opts.Publish {
			deps = append(deps, devDeps("flow-copy-source")...)
		}
	}
	if opts.ESLint {
		deps = append(deps, devDeps("eslint")...)
		if opts.Flow {
			deps = append(deps, devDeps("eslint-plugin-flowtype", "babel-eslint")...)
		}
	}
	if opts.Mocha {
		deps = append(deps, devDeps("mocha", "chai")...)
		if opts.ESLint {
			deps = append(deps, devDeps("eslint-plugin-mocha")...)
		}
	}
	if opts.Publish {
		deps = append(deps, devDeps("babel-plugin-add-module-exports")...)
	}
	if opts.Executable {
		deps = append(deps, devDeps("babel-watch")...)
	}
	if opts.React {
		deps = append(deps, runtimeDeps("react", "react-dom")...)
		deps = append(deps, devDeps("parcel-bundler", "babel-preset-react")...)
		if opts.ESLint {
			deps = append(deps, devDeps("eslint-plugin-react")...)
		}
	}
	return deps
}

// Names returns the package names of deps in order.
func Names(deps []Dependency) []string {
	names := make([]string, len(deps))
	for i, d := range deps {
		names[i] = d.Name
	}
	return names
}
