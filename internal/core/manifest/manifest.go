// Package manifest merges resolved dependencies and derived scripts into a
// project's package.json without disturbing the content it does not manage.
package manifest

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/nightconcept/babelkit/internal/core/fsys"
	"github.com/nightconcept/babelkit/internal/core/options"
)

// FileName is the manifest written by npm.
const FileName = "package.json"

const (
	sectionDependencies    = "dependencies"
	sectionDevDependencies = "devDependencies"
	sectionScripts         = "scripts"
)

// Resolved is a dependency paired with its version constraint.
type Resolved struct {
	options.Dependency
	Version string
}

// Pair zips deps with the constraints returned for them.
func Pair(deps []options.Dependency, versions []string) ([]Resolved, error) {
	if len(deps) != len(versions) {
		return nil, fmt.Errorf("got %d versions for %d dependencies", len(versions), len(deps))
	}
	resolved := make([]Resolved, len(deps))
	for i, dep := range deps {
		resolved[i] = Resolved{Dependency: dep, Version: versions[i]}
	}
	return resolved, nil
}

// Path returns the manifest location inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads the manifest in dir.
func Load(dir string) ([]byte, error) {
	return fsys.ReadFile(Path(dir))
}

// Write replaces the manifest in dir with doc.
func Write(dir string, doc []byte) error {
	return fsys.WriteFile(Path(dir), doc)
}

// prettyOptions matches npm's two-space layout.
var prettyOptions = &pretty.Options{Indent: "  "}

// Merge applies deps and the scripts derived from opts to doc and returns
// the new document. Keys outside the managed sections keep their bytes, and
// merging the same input twice gives the same result. A document already in
// npm's layout is kept in that layout; any other document is edited in place.
func Merge(doc []byte, opts options.Options, deps []Resolved) ([]byte, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}
	npmLayout := bytes.Equal(pretty.PrettyOptions(doc, prettyOptions), doc)

	var err error
	for _, section := range []string{sectionDependencies, sectionDevDependencies} {
		if doc, err = ensureObject(doc, section); err != nil {
			return nil, err
		}
	}

	for _, dep := range deps {
		section := sectionDevDependencies
		if dep.Kind == options.Runtime {
			section = sectionDependencies
		}
		if doc, err = setString(doc, section, dep.Name, dep.Version); err != nil {
			return nil, err
		}
	}

	if doc, err = ensureObject(doc, sectionScripts); err != nil {
		return nil, err
	}
	for _, script := range Scripts(opts) {
		if doc, err = setString(doc, sectionScripts, script.Name, script.Command); err != nil {
			return nil, err
		}
	}

	if npmLayout {
		return pretty.PrettyOptions(doc, prettyOptions), nil
	}
	if !bytes.HasSuffix(doc, []byte("\n")) {
		doc = append(doc, '\n')
	}
	return doc, nil
}

// setString sets section[key] to value. Keys are escaped so that names such
// as "@babel/core" or "lodash.merge" are taken literally.
func setString(doc []byte, section, key, value string) ([]byte, error) {
	path := section + "." + gjson.Escape(key)
	out, err := sjson.SetBytes(doc, path, value)
	if err != nil {
		return nil, fmt.Errorf("setting %s.%s: %w", section, key, err)
	}
	if gjson.GetBytes(out, path).String() != value {
		return nil, fmt.Errorf("setting %s.%s: value not written", section, key)
	}
	return out, nil
}

func ensureObject(doc []byte, section string) ([]byte, error) {
	if gjson.GetBytes(doc, section).Exists() {
		return doc, nil
	}
	out, err := sjson.SetRawBytes(doc, section, []byte("{}"))
	if err != nil {
		return nil, fmt.Errorf("adding %s: %w", section, err)
	}
	return out, nil
}
