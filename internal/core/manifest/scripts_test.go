package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nightconcept/babelkit/internal/core/manifest"
	"github.com/nightconcept/babelkit/internal/core/options"
)

func TestScripts_ExecutableStartWinsOverReact(t *testing.T) {
	t.Parallel()

	scripts := manifest.ScriptMap(options.Options{Executable: true})
	assert.Equal(t, "babel-watch --watch src src/main.js", scripts["start"])

	scripts = manifest.ScriptMap(options.Options{Executable: true, React: true})
	assert.Equal(t, "babel-watch --watch src src/main.js", scripts["start"], "executable start must override the dev server")
}

func TestScripts_ReactStartIsDevServer(t *testing.T) {
	t.Parallel()
	scripts := manifest.ScriptMap(options.Options{React: true})

	assert.Equal(t, "parcel public/index.html", scripts["start"])
	assert.Equal(t, "parcel build public/index.html", scripts["build"])
}

func TestScripts_FlowAndLint(t *testing.T) {
	t.Parallel()
	scripts := manifest.ScriptMap(options.Options{Flow: true, ESLint: true})

	assert.Equal(t, "npm run flow && npm run lint", scripts["flint"])
	assert.Equal(t, "flow", scripts["flow"])
	assert.Equal(t, "eslint src/**", scripts["lint"])

	assert.NotContains(t, manifest.ScriptMap(options.Options{Flow: true}), "flint")
	assert.NotContains(t, manifest.ScriptMap(options.Options{ESLint: true}), "flint")
}

func TestScripts_BuildIncludesTestDirOnlyWithMocha(t *testing.T) {
	t.Parallel()

	withMocha := manifest.ScriptMap(options.Options{Mocha: true})
	assert.Contains(t, withMocha["build"], "test/")
	assert.Equal(t, "rimraf ./dist && babel src/ test/ -d dist --copy-files", withMocha["build"])
	assert.Equal(t, "npm run build && mocha dist/**/*.test.js", withMocha["test"])

	without := manifest.ScriptMap(options.Options{})
	assert.NotContains(t, without["build"], "test/")
	assert.NotContains(t, without, "test")
}

func TestScripts_LintCoversTestsWithMocha(t *testing.T) {
	t.Parallel()
	scripts := manifest.ScriptMap(options.Options{ESLint: true, Mocha: true})
	assert.Equal(t, "eslint src/** test/**", scripts["lint"])
}

func TestScripts_Prepare(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "npm run build", manifest.ScriptMap(options.Options{Publish: true})["prepare"])
	assert.Equal(t, "npm run build && flow-copy-source src dist",
		manifest.ScriptMap(options.Options{Publish: true, Flow: true})["prepare"])
	assert.NotContains(t, manifest.ScriptMap(options.Options{Flow: true}), "prepare")
}

func TestScripts_OrderAndUniqueness(t *testing.T) {
	t.Parallel()
	scripts := manifest.Scripts(options.Options{
		Flow: true, ESLint: true, Mocha: true, Publish: true, Executable: true, React: true,
	})

	var names []string
	for _, s := range scripts {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"build", "start", "prepare", "flow", "lint", "flint", "test"}, names)
}
