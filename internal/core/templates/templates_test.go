// Package templates_test contains tests for the templates package.
package templates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightconcept/babelkit/internal/core/options"
	"github.com/nightconcept/babelkit/internal/core/templates"
)

func single(t *testing.T, files []templates.File, err error) templates.File {
	t.Helper()
	require.NoError(t, err)
	require.Len(t, files, 1)
	return files[0]
}

func paths(files []templates.File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	return out
}

func TestBabelrc_Base(t *testing.T) {
	t.Parallel()
	f := single(t, templates.Babelrc(options.Options{}, "demo"))

	assert.Equal(t, ".babelrc", f.Path)
	assert.JSONEq(t, `{"presets":[["env",{"targets":{"node":"current"}}]]}`, string(f.Content))
	assert.NotContains(t, string(f.Content), "plugins")
}

func TestBabelrc_FlowPublishReact(t *testing.T) {
	t.Parallel()
	f := single(t, templates.Babelrc(options.Options{Flow: true, Publish: true, React: true}, "demo"))

	expected := `{
  "presets": [
    "flow",
    [
      "env",
      {
        "targets": {
          "node": "current"
        }
      }
    ],
    "react"
  ],
  "plugins": [
    "add-module-exports"
  ]
}`
	assert.Equal(t, expected, string(f.Content))
}

func TestReadme_Minimal(t *testing.T) {
	t.Parallel()
	f := single(t, templates.Readme(options.Options{}, "my-lib"))

	assert.Equal(t, "README.md", f.Path)
	assert.Equal(t, "# my-lib\nDescription\n\n## Todo\n", string(f.Content))
}

func TestReadme_FlowOnly(t *testing.T) {
	t.Parallel()
	f := single(t, templates.Readme(options.Options{Flow: true}, "my-lib"))

	assert.Equal(t, "# my-lib\nDescription\n\n## Todo\n### Flow\n```bash\nnpm run flow -- init\n```\n", string(f.Content))
}

func TestReadme_ESLintNestedSections(t *testing.T) {
	t.Parallel()

	plain := string(single(t, templates.Readme(options.Options{ESLint: true}, "x")).Content)
	assert.Contains(t, plain, "### ESLint\n```bash\nnpm run lint -- --init\n```")
	assert.NotContains(t, plain, "Edit .eslintrc")
	assert.NotContains(t, plain, "Create test/.eslintrc")

	all := string(single(t, templates.Readme(options.Options{ESLint: true, Flow: true, Mocha: true}, "x")).Content)
	assert.Contains(t, all, "Edit .eslintrc")
	assert.Contains(t, all, `"plugin:flowtype/recommended"`)
	assert.Contains(t, all, "Create test/.eslintrc")
	assert.Contains(t, all, `"mocha": true`)

	// Mocha without ESLint gets no lint notes at all.
	mochaOnly := string(single(t, templates.Readme(options.Options{Mocha: true}, "x")).Content)
	assert.NotContains(t, mochaOnly, ".eslintrc")
}

func TestMainJS(t *testing.T) {
	t.Parallel()

	files, err := templates.MainJS(options.Options{Executable: true}, "x")
	f := single(t, files, err)
	assert.Equal(t, "src/main.js", f.Path)
	assert.Equal(t, "console.log('Hello world!');\n", string(f.Content))

	files, err = templates.MainJS(options.Options{}, "x")
	require.NoError(t, err)
	assert.Empty(t, files, "libraries get no entry file")

	files, err = templates.MainJS(options.Options{Executable: true, React: true}, "x")
	require.NoError(t, err)
	assert.Empty(t, files, "React projects get the UI scaffold instead")
}

func TestReactApp(t *testing.T) {
	t.Parallel()

	files, err := templates.ReactApp(options.Options{}, "x")
	require.NoError(t, err)
	assert.Empty(t, files)

	files, err = templates.ReactApp(options.Options{React: true}, "shop<ui>")
	require.NoError(t, err)
	require.Equal(t, []string{"src/index.jsx", "public/index.html"}, paths(files))
	assert.Contains(t, string(files[0].Content), "ReactDOM.render(<App />")
	assert.Contains(t, string(files[1].Content), `<script src="../src/index.jsx"></script>`)
	assert.Contains(t, string(files[1].Content), "<title>shop&lt;ui&gt;</title>", "project name should be escaped")
}

func TestGitignore(t *testing.T) {
	t.Parallel()

	f := single(t, templates.Gitignore(options.Options{}, "x"))
	assert.Equal(t, ".gitignore", f.Path)
	assert.Equal(t, "/node_modules/\n/dist/\n", string(f.Content))

	f = single(t, templates.Gitignore(options.Options{React: true}, "x"))
	assert.Equal(t, "/node_modules/\n/dist/\n/.cache/\n", string(f.Content))
}

func TestRender_StarterFilesAreExclusive(t *testing.T) {
	t.Parallel()

	exe, err := templates.Render(options.Options{Executable: true}, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{".babelrc", "README.md", "src/main.js", ".gitignore"}, paths(exe))

	ui, err := templates.Render(options.Options{Executable: true, React: true}, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{".babelrc", "README.md", "src/index.jsx", "public/index.html", ".gitignore"}, paths(ui))

	lib, err := templates.Render(options.Options{}, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{".babelrc", "README.md", ".gitignore"}, paths(lib))
}
