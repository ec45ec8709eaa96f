// Package templates renders the files written into a new project.
// Rendering is pure; the scaffold package does the writing.
package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	htmltemplate "html/template"
	"text/template"

	"github.com/nightconcept/babelkit/internal/core/options"
)

//go:embed files/*
var files embed.FS

// File is a rendered file, with Path relative to the project root.
type File struct {
	Path    string
	Content []byte
}

// Renderer produces zero or more files for a project. A renderer whose
// precondition does not hold returns no files.
type Renderer func(opts options.Options, projectName string) ([]File, error)

// Renderers is the fixed order in which project files are produced.
var Renderers = []Renderer{
	Babelrc,
	Readme,
	MainJS,
	ReactApp,
	Gitignore,
}

// Render runs every renderer and returns the combined file set.
func Render(opts options.Options, projectName string) ([]File, error) {
	var out []File
	for _, render := range Renderers {
		rendered, err := render(opts, projectName)
		if err != nil {
			return nil, err
		}
		out = append(out, rendered...)
	}
	return out, nil
}

type templateData struct {
	Name string
	options.Options
}

// babelPreset is either a bare preset name or a [name, config] pair.
type babelPreset any

type babelConfig struct {
	Presets []babelPreset `json:"presets"`
	Plugins []string      `json:"plugins,omitempty"`
}

// Babelrc renders .babelrc targeting the current node runtime.
func Babelrc(opts options.Options, _ string) ([]File, error) {
	env := []any{"env", map[string]any{
		"targets": map[string]string{"node": "current"},
	}}

	cfg := babelConfig{Presets: []babelPreset{env}}
	if opts.Flow {
		cfg.Presets = append([]babelPreset{"flow"}, cfg.Presets...)
	}
	if opts.React {
		cfg.Presets = append(cfg.Presets, "react")
	}
	if opts.Publish {
		cfg.Plugins = []string{"add-module-exports"}
	}

	content, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding .babelrc: %w", err)
	}
	return []File{{Path: ".babelrc", Content: content}}, nil
}

// Readme renders README.md with setup notes for the chosen tools.
func Readme(opts options.Options, projectName string) ([]File, error) {
	content, err := executeText("files/README.md.tmpl", templateData{Name: projectName, Options: opts})
	if err != nil {
		return nil, err
	}
	return []File{{Path: "README.md", Content: content}}, nil
}

// MainJS renders src/main.js for executables without a UI.
func MainJS(opts options.Options, _ string) ([]File, error) {
	if !opts.Executable || opts.React {
		return nil, nil
	}
	return []File{{Path: "src/main.js", Content: []byte("console.log('Hello world!');\n")}}, nil
}

// ReactApp renders the React entry component and its host page.
func ReactApp(opts options.Options, projectName string) ([]File, error) {
	if !opts.React {
		return nil, nil
	}

	jsx, err := files.ReadFile("files/index.jsx")
	if err != nil {
		return nil, fmt.Errorf("failed to read template files/index.jsx: %w", err)
	}

	raw, err := files.ReadFile("files/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read template files/index.html.tmpl: %w", err)
	}
	tmpl, err := htmltemplate.New("index.html").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template files/index.html.tmpl: %w", err)
	}
	var html bytes.Buffer
	if err := tmpl.Execute(&html, templateData{Name: projectName, Options: opts}); err != nil {
		return nil, fmt.Errorf("failed to execute template files/index.html.tmpl: %w", err)
	}

	return []File{
		{Path: "src/index.jsx", Content: jsx},
		{Path: "public/index.html", Content: html.Bytes()},
	}, nil
}

// Gitignore renders .gitignore; parcel's cache is ignored when React is used.
func Gitignore(opts options.Options, _ string) ([]File, error) {
	content := "/node_modules/\n/dist/\n"
	if opts.React {
		content += "/.cache/\n"
	}
	return []File{{Path: ".gitignore", Content: []byte(content)}}, nil
}

func executeText(path string, data templateData) ([]byte, error) {
	raw, err := files.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}
	tmpl, err := template.New(path).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", path, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", path, err)
	}
	return buf.Bytes(), nil
}
