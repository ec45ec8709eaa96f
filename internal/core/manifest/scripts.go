package manifest

import (
	"github.com/nightconcept/babelkit/internal/core/options"
)

// Script is a named npm script.
type Script struct {
	Name    string
	Command string
}

type scriptRule struct {
	name    string
	when    func(options.Options) bool
	command func(options.Options) string
}

func always(options.Options) bool { return true }

func fixed(command string) func(options.Options) string {
	return func(options.Options) string { return command }
}

// scriptRules are applied in order. A later rule for the same script name
// replaces the earlier value, which is how an executable's start script
// takes precedence over the React dev server.
var scriptRules = []scriptRule{
	{
		name: "build",
		when: always,
		command: func(o options.Options) string {
			if o.React {
				return "parcel build public/index.html"
			}
			dirs := "src/ "
			if o.Mocha {
				dirs += "test/ "
			}
			return "rimraf ./dist && babel " + dirs + "-d dist --copy-files"
		},
	},
	{
		name:    "start",
		when:    func(o options.Options) bool { return o.React },
		command: fixed("parcel public/index.html"),
	},
	{
		name:    "start",
		when:    func(o options.Options) bool { return o.Executable },
		command: fixed("babel-watch --watch src src/main.js"),
	},
	{
		name: "prepare",
		when: func(o options.Options) bool { return o.Publish },
		command: func(o options.Options) string {
			if o.Flow {
				return "npm run build && flow-copy-source src dist"
			}
			return "npm run build"
		},
	},
	{
		name:    "flow",
		when:    func(o options.Options) bool { return o.Flow },
		command: fixed("flow"),
	},
	{
		name: "lint",
		when: func(o options.Options) bool { return o.ESLint },
		command: func(o options.Options) string {
			if o.Mocha {
				return "eslint src/** test/**"
			}
			return "eslint src/**"
		},
	},
	{
		name:    "flint",
		when:    func(o options.Options) bool { return o.Flow && o.ESLint },
		command: fixed("npm run flow && npm run lint"),
	},
	{
		name:    "test",
		when:    func(o options.Options) bool { return o.Mocha },
		command: fixed("npm run build && mocha dist/**/*.test.js"),
	},
}

// Scripts derives the script table for opts.
func Scripts(opts options.Options) []Script {
	var scripts []Script
	index := make(map[string]int)
	for _, rule := range scriptRules {
		if !rule.when(opts) {
			continue
		}
		script := Script{Name: rule.name, Command: rule.command(opts)}
		if i, ok := index[rule.name]; ok {
			scripts[i] = script
			continue
		}
		index[rule.name] = len(scripts)
		scripts = append(scripts, script)
	}
	return scripts
}

// ScriptMap returns Scripts(opts) keyed by name.
func ScriptMap(opts options.Options) map[string]string {
	m := make(map[string]string)
	for _, s := range Scripts(opts) {
		m[s.Name] = s.Command
	}
	return m
}
