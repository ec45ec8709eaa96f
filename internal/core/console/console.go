// Package console prints progress for a scaffolding run.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	stepColor    = color.New(color.FgCyan).SprintFunc()
	commandColor = color.New(color.FgHiBlack).SprintFunc()
	successColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	warnColor    = color.New(color.FgYellow).SprintFunc()
	errorColor   = color.New(color.FgRed, color.Bold).SprintFunc()
	fileColor    = color.New(color.FgWhite).SprintFunc()
)

// Printer writes progress lines to Out and error lines to Err.
type Printer struct {
	Out     io.Writer
	Err     io.Writer
	Verbose bool
}

// New returns a Printer on stdout and stderr.
func New(verbose bool) *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr, Verbose: verbose}
}

// Discard returns a Printer that prints nothing.
func Discard() *Printer {
	return &Printer{Out: io.Discard, Err: io.Discard}
}

// Step announces a phase of the run.
func (p *Printer) Step(format string, args ...any) {
	_, _ = fmt.Fprintln(p.Out, stepColor(fmt.Sprintf(format, args...)))
}

// Command echoes a command line before it runs.
func (p *Printer) Command(commandLine string) {
	_, _ = fmt.Fprintln(p.Out, commandColor(commandLine))
}

// Created reports a file or directory written to disk.
func (p *Printer) Created(path string) {
	_, _ = fmt.Fprintf(p.Out, "  Created %s\n", fileColor(path))
}

// Success reports a finished run.
func (p *Printer) Success(format string, args ...any) {
	_, _ = fmt.Fprintln(p.Out, successColor(fmt.Sprintf(format, args...)))
}

// Warn prints a warning to Err.
func (p *Printer) Warn(format string, args ...any) {
	_, _ = fmt.Fprintln(p.Err, warnColor("Warning: "+fmt.Sprintf(format, args...)))
}

// Error prints an error to Err.
func (p *Printer) Error(err error) {
	_, _ = fmt.Fprintln(p.Err, errorColor("Error: ")+err.Error())
}

// Debugf prints only in verbose mode.
func (p *Printer) Debugf(format string, args ...any) {
	if !p.Verbose {
		return
	}
	_, _ = fmt.Fprintf(p.Out, "[debug] "+format+"\n", args...)
}
