// Package runner executes external commands for the scaffolder.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ProcessError reports a command that failed to start or wrote to stderr.
// Any stderr output counts as failure, even when the exit status is zero.
type ProcessError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *ProcessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("command %q wrote to stderr: %s", e.Command, strings.TrimSpace(e.Stderr))
}

func (e *ProcessError) Unwrap() error { return e.Err }

// Runner runs command lines in a working directory.
type Runner struct{}

// New returns a Runner.
func New() *Runner {
	return &Runner{}
}

// Run splits commandLine on whitespace, runs it in dir and returns stdout.
// No shell is involved, so quoting is not supported.
func (r *Runner) Run(ctx context.Context, dir, commandLine string) (string, error) {
	args := strings.Fields(commandLine)
	if len(args) == 0 {
		return "", &ProcessError{Command: commandLine, Err: fmt.Errorf("empty command")}
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return "", &ProcessError{Command: commandLine, Err: err}
	}
	// The exit status is ignored; stderr output alone decides failure.
	waitErr := cmd.Wait()

	if stderr.Len() > 0 {
		return "", &ProcessError{Command: commandLine, Stderr: stderr.String()}
	}
	if ctx.Err() != nil {
		return "", &ProcessError{Command: commandLine, Err: waitErr}
	}
	return stdout.String(), nil
}
