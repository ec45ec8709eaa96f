// Package prompt asks the user questions, either through an interactive
// terminal form or line by line on a plain reader.
package prompt

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrAborted is returned when the user cancels a question.
var ErrAborted = errors.New("prompt aborted")

// Choice is one entry of a single-choice question.
type Choice struct {
	Label string
	Value string
}

// Asker answers single-choice and yes/no questions.
type Asker interface {
	Select(message string, choices []Choice) (string, error)
	Confirm(message string) (bool, error)
}

// New returns a terminal form asker when in is a TTY and a line asker otherwise.
func New(in io.Reader, out io.Writer) Asker {
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return NewFormAsker()
	}
	return NewLineAsker(in, out)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
