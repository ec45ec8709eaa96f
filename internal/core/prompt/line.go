package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LineAsker reads numbered choices and y/n answers from a reader.
type LineAsker struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLineAsker returns a LineAsker reading from in and prompting on out.
func NewLineAsker(in io.Reader, out io.Writer) *LineAsker {
	return &LineAsker{reader: bufio.NewReader(in), out: out}
}

// readLine returns the next trimmed line. A final line without a newline
// is still returned; only an empty read at EOF is an error.
func (a *LineAsker) readLine(promptText string) (string, error) {
	input, err := a.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input for '%s': %w", promptText, ErrAborted)
		}
		return "", fmt.Errorf("failed to read input for '%s': %w", promptText, err)
	}
	return strings.TrimSpace(input), nil
}

// Select lists the choices and returns the value of the picked one.
// An empty answer picks the first choice.
func (a *LineAsker) Select(message string, choices []Choice) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("no choices for '%s'", message)
	}

	_, _ = fmt.Fprintf(a.out, "? %s\n", message)
	for i, c := range choices {
		_, _ = fmt.Fprintf(a.out, "  %d) %s\n", i+1, c.Label)
	}

	for {
		_, _ = fmt.Fprintf(a.out, "Answer (default: 1): ")
		input, err := a.readLine(message)
		if err != nil {
			return "", err
		}
		if input == "" {
			return choices[0].Value, nil
		}
		n, err := strconv.Atoi(input)
		if err == nil && n >= 1 && n <= len(choices) {
			return choices[n-1].Value, nil
		}
		_, _ = fmt.Fprintf(a.out, "Please enter a number between 1 and %d.\n", len(choices))
	}
}

// Confirm asks a yes/no question. An empty answer means yes.
func (a *LineAsker) Confirm(message string) (bool, error) {
	for {
		_, _ = fmt.Fprintf(a.out, "? %s (Y/n): ", message)
		input, err := a.readLine(message)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(input) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		_, _ = fmt.Fprintln(a.out, "Please answer y or n.")
	}
}
