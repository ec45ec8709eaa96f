// Package fsys wraps the filesystem operations used while scaffolding so
// that every failure surfaces as a FileSystemError.
package fsys

import (
	"errors"
	"fmt"
	"os"
)

// FileSystemError reports a failed filesystem operation on Path.
type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error { return e.Err }

// Exists reports whether path exists.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, &FileSystemError{Op: "stat", Path: path, Err: err}
}

// EnsureDir creates the directory at path unless it already exists.
func EnsureDir(path string) error {
	exists, err := Exists(path)
	if err != nil || exists {
		return err
	}
	return Mkdir(path)
}

// Mkdir creates the directory at path and fails if it already exists.
func Mkdir(path string) error {
	if err := os.Mkdir(path, 0o755); err != nil {
		return &FileSystemError{Op: "create directory", Path: path, Err: err}
	}
	return nil
}

// ReadFile returns the contents of the file at path.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileSystemError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

// WriteFile creates or truncates the file at path and writes content to it.
func WriteFile(path string, content []byte) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &FileSystemError{Op: "write", Path: path, Err: err}
	}
	if _, err := file.Write(content); err != nil {
		_ = file.Close()
		return &FileSystemError{Op: "write", Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &FileSystemError{Op: "write", Path: path, Err: err}
	}
	return nil
}
