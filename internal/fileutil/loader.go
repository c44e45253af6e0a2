// Package fileutil loads documentation files and scans directories for them.
//
// ReadText is the single entry point every check uses to read a document. It maps
// filesystem failures onto two outcomes: ErrNotFound when the path does not exist,
// and *ReadError for anything else (permissions, a directory in place of a file,
// invalid UTF-8). Neither is retried.
//
// ScanDirectory lists the markdown files of one directory and backs agent discovery.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"
)

// ErrNotFound is returned by ReadText when the path does not exist
var ErrNotFound = errors.New("File does not exist")

// ReadError wraps any other failure to read a document
type ReadError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *ReadError) Error() string {
	return fmt.Sprintf("Error reading file: %v", e.Err)
}

// Unwrap returns the underlying cause
func (e *ReadError) Unwrap() error {
	return e.Err
}

// ReadText reads a UTF-8 text file.
// A missing path yields ErrNotFound; any other failure yields *ReadError.
func ReadText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", &ReadError{Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &ReadError{Path: path, Err: fmt.Errorf("%s is a directory", path)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}

	if !utf8.Valid(data) {
		return "", &ReadError{Path: path, Err: fmt.Errorf("%s is not valid UTF-8", path)}
	}

	return string(data), nil
}
