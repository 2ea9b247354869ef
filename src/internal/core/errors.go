// FILE: logviewer/src/internal/core/errors.go
package core

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned for unknown file names and missing paths
var ErrNotFound = errors.New("log file not found")

// ReadError wraps an I/O failure on a log file
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
