package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotFound     = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotAFile         = errors.New("not a regular file")
	ErrUnknownFileType  = errors.New("unknown file type")
)

// LoadError wraps a format-specific decode failure with the format
// that produced it.
type LoadError struct {
	Format string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Format, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
