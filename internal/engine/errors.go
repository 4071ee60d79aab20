package engine

import (
	"errors"
	"fmt"
)

// ErrCopyFailed indicates the recursive copy did not complete.
// The destination is left as the failed operation left it.
var ErrCopyFailed = errors.New("copy failed")

// CopyError records which source failed to copy and why.
type CopyError struct {
	Source      string
	Destination string
	Err         error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("%s: %s -> %s: %v", ErrCopyFailed, e.Source, e.Destination, e.Err)
}

// Unwrap returns the underlying cause.
func (e *CopyError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrCopyFailed.
func (e *CopyError) Is(target error) bool {
	return target == ErrCopyFailed
}
