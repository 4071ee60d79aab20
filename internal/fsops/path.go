package fsops

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidPathEncoding indicates a path cannot be represented as valid text.
var ErrInvalidPathEncoding = errors.New("path is not valid UTF-8")

// NativePath holds a path as the raw bytes the operating system handed over.
type NativePath []byte

// NativePathOf converts a string to a NativePath without validation.
func NativePathOf(s string) NativePath {
	return NativePath(s)
}

// Text returns the path as a string, failing if it is not valid UTF-8.
func (p NativePath) Text() (string, error) {
	if !utf8.Valid(p) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPathEncoding, []byte(p))
	}
	return string(p), nil
}
