package mygit

import (
	"errors"
	"fmt"
)

var (
	ErrRootExists     = errors.New("mygit: repository already exists")
	ErrRootNotFound   = errors.New("mygit: not a git repository")
	ErrObjectNotFound = errors.New("mygit: object not found")
	ErrObjectCorrupt  = errors.New("mygit: object corrupt")
	ErrInvalidDigest  = errors.New("mygit: invalid object digest")
)

// CorruptObjectError reports a stored object that could not be decoded.
// It matches both ErrObjectCorrupt and ErrObjectNotFound, so callers that
// only care whether an object is usable can test for the latter.
type CorruptObjectError struct {
	Digest Digest
	Path   string
	Err    error
}

func (e *CorruptObjectError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("mygit: object %s corrupt (%s): %v", e.Digest, e.Path, e.Err)
}

func (e *CorruptObjectError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *CorruptObjectError) Is(target error) bool {
	return target == ErrObjectCorrupt || target == ErrObjectNotFound
}
