package inkwell

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no post exists for a requested slug in
// either the record store or the static content directory.
var ErrNotFound = errors.New("post not found")

// CorruptStoreError indicates the record store's backing file exists but
// could not be parsed. The read path treats this as fatal rather than
// silently starting over with an empty store.
type CorruptStoreError struct {
	Path string
	Err  error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("record store %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptStoreError) Unwrap() error { return e.Err }
