package bitarray

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned by At when the index is outside the
	// logical bit range.
	ErrOutOfRange = errors.New("index out of range")
)

// ErrIndexOutOfRange reports the rejected index and the container's
// logical size.
//
// It matches ErrOutOfRange via errors.Is.
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Size)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return ErrOutOfRange }
