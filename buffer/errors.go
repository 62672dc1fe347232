package buffer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEncoding  = errors.New("buffer: invalid utf-8")
	ErrCapacityExceeded = errors.New("buffer: capacity exceeded")
)

// EncodingError reports a region whose prefix is not valid UTF-8. The region
// is returned untouched and unclaimed.
type EncodingError struct {
	Region []byte
	Len    int

	// ValidUpTo is the length of the longest valid UTF-8 prefix of
	// Region[:Len].
	ValidUpTo int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("buffer: invalid utf-8 at byte %d of %d", e.ValidUpTo, e.Len)
}

func (e *EncodingError) Unwrap() error { return ErrInvalidEncoding }
