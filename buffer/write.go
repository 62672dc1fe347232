package buffer

import "unicode/utf8"

// Write appends p, which must be valid UTF-8. It returns ErrCapacityExceeded
// if p does not fit and ErrInvalidEncoding if it is not valid UTF-8; in both
// cases nothing is written. A formatted value written with fmt.Fprintf
// arrives in a single Write, so it lands whole or not at all.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) > b.Available() {
		return 0, ErrCapacityExceeded
	}
	if !utf8.Valid(p) {
		return 0, ErrInvalidEncoding
	}
	b.n += copy(b.region[b.n:], p)
	return len(p), nil
}

// WriteString appends s. Its only error is ErrCapacityExceeded.
func (b *Buffer) WriteString(s string) (int, error) {
	if err := b.PushString(s); err != nil {
		return 0, err
	}
	return len(s), nil
}

// WriteRune appends the UTF-8 encoding of r. Its only error is
// ErrCapacityExceeded.
func (b *Buffer) WriteRune(r rune) (int, error) {
	before := b.n
	if err := b.Push(r); err != nil {
		return 0, err
	}
	return b.n - before, nil
}
