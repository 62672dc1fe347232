package buffer

import (
	"fmt"
	"unicode/utf8"
)

// Clear empties the content. The capacity is unchanged.
func (b *Buffer) Clear() { b.n = 0 }

// Truncate shortens the content to newLen bytes. It is a no-op when newLen is
// at least Len.
//
// Truncate panics if newLen is negative or does not fall on a rune boundary.
func (b *Buffer) Truncate(newLen int) {
	if newLen < 0 {
		panic(fmt.Sprintf("buffer: truncate to negative length %d", newLen))
	}
	if newLen >= b.n {
		return
	}
	if !utf8.RuneStart(b.region[newLen]) {
		panic(fmt.Sprintf("buffer: truncate at %d is not a rune boundary (len %d)", newLen, b.n))
	}
	b.n = newLen
}

// Pop removes the last rune of the content and returns it. It reports false
// when the content is empty.
func (b *Buffer) Pop() (rune, bool) {
	if b.n == 0 {
		return 0, false
	}
	// At most three continuation bytes precede the last rune's start byte.
	r, size := utf8.DecodeLastRune(b.region[:b.n])
	b.n -= size
	return r, true
}

// Push appends the UTF-8 encoding of r. Values that are not Unicode scalar
// values are appended as utf8.RuneError.
//
// If the encoding does not fit, Push returns ErrCapacityExceeded and leaves
// the Buffer unchanged.
func (b *Buffer) Push(r rune) error {
	size := utf8.RuneLen(r)
	if size < 0 {
		r, size = utf8.RuneError, utf8.RuneLen(utf8.RuneError)
	}
	if size > b.Available() {
		return ErrCapacityExceeded
	}
	if size == 1 {
		b.region[b.n] = byte(r)
	} else {
		utf8.EncodeRune(b.region[b.n:], r)
	}
	b.n += size
	return nil
}

// PushString appends s. Either all of s is appended or, when it does not fit,
// nothing is and ErrCapacityExceeded is returned.
func (b *Buffer) PushString(s string) error {
	if len(s) > b.Available() {
		return ErrCapacityExceeded
	}
	b.n += copy(b.region[b.n:], s)
	return nil
}

// SplitOff splits the region at byte offset at. b keeps region[:at] and the
// content that lies in it; the returned Buffer owns region[at:] and starts with
// the content past at, if any. No bytes are moved: b.Cap() shrinks to at and
// the new Buffer has capacity Cap()-at.
//
// SplitOff panics if at is outside [0, Cap()], or if at <= Len() and at is not
// a rune boundary.
func (b *Buffer) SplitOff(at int) *Buffer {
	if at < 0 || at > len(b.region) {
		panic(fmt.Sprintf("buffer: split at %d out of range for capacity %d", at, len(b.region)))
	}
	if at <= b.n && !b.IsCharBoundary(at) {
		panic(fmt.Sprintf("buffer: split at %d is not a rune boundary (len %d)", at, b.n))
	}

	head, tail := claims.Split(b.lease, at)
	if head == nil {
		b.handOff()
	}

	region := b.region
	next := &Buffer{region: region[at:], n: max(b.n-at, 0)}
	next.track(tail)

	b.region = region[:at:at]
	b.n = min(b.n, at)
	return next
}

// ToUpperASCII maps the ASCII letters of the content to upper case in place.
// Bytes of multi-byte runes are never ASCII, so the content stays valid.
func (b *Buffer) ToUpperASCII() {
	for i, c := range b.region[:b.n] {
		if 'a' <= c && c <= 'z' {
			b.region[i] = c - ('a' - 'A')
		}
	}
}

// ToLowerASCII maps the ASCII letters of the content to lower case in place.
func (b *Buffer) ToLowerASCII() {
	for i, c := range b.region[:b.n] {
		if 'A' <= c && c <= 'Z' {
			b.region[i] = c + ('a' - 'A')
		}
	}
}
