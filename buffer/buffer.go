package buffer

import (
	"fmt"
	"iter"
	"runtime"
	"unicode/utf8"

	"github.com/iw2rmb/slicestr/internal/claim"
)

// Buffer is a UTF-8 string of fixed capacity stored in a borrowed region.
//
// The zero value is an empty Buffer with capacity 0.
type Buffer struct {
	_ noCopy

	region []byte
	n      int

	lease   *claim.Lease
	cleanup runtime.Cleanup
}

// New binds an empty Buffer to region. Its capacity is len(region).
func New(region []byte) *Buffer {
	// The empty string is valid UTF-8.
	return bind(region, 0)
}

// FromUTF8 binds region with region[:n] as the initial content. It returns an
// *EncodingError wrapping ErrInvalidEncoding if that prefix is not valid
// UTF-8; the region is left unclaimed in that case.
//
// FromUTF8 panics if n is outside [0, len(region)].
func FromUTF8(region []byte, n int) (*Buffer, error) {
	checkLen(region, n)
	if !utf8.Valid(region[:n]) {
		return nil, &EncodingError{Region: region, Len: n, ValidUpTo: validUpTo(region[:n])}
	}
	return bind(region, n), nil
}

// FromBytes binds region with all of it as the initial content, leaving no
// spare capacity.
func FromBytes(region []byte) (*Buffer, error) {
	return FromUTF8(region, len(region))
}

// Len returns the content length in bytes.
func (b *Buffer) Len() int { return b.n }

// Cap returns the size of the bound region in bytes.
func (b *Buffer) Cap() int { return len(b.region) }

// Available returns the number of bytes that can still be appended.
func (b *Buffer) Available() int { return len(b.region) - b.n }

func (b *Buffer) IsEmpty() bool { return b.n == 0 }

// Bytes returns the content as a byte slice sharing the region. It is meant
// for read-only consumers: writing through it may break the UTF-8 content
// (use UnsafeBytes for that). The slice is capped at Len.
func (b *Buffer) Bytes() []byte {
	return b.region[:b.n:b.n]
}

// IsCharBoundary reports whether i is the start or end of a rune in the
// content. 0 and Len are always boundaries; indices past Len are not.
func (b *Buffer) IsCharBoundary(i int) bool {
	switch {
	case i == 0 || i == b.n:
		return true
	case i < 0 || i > b.n:
		return false
	default:
		return utf8.RuneStart(b.region[i])
	}
}

// Runes iterates over the content, yielding the byte offset and value of
// each rune. The Buffer must not be mutated during iteration.
func (b *Buffer) Runes() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for i, r := range b.view() {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Release ends b's ownership of its region and returns the region together
// with the content length. b is left as an empty Buffer of capacity 0, and the
// region may be bound again.
func (b *Buffer) Release() (region []byte, n int) {
	region, n = b.region, b.n
	b.untrack()
	b.region, b.n = nil, 0
	return region, n
}

func checkLen(region []byte, n int) {
	if n < 0 || n > len(region) {
		panic(fmt.Sprintf("buffer: length %d out of range for region of %d bytes", n, len(region)))
	}
}

// bind claims region and wraps it. region[:n] must already be valid UTF-8.
func bind(region []byte, n int) *Buffer {
	checkLen(region, n)
	region = region[:len(region):len(region)]

	lease, err := claims.Claim(region)
	if err != nil {
		panic(err)
	}

	b := &Buffer{region: region, n: n}
	b.track(lease)
	return b
}

func validUpTo(p []byte) int {
	i := 0
	for i < len(p) {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		i += size
	}
	return i
}

// noCopy may be embedded into structs which must not be copied after first
// use; go vet's copylocks check reports copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
