package buffer

import "unsafe"

// FromUTF8Unchecked binds region with region[:n] as the initial content
// without validating it.
//
// WARNING: the caller must guarantee that region[:n] is valid UTF-8. Every
// other method relies on it; binding invalid bytes is undefined behaviour and
// is not detected later. Use FromUTF8 unless the bytes were produced by code
// that cannot emit invalid UTF-8.
//
// FromUTF8Unchecked panics if n is outside [0, len(region)].
func FromUTF8Unchecked(region []byte, n int) *Buffer {
	return bind(region, n)
}

// UnsafeBytes returns the content as a writable slice sharing the region.
//
// WARNING: the caller must leave the slice holding valid UTF-8 before the next
// call on b. The slice is capped at Len; use UnsafeSetLen to change the
// length.
func (b *Buffer) UnsafeBytes() []byte {
	return b.region[:b.n:b.n]
}

// UnsafeSetLen sets the content length to n without checking the bytes.
//
// WARNING: the caller must guarantee that the first n bytes of the region are
// valid UTF-8, including any stale bytes past the previous Len.
//
// UnsafeSetLen panics if n is outside [0, Cap()].
func (b *Buffer) UnsafeSetLen(n int) {
	checkLen(b.region, n)
	b.n = n
}

// UnsafeString returns the content as a string without copying.
//
// WARNING: the string aliases the region. It is only valid until the next
// mutation of b or of the region; after that its bytes may change, which Go
// strings must never do. Do not store it or let it escape to callers that
// expect an ordinary string. Use String for a stable copy.
func (b *Buffer) UnsafeString() string {
	return b.view()
}

// view aliases the content as a string for use inside a single call.
func (b *Buffer) view() string {
	if b == nil || b.n == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b.region), b.n)
}
