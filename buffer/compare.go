package buffer

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether b and o hold the same text. A nil Buffer compares as
// empty.
func (b *Buffer) Equal(o *Buffer) bool { return b.view() == o.view() }

// EqualString reports whether b holds exactly s.
func (b *Buffer) EqualString(s string) bool { return b.view() == s }

// Compare orders b and o lexicographically, returning -1, 0 or +1 like
// strings.Compare. Byte order and code point order agree for UTF-8.
func (b *Buffer) Compare(o *Buffer) int { return strings.Compare(b.view(), o.view()) }

// CompareString orders b against s.
func (b *Buffer) CompareString(s string) int { return strings.Compare(b.view(), s) }

// StringEqual reports whether s equals the text of b.
func StringEqual(s string, b *Buffer) bool { return s == b.view() }

// StringCompare orders s against b.
func StringCompare(s string, b *Buffer) int { return strings.Compare(s, b.view()) }

// Sum64 returns the xxhash64 of the text. Buffers with equal text, and the
// string holding the same text (see HashString), hash alike.
func (b *Buffer) Sum64() uint64 { return xxhash.Sum64String(b.view()) }

// HashString hashes s the way Sum64 hashes a Buffer.
func HashString(s string) uint64 { return xxhash.Sum64String(s) }
