package buffer

import (
	"fmt"
	"strconv"
)

// String returns a copy of the content.
func (b *Buffer) String() string {
	return string(b.Bytes())
}

// Format renders b with the string verbs: %s and %v print the raw text, %q
// and %#v print it Go-quoted with non-printable runes escaped, %x and %X print
// hex. Width, precision and flags behave as for a string.
func (b *Buffer) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), b.view())
}

// AppendDisplay appends the raw text to dst.
func (b *Buffer) AppendDisplay(dst []byte) []byte {
	return append(dst, b.Bytes()...)
}

// AppendDebug appends the Go-quoted text to dst, escaping non-printable
// runes.
func (b *Buffer) AppendDebug(dst []byte) []byte {
	return strconv.AppendQuote(dst, b.view())
}
