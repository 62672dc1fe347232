package buffer

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}

// bufferWith binds a region of capacity bytes holding text.
func bufferWith(t *testing.T, text string, capacity int) *Buffer {
	t.Helper()
	region := make([]byte, capacity)
	n := copy(region, text)
	b, err := FromUTF8(region, n)
	if err != nil {
		t.Fatalf("FromUTF8(%q): %v", text, err)
	}
	return b
}

type bufferState struct {
	Text string
	Len  int
	Cap  int
}

func stateOf(b *Buffer) bufferState {
	return bufferState{Text: b.String(), Len: b.Len(), Cap: b.Cap()}
}

func assertInvariants(t *testing.T, b *Buffer) {
	t.Helper()
	if b.Len() < 0 || b.Len() > b.Cap() {
		t.Fatalf("len=%d outside [0, cap=%d]", b.Len(), b.Cap())
	}
	if !utf8.Valid(b.Bytes()) {
		t.Fatalf("content is not valid utf-8: %q", b.Bytes())
	}
}

func repeat(s string, n int) string { return strings.Repeat(s, n) }
