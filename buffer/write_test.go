package buffer

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

type pair struct {
	X uint32
	Y uint32
}

var (
	_ io.Writer       = (*Buffer)(nil)
	_ io.StringWriter = (*Buffer)(nil)
	_ fmt.Formatter   = (*Buffer)(nil)
	_ fmt.Stringer    = (*Buffer)(nil)
)

func TestBuffer_Fprintf(t *testing.T) {
	b := New(make([]byte, 32))

	if _, err := fmt.Fprintf(b, "%d -> %+v", 123, pair{X: 0, Y: 1234}); err != nil {
		t.Fatalf("Fprintf: %v", err)
	}
	if got, want := b.String(), "123 -> {X:0 Y:1234}"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_FprintfOverflowWritesNothing(t *testing.T) {
	b := New(make([]byte, 4))

	_, err := fmt.Fprintf(b, "%+v", pair{X: 0, Y: 1234})
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("err=%v, want %v", err, ErrCapacityExceeded)
	}
	if b.Len() != 0 {
		t.Fatalf("partial write of %d bytes: %q", b.Len(), b.String())
	}
}

func TestBuffer_Write(t *testing.T) {
	cases := []struct {
		name     string
		prefix   string
		p        []byte
		capacity int
		wantN    int
		wantErr  error
		want     string
	}{
		{name: "fits", prefix: "a", p: []byte("bé"), capacity: 4, wantN: 3, want: "abé"},
		{name: "exact", prefix: "", p: []byte("€"), capacity: 3, wantN: 3, want: "€"},
		{name: "overflow", prefix: "a", p: []byte("bcde"), capacity: 4, wantErr: ErrCapacityExceeded, want: "a"},
		{name: "invalid", prefix: "a", p: []byte{'b', 0xff}, capacity: 4, wantErr: ErrInvalidEncoding, want: "a"},
		{name: "split-rune", prefix: "", p: []byte("€")[:2], capacity: 4, wantErr: ErrInvalidEncoding, want: ""},
		{name: "empty", prefix: "a", p: nil, capacity: 1, wantN: 0, want: "a"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := bufferWith(t, tc.prefix, tc.capacity)
			n, err := b.Write(tc.p)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err=%v, want %v", err, tc.wantErr)
			}
			if n != tc.wantN {
				t.Fatalf("n=%d, want %d", n, tc.wantN)
			}
			if b.String() != tc.want {
				t.Fatalf("text=%q, want %q", b.String(), tc.want)
			}
		})
	}
}

func TestBuffer_WriteStringAndRune(t *testing.T) {
	b := New(make([]byte, 6))

	if n, err := b.WriteString("ab"); err != nil || n != 2 {
		t.Fatalf("WriteString = (%d, %v)", n, err)
	}
	if n, err := b.WriteRune('€'); err != nil || n != 3 {
		t.Fatalf("WriteRune = (%d, %v)", n, err)
	}
	if n, err := b.WriteRune('é'); !errors.Is(err, ErrCapacityExceeded) || n != 0 {
		t.Fatalf("WriteRune overflow = (%d, %v)", n, err)
	}
	if n, err := b.WriteString("cd"); !errors.Is(err, ErrCapacityExceeded) || n != 0 {
		t.Fatalf("WriteString overflow = (%d, %v)", n, err)
	}
	if b.String() != "ab€" {
		t.Fatalf("text=%q", b.String())
	}
}
