// Package buffer implements Buffer, a fixed-capacity UTF-8 string that lives
// entirely inside a caller-supplied byte region.
//
// A Buffer never allocates, grows, moves or copies its region. The bytes
// region[:Len()] are always valid UTF-8; region[Len():Cap()] are unspecified
// and never read as text. Every mutating method preserves that invariant:
//
//   - appends (Push, PushString, Write*) are atomic and report
//     ErrCapacityExceeded instead of writing a prefix;
//   - Truncate and SplitOff only accept indices on a rune boundary and panic
//     otherwise, since a split rune would corrupt the text;
//   - Pop removes one whole rune, scanning back over continuation bytes.
//
// # Ownership
//
// Binding a region claims it in a process-wide registry. Binding any byte of
// a region that is already bound to a live Buffer panics. Release hands the
// region back; a Buffer that becomes unreachable without Release gives up its
// claim when the garbage collector runs its cleanup. SplitOff transfers the
// tail of the region to a new Buffer in one step.
//
// A Buffer must not be copied and is not safe for concurrent use.
//
// # Trusted boundaries
//
// FromUTF8Unchecked, UnsafeBytes, UnsafeSetLen and UnsafeString skip the
// checks that keep the content valid or stable. Each documents the condition
// the caller must guarantee; breaking it is undefined behaviour, not an
// error. They all carry the Unsafe prefix so every use can be found with grep.
package buffer
