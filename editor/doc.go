// Package editor provides a Bubble Tea single-line input whose text lives in
// a fixed-capacity buffer.Buffer.
//
// The input never grows past its capacity: typed or pasted text that does not
// fit is rejected whole and the view flags the field as full.
package editor
