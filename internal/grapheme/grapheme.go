// Package grapheme measures text for terminal display.
package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	w := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w += clusterWidth(g.Str())
	}
	return w
}

// TailToWidth returns the longest suffix of text, cut on grapheme
// boundaries, that fits in width cells.
func TailToWidth(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}

	var bounds []int
	var widths []int
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		start, _ := g.Positions()
		bounds = append(bounds, start)
		widths = append(widths, clusterWidth(g.Str()))
	}

	used := 0
	cut := len(text)
	for i := len(bounds) - 1; i >= 0; i-- {
		if used+widths[i] > width {
			break
		}
		used += widths[i]
		cut = bounds[i]
	}
	return text[cut:]
}

func clusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}
