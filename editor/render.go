package editor

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	graphemeutil "github.com/iw2rmb/slicestr/internal/grapheme"
)

// View renders the prompt, the tail of the text that fits the width, the
// cursor, and a len/cap gauge.
func (m Model) View() string {
	if m.buf == nil {
		return ""
	}
	st := m.cfg.Style

	gauge := " " + strconv.Itoa(m.buf.Len()) + "/" + strconv.Itoa(m.buf.Cap())
	if m.full {
		gauge = st.GaugeFull.Render(gauge + " full")
	} else {
		gauge = st.Gauge.Render(gauge)
	}

	cursor := ""
	if m.focused {
		cursor = st.Cursor.Render(" ")
	}

	prompt := st.Prompt.Render(m.cfg.Prompt)

	text := m.buf.String()
	var body string
	if text == "" && m.cfg.Placeholder != "" {
		body = st.Placeholder.Render(m.clip(m.cfg.Placeholder, prompt, cursor, gauge))
	} else {
		body = st.Text.Render(m.clip(text, prompt, cursor, gauge))
	}

	return prompt + body + cursor + gauge
}

// clip keeps the tail of text that fits beside the other parts of the line.
// A zero width disables clipping.
func (m Model) clip(text string, parts ...string) string {
	if m.width <= 0 {
		return text
	}
	avail := m.width
	for _, p := range parts {
		avail -= lipgloss.Width(p)
	}
	if graphemeutil.Width(text) <= avail {
		return text
	}
	return graphemeutil.TailToWidth(text, avail)
}
