package editor

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/slicestr/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.insert(string(msg.Runes))
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Backspace):
		if _, ok := m.buf.Pop(); ok {
			m.full = false
			m.notifyChange()
		}
	case key.Matches(msg, km.DeleteWord):
		if cut := lastWordStart(m.buf.Bytes()); cut < m.buf.Len() {
			m.buf.Truncate(cut)
			m.full = false
			m.notifyChange()
		}
	case key.Matches(msg, km.Clear):
		if !m.buf.IsEmpty() {
			m.buf.Clear()
			m.full = false
			m.notifyChange()
		}
	case key.Matches(msg, km.Submit):
		text := m.buf.String()
		if m.cfg.OnSubmit != nil {
			m.cfg.OnSubmit(text)
		}
		m.full = false
		if text != "" {
			m.buf.Clear()
			m.notifyChange()
		}
	case msg.Type == tea.KeySpace:
		m.insert(" ")
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		m.insert(string(msg.Runes))
	}

	return m, nil
}

// insert appends s whole or, if it does not fit, not at all.
func (m *Model) insert(s string) {
	err := m.buf.PushString(s)
	if errors.Is(err, buffer.ErrCapacityExceeded) {
		m.full = true
		return
	}
	m.full = false
	if s != "" {
		m.notifyChange()
	}
}

// lastWordStart returns the byte offset where the last word of p begins,
// after skipping trailing whitespace. The result is always a rune boundary.
func lastWordStart(p []byte) int {
	i := len(p)
	for i > 0 {
		r, size := utf8.DecodeLastRune(p[:i])
		if !unicode.IsSpace(r) {
			break
		}
		i -= size
	}
	for i > 0 {
		r, size := utf8.DecodeLastRune(p[:i])
		if unicode.IsSpace(r) {
			break
		}
		i -= size
	}
	return i
}
