package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/slicestr/buffer"
)

// Model is a Bubble Tea component that edits text held in a fixed-capacity
// buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool
	width   int

	// full is set when the last insert was rejected for lack of room.
	full bool
}

// New builds a focused Model. The backing region is cfg.Region or a fresh
// cfg.Capacity-byte slice.
func New(cfg Config) Model {
	cfg = cfg.withDefaults()

	region := cfg.Region
	if region == nil {
		region = make([]byte, cfg.Capacity)
	}
	m := Model{
		cfg:     cfg,
		buf:     buffer.New(region),
		focused: true,
	}
	for _, r := range cfg.Text {
		if m.buf.Push(r) != nil {
			break
		}
	}
	return m
}

// Buffer returns the buffer holding the text. Hosts may mutate it directly.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Value returns a copy of the current text.
func (m Model) Value() string { return m.buf.String() }

// Full reports whether the last insert was rejected because it did not fit.
func (m Model) Full() bool { return m.full }

// Release unbinds the backing region and returns it with the text length.
// The Model must not be used afterwards.
func (m Model) Release() ([]byte, int) { return m.buf.Release() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.width = width
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetWidth(msg.Width), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}
