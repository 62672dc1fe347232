package editor

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func plainStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return DefaultStyleFor(r)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestModel_NewDropsTextThatDoesNotFit(t *testing.T) {
	m := New(Config{Capacity: 5, Text: "héllo"})
	if got, want := m.Value(), "héll"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
	if m.Buffer().Cap() != 5 {
		t.Fatalf("cap=%d, want 5", m.Buffer().Cap())
	}
}

func TestModel_UsesCallerRegion(t *testing.T) {
	region := make([]byte, 8)
	m := New(Config{Region: region, Capacity: 100})
	m = press(m, runes("ab"))

	if string(region[:2]) != "ab" {
		t.Fatalf("text not written into caller region: %q", region[:2])
	}
	got, n := m.Release()
	if &got[0] != &region[0] || n != 2 {
		t.Fatalf("release returned (%p, %d)", got, n)
	}
}

func TestModel_TypingAndEditing(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Capacity: 16,
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})

	m = press(m,
		runes("hé"),
		tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
		runes("wörld"),
	)
	if got, want := m.Value(), "hé wörld"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got, want := m.Value(), "hé wörl"; got != want {
		t.Fatalf("after backspace=%q, want %q", got, want)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlW})
	if got, want := m.Value(), "hé "; got != want {
		t.Fatalf("after delete word=%q, want %q", got, want)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	if m.Value() != "" {
		t.Fatalf("after clear=%q", m.Value())
	}

	if len(events) != 6 {
		t.Fatalf("change events=%d, want 6: %+v", len(events), events)
	}
	last := events[len(events)-1]
	if last.Text != "" || last.Len != 0 || last.Cap != 16 {
		t.Fatalf("last event=%+v", last)
	}
}

func TestModel_InsertThatDoesNotFitIsRejectedWhole(t *testing.T) {
	calls := 0
	m := New(Config{Capacity: 4, OnChange: func(ChangeEvent) { calls++ }})

	m = press(m, runes("abc"), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("dé"), Paste: true})
	if m.Value() != "abc" {
		t.Fatalf("value=%q, want %q", m.Value(), "abc")
	}
	if !m.Full() {
		t.Fatalf("expected full flag after rejected paste")
	}
	if calls != 1 {
		t.Fatalf("change events=%d, want 1", calls)
	}

	m = press(m, runes("d"))
	if m.Value() != "abcd" || m.Full() {
		t.Fatalf("value=%q full=%v", m.Value(), m.Full())
	}
}

func TestModel_Submit(t *testing.T) {
	var submitted []string
	m := New(Config{Capacity: 8, OnSubmit: func(s string) { submitted = append(submitted, s) }})

	m = press(m, runes("go"), tea.KeyMsg{Type: tea.KeyEnter})
	if len(submitted) != 1 || submitted[0] != "go" {
		t.Fatalf("submitted=%q", submitted)
	}
	if m.Value() != "" {
		t.Fatalf("field not cleared after submit: %q", m.Value())
	}
}

func TestModel_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{Capacity: 8}).Blur()
	m = press(m, runes("x"))
	if m.Value() != "" {
		t.Fatalf("blurred model accepted input: %q", m.Value())
	}
	m = press(m.Focus(), runes("x"))
	if m.Value() != "x" {
		t.Fatalf("focused model rejected input: %q", m.Value())
	}
}

func TestLastWordStart(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "word", want: 0},
		{text: "two words", want: 4},
		{text: "two words  ", want: 4},
		{text: "añejo vïno", want: len("añejo ")},
	}
	for _, tc := range cases {
		if got := lastWordStart([]byte(tc.text)); got != tc.want {
			t.Fatalf("lastWordStart(%q)=%d, want %d", tc.text, got, tc.want)
		}
	}
}
