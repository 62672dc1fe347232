package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Prompt      lipgloss.Style
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style
	Gauge       lipgloss.Style
	GaugeFull   lipgloss.Style
}

func DefaultStyle() Style {
	return DefaultStyleFor(lipgloss.DefaultRenderer())
}

// DefaultStyleFor builds the default style on renderer r.
func DefaultStyleFor(r *lipgloss.Renderer) Style {
	return Style{
		Prompt:      r.NewStyle().Foreground(lipgloss.Color("244")),
		Text:        r.NewStyle(),
		Placeholder: r.NewStyle().Foreground(lipgloss.Color("240")),
		Cursor:      r.NewStyle().Reverse(true),
		Gauge:       r.NewStyle().Foreground(lipgloss.Color("240")),
		GaugeFull:   r.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
}
