package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/slicestr"
	"github.com/iw2rmb/slicestr/editor"
	"github.com/iw2rmb/slicestr/internal/logging"
)

const maxHistory = 5

type history struct {
	items []string
}

func (h *history) add(s string) {
	h.items = append(h.items, s)
	if len(h.items) > maxHistory {
		h.items = h.items[len(h.items)-maxHistory:]
	}
}

type model struct {
	editor  editor.Model
	history *history
	log     zerolog.Logger
}

func newModel(cfg demoConfig, log zerolog.Logger) model {
	h := &history{}
	ecfg := editor.Config{
		Capacity:    cfg.Capacity,
		Text:        cfg.Text,
		Prompt:      cfg.Prompt,
		Placeholder: cfg.Placeholder,
		Style:       editor.DefaultStyle(),
		OnChange: func(ev editor.ChangeEvent) {
			log.Debug().Int("len", ev.Len).Int("cap", ev.Cap).Msg("text changed")
		},
		OnSubmit: func(text string) {
			log.Info().Str("text", text).Msg("submitted")
			h.add(text)
		},
	}
	return model{editor: editor.New(ecfg), history: h, log: log}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	prevFull := m.editor.Full()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Full() && !prevFull {
		b := m.editor.Buffer()
		m.log.Warn().Int("len", b.Len()).Int("cap", b.Cap()).Msg("input rejected: capacity exceeded")
	}
	return m, cmd
}

var (
	dim   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	title = lipgloss.NewStyle().Bold(true)
)

func (m model) View() string {
	b := m.editor.Buffer()

	var sb strings.Builder
	sb.WriteString(title.Render("slicestr " + slicestr.VersionTag()))
	sb.WriteString("\n\n")
	sb.WriteString(m.editor.View())
	sb.WriteString("\n")
	sb.WriteString(dim.Render(fmt.Sprintf("%q  xxh64=%016x", b, b.Sum64())))
	sb.WriteString("\n\n")
	for _, item := range m.history.items {
		sb.WriteString(dim.Render("• " + item))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(dim.Render(helpLine(editor.DefaultKeyMap()) + " • esc quit"))
	return sb.String()
}

func helpLine(km editor.KeyMap) string {
	parts := make([]string, 0, 4)
	for _, b := range km.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func run() error {
	configPath := flag.String("config", "", "path to a TOML config file")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(slicestr.Version())
		return nil
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	out, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	log := logging.Runtime(out, "slicestr-demo")
	log.Info().Int("capacity", cfg.Capacity).Str("config", *configPath).Msg("starting")

	p := tea.NewProgram(newModel(cfg, log))
	if _, err := p.Run(); err != nil {
		return err
	}
	log.Info().Msg("stopped")
	return nil
}

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString("slicestr-demo: " + err.Error() + "\n")
		os.Exit(1)
	}
}
