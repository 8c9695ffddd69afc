package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/hostabi/paramid"
)

const defaultPreviewCap = 16

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	bufStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type entry struct {
	name     string
	id       uint32
	collides string
}

type interactiveModel struct {
	input     textinput.Model
	entries   []entry
	byID      map[uint32]string
	narrowCap int
	wideCap   int
}

func newInteractiveModel(narrowCap, wideCap int) *interactiveModel {
	if narrowCap == 0 {
		narrowCap = defaultPreviewCap
	}
	if wideCap == 0 {
		wideCap = defaultPreviewCap
	}

	ti := textinput.New()
	ti.Placeholder = "parameter name"
	ti.Prompt = "name: "
	ti.Width = 40
	ti.Focus()

	return &interactiveModel{
		input:     ti,
		byID:      make(map[uint32]string),
		narrowCap: narrowCap,
		wideCap:   wideCap,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			m.add(m.input.Value())
			m.input.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// add records name and flags an id already taken by a different name.
func (m *interactiveModel) add(name string) {
	if name == "" {
		return
	}
	e := entry{name: name, id: paramid.Hash(name)}
	if prev, ok := m.byID[e.id]; ok {
		if prev == name {
			return
		}
		e.collides = prev
	} else {
		m.byID[e.id] = name
	}
	m.entries = append(m.entries, e)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Parameter IDs"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	name := m.input.Value()
	b.WriteString("id:     ")
	b.WriteString(idStyle.Render(fmt.Sprintf("%d (%#08x)", paramid.Hash(name), paramid.Hash(name))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("narrow: %s\n", bufStyle.Render(fmt.Sprintf("[%d] %q", m.narrowCap, narrowPreview(name, m.narrowCap)))))
	if preview, err := widePreview(name, m.wideCap); err != nil {
		b.WriteString(fmt.Sprintf("wide:   %s\n", errorStyle.Render(err.Error())))
	} else {
		b.WriteString(fmt.Sprintf("wide:   %s\n", bufStyle.Render(fmt.Sprintf("[%d] %q", m.wideCap, preview))))
	}

	if len(m.entries) > 0 {
		b.WriteString("\n")
		for _, e := range m.entries {
			line := fmt.Sprintf("  %-32s %s", e.name, idStyle.Render(fmt.Sprintf("%d", e.id)))
			if e.collides != "" {
				line += " " + errorStyle.Render("collides with "+e.collides)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter add • esc quit"))
	return b.String()
}

func runInteractive(narrowCap, wideCap int) error {
	p := tea.NewProgram(newInteractiveModel(narrowCap, wideCap), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
