// internal/tui/viewer.go
// Package tui shows a finished report in a scrollable, read-only terminal view.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/gpubench/internal/util"
)

const (
	headerHeight = 2
	footerHeight = 2
)

// model is the Bubble Tea model of the viewer. The content is never edited;
// it is only re-wrapped to the window width.
type model struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

func newModel(title, content string) *model {
	vp := viewport.New(100, 20)
	vp.SetContent(content)
	return &model{title: title, content: content, viewport: vp}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 1)
		m.viewport.SetContent(util.Wrap(m.content, msg.Width))
		m.ready = true
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(renderTitleBadge(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	help := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(" (↑/↓ to scroll, q to quit)")
	b.WriteString("\n" + renderScrollBadge(m.viewport.ScrollPercent()) + help)
	return b.String()
}

// Run shows content until the user quits.
func Run(title, content string) error {
	p := tea.NewProgram(newModel(title, content), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
