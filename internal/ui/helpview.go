package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/argset-tools/argset/internal/style"
)

type helpKeyMap struct {
	Quit key.Binding
}

var helpKeys = helpKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// helpModel is the Bubble Tea model for the built-in help viewer: a
// scrollable viewport with a title bar and a scroll-position footer.
type helpModel struct {
	title    string
	content  string
	ready    bool
	viewport viewport.Model
}

func newHelpModel(title, content string) helpModel {
	return helpModel{title: title, content: content}
}

// Init implements tea.Model
func (m helpModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m helpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		chrome := len(strings.Split(m.headerView(), "\n")) + 1 // header + footer
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chrome)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chrome
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, helpKeys.Quit) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m helpModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m helpModel) headerView() string {
	return style.Header(m.title)
}

func (m helpModel) footerView() string {
	percent := fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100)
	return style.Muted(percent + "  (q to quit)")
}

// Browse opens the content in the built-in interactive viewer. Blocks
// until the user quits.
func Browse(title, content string) error {
	p := tea.NewProgram(newHelpModel(title, content), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
