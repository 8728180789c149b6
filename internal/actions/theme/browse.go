package theme

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/raven-themes/raven/internal/actions"
	"github.com/raven-themes/raven/internal/dispatchers"
	"github.com/raven-themes/raven/internal/ui/style"
	"github.com/raven-themes/raven/internal/usage"
)

//
// Public API
//

// Browse opens a picker over the installed themes and prints the directory
// of the chosen one.
func Browse(args []string, _ *dispatchers.ParsedFlags) error {
	return run(browse, args, false)
}

//
// Entrypoint
//

func browse(_ []string, _ bool, deps Deps) error {
	// Bubble Tea needs a real terminal
	if !deps.Interactive() {
		return usage.NotInteractive("theme browse")
	}

	themes, err := installedThemes(deps.ThemesDir, deps.Store)
	if err != nil {
		return actions.Describe(err)
	}
	if len(themes) == 0 {
		_, _ = deps.Println("No themes installed. Download one with " + deps.Styler.Info("`raven theme download <name>`"))
		return nil
	}

	final, err := deps.RunProgram(newBrowser(themes))
	if err != nil {
		return actions.Describe(err)
	}

	fm, ok := final.(browser)
	if !ok {
		deps.Logger.Warn("browse: program returned %T", final)
		_, _ = deps.Println("Cancelled")
		return nil
	}
	if fm.chosen != nil {
		_, _ = deps.Println(fm.chosen.Dir)
		return nil
	}
	if fm.cancelled {
		_, _ = deps.Println("Cancelled")
	}
	return nil
}

//
// Key bindings
//

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "cancel")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Top, k.Bottom}, {k.Select, k.Quit}}
}

//
// Model
//

type browser struct {
	themes    []localTheme
	cursor    int
	chosen    *localTheme
	cancelled bool
	keys      keyMap
	help      help.Model
}

func newBrowser(themes []localTheme) browser {
	return browser{
		themes: themes,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

//
// Bubble Tea lifecycle
//

func (m browser) Init() tea.Cmd {
	return nil
}

func (m browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		last := len(m.themes) - 1
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			} else {
				m.cursor = last
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < last {
				m.cursor++
			} else {
				m.cursor = 0
			}
		case key.Matches(msg, m.keys.Top):
			m.cursor = 0
		case key.Matches(msg, m.keys.Bottom):
			m.cursor = last
		case key.Matches(msg, m.keys.Select):
			chosen := m.themes[m.cursor]
			m.chosen = &chosen
			return m, tea.Quit
		}
	}

	return m, nil
}

//
// View
//

func (m browser) View() string {
	var b strings.Builder

	b.WriteString(style.Header("Installed themes"))
	b.WriteString("\n\n")

	left := make([]string, len(m.themes))
	for i, t := range m.themes {
		cursor := "   "
		if i == m.cursor {
			cursor = " → "
		}
		name := lipgloss.NewStyle().Width(18)
		if i == m.cursor {
			name = name.Bold(true)
		}
		left[i] = cursor + name.Render(t.Name)
	}

	b.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Top,
		strings.Join(left, "\n"),
		"    ",
		style.Card(strings.Join(previewLines(m.themes[m.cursor]), "\n"), 48),
	))

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

//
// Preview rendering
//

func previewLines(t localTheme) []string {
	lines := []string{style.Accent(t.Name), ""}

	if t.Meta.Description != "" {
		lines = append(lines, t.Meta.Description)
	} else {
		lines = append(lines, style.Muted("no description"))
	}

	lines = append(lines, "")
	if t.Meta.HasScreenshot() {
		lines = append(lines, style.Muted("screenshot: ")+t.Meta.Screenshot)
	} else {
		lines = append(lines, style.Muted("screenshot: none"))
	}

	if t.Hook {
		lines = append(lines, "", style.Warning("runs a script when loaded"))
	}
	return lines
}
