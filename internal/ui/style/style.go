// Package style provides semantic terminal styling using lipgloss.
//
// All styling is semantic (Success, Warning, Error, ...) rather than visual.
// When disabled, every helper returns its input unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	colors  ColorConfig

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
	accentStyle  lipgloss.Style
	cardStyle    = plainCard()
)

// Init sets up styling. NO_COLOR and RAVEN_NO_COLOR disable it regardless
// of enable. cfg supplies color_theme; nil uses the default theme.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("RAVEN_NO_COLOR") != "" {
		enable = false
	}

	enabled = enable
	colors = ColorConfig{}
	if !enabled {
		cardStyle = plainCard()
		return
	}

	colors = LoadColorConfig(cfg)
	initStyles(colors)
}

// GetColors returns the active color configuration, empty when disabled.
func GetColors() ColorConfig {
	return colors
}

func initStyles(colors ColorConfig) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(colors.Success)
	warningStyle = makeStyle(colors.Warning)
	errorStyle = makeStyle(colors.Error)
	infoStyle = makeStyle(colors.Info)
	mutedStyle = makeStyle(colors.Muted)
	headerStyle = makeStyle(colors.Header)
	accentStyle = makeStyle(colors.Accent)
	cardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(0, 1)
}

func plainCard() lipgloss.Style {
	return lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
}

// makeStyle accepts "bold" or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Success styles text for successful operations.
func Success(text string) string { return render(successStyle, text) }

// Warning styles text for warnings, including flagged-theme notices.
func Warning(text string) string { return render(warningStyle, text) }

// Error styles text for error messages.
func Error(text string) string { return render(errorStyle, text) }

// Info styles text for commands and informational values.
func Info(text string) string { return render(infoStyle, text) }

// Header styles section headers.
func Header(text string) string { return render(headerStyle, text) }

// Muted styles secondary information.
func Muted(text string) string { return render(mutedStyle, text) }

// Accent styles theme names.
func Accent(text string) string { return render(accentStyle, text) }

// Card frames a block of text. The border is drawn even without color.
func Card(text string, width int) string {
	s := cardStyle
	if width > 0 {
		s = s.Width(width)
	}
	return s.Render(text)
}
