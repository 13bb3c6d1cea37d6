package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + status marks + panel border.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Date                                          lipgloss.Style
	MarkDone, MarkPending                         string
	SymOK, SymFail                                string
	Border                                        lipgloss.Border
	// Plain disables styling entirely.
	Plain bool
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:        "classic",
		Title:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Date:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		MarkDone:    "✓",
		MarkPending: "✗",
		SymOK:       "✔",
		SymFail:     "✖",
		Border:      lipgloss.NormalBorder(),
	}
}

// SetTheme switches the palette; unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		t := classic()
		t.Name = "neon"
		t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		t.Date = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		t.Border = lipgloss.RoundedBorder()
		current = t
	case "mono":
		current = Theme{
			Name:        "mono",
			MarkDone:    "x",
			MarkPending: " ",
			SymOK:       "ok:",
			SymFail:     "error:",
			Border:      lipgloss.ASCIIBorder(),
			Plain:       true,
		}
	default:
		current = classic()
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }

// C renders s with style unless the theme is plain.
func C(style lipgloss.Style, s string) string {
	if current.Plain {
		return s
	}
	return style.Render(s)
}
