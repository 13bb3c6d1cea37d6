package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	full, empty := "█", "░"
	if current.Plain {
		full, empty = "#", "."
	}
	bar := strings.Repeat(full, filled) + strings.Repeat(empty, width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	border := lipgloss.NewStyle().
		Border(current.Border).
		Padding(0, 1)
	if !current.Plain {
		border = border.BorderForeground(lipgloss.Color("8"))
	}
	fmt.Fprintln(w, border.Render(strings.Join(lines, "\n")))
}
