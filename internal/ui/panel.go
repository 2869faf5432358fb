package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects status lines and panels, mainly for tests.
func SetOutput(out, errOut io.Writer) {
	stdout, stderr = out, errOut
}

func OK(msg string) {
	t := Current()
	fmt.Fprintln(stdout, t.Success.Render(t.SymOK+" "+msg))
}

func Fail(msg string) {
	t := Current()
	fmt.Fprintln(stderr, t.Error.Render(t.SymFail+" "+msg))
}

// ShareBar renders how many of total carry the badge as a bar.
func ShareBar(part, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(part) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %d/%d", bar, part, total)
}

// Box frames inner with the current theme's border.
func Box(inner string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(inner)
}

// Panel draws a framed box using the current theme.
func Panel(lines []string) {
	fmt.Fprintln(stdout, Box(strings.Join(lines, "\n")))
}
