package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Badge, Selected lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	SymBadge, SymNoBadge, SymSelected, SymOK, SymFail string
}

var current = classic()

func classic() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Badge:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")).Bold(true),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),

		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),

		SymBadge: " A ", SymNoBadge: "   ", SymSelected: "> ",
		SymOK: "✔", SymFail: "✖",
	}
}

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		t := classic()
		t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		t.Badge = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Bold(true)
		t.BorderColor = lipgloss.Color("13")
		t.SymBadge = " Ⓐ "
		current = t
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain,
			Badge: plain, Selected: plain,
			Border: lipgloss.NormalBorder(), BorderColor: lipgloss.NoColor{},
			SymBadge: "[A]", SymNoBadge: "   ", SymSelected: "> ",
			SymOK: "ok", SymFail: "error:",
		}
	default: // classic
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }

// BadgeCell renders the avenger badge, or blank space of the same width.
func BadgeCell(visible bool) string {
	t := Current()
	if visible {
		return t.Badge.Render(t.SymBadge)
	}
	return t.SymNoBadge
}
