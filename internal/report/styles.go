package report

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#9D61FF")
	green  = lipgloss.Color("#22C55E")
	dim    = lipgloss.Color("#9CA3AF")
)

// styles decorates report lines. The zero value renders plain text.
type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	ok    lipgloss.Style
}

func plainStyles() styles {
	s := lipgloss.NewStyle()
	return styles{title: s, label: s, value: s, ok: s}
}

func colorStyles() styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(accent),
		label: lipgloss.NewStyle().Foreground(dim),
		value: lipgloss.NewStyle().Bold(true),
		ok:    lipgloss.NewStyle().Foreground(green).Bold(true),
	}
}
