package tui

import (
	"github.com/charmbracelet/lipgloss"

	"reellog/internal/library"
)

type styles struct {
	colorize bool
	header   lipgloss.Style
	watched  lipgloss.Style
	toWatch  lipgloss.Style
	errText  lipgloss.Style
	success  lipgloss.Style
	duration lipgloss.Style
	cursor   lipgloss.Style
	help     lipgloss.Style
}

func newStyles(colorize bool) styles {
	if !colorize {
		plain := lipgloss.NewStyle()
		return styles{
			header: plain, watched: plain, toWatch: plain, errText: plain,
			success: plain, duration: plain, cursor: plain, help: plain,
		}
	}
	return styles{
		colorize: true,
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		watched:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		toWatch:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		errText:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		duration: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		cursor:   lipgloss.NewStyle().Bold(true),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (s styles) list(list library.List) lipgloss.Style {
	if list == library.ToWatch {
		return s.toWatch
	}
	return s.watched
}

// heading is the bold variant of the list color.
func (s styles) heading(list library.List) lipgloss.Style {
	if !s.colorize {
		return s.list(list)
	}
	return s.list(list).Bold(true)
}
