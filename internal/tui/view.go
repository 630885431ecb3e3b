package tui

import (
	"fmt"
	"strings"

	"reellog/internal/library"
	"reellog/internal/movie"
)

func (m model) View() string {
	if m.quitting {
		return farewell + "\n"
	}

	var b strings.Builder
	switch m.screen {
	case mainScreen:
		b.WriteString(m.styles.header.Render("Movie Tracker"))
		b.WriteString("\n\n")
		m.writeStatus(&b)
		m.writeMenu(&b, mainItems)
	case listScreen:
		b.WriteString(m.styles.heading(m.list).Render(fmt.Sprintf("%s Movies Menu", m.list)))
		b.WriteString("\n\n")
		m.writeStatus(&b)
		m.writeMenu(&b, listItems)
	case displayScreen:
		m.writeDisplay(&b)
	default:
		m.writeForm(&b)
	}
	return b.String()
}

func (m model) writeStatus(b *strings.Builder) {
	if m.status == "" {
		return
	}
	b.WriteString(m.status)
	b.WriteString("\n\n")
}

func (m model) writeMenu(b *strings.Builder, items []string) {
	for i, item := range items {
		line := fmt.Sprintf("%d. %s", i+1, item)
		if i == m.cursor {
			b.WriteString(m.styles.cursor.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(fmt.Sprintf("↑/↓ or 1-%d: choose • enter: select • q: back", len(items))))
	b.WriteString("\n")
}

func (m model) writeDisplay(b *strings.Builder) {
	b.WriteString(m.styles.header.Render(fmt.Sprintf("%s Movies", m.list)))
	b.WriteString("\n\n")
	records := m.lib.List(m.list)
	if len(records) == 0 {
		b.WriteString("No movies to display.\n")
	}
	for i, rec := range records {
		b.WriteString(fmt.Sprintf("%d. ", i+1))
		b.WriteString(m.renderRecord(m.list, rec))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("press any key to return"))
	b.WriteString("\n")
}

func (m model) renderRecord(list library.List, rec movie.Record) string {
	return fmt.Sprintf("%s\n   %s\n   %s",
		m.styles.heading(list).Render(rec.Title),
		rec.Description,
		m.styles.duration.Render(rec.DurationLabel()),
	)
}

func (m model) writeForm(b *strings.Builder) {
	var title string
	switch m.screen {
	case addScreen:
		title = fmt.Sprintf("Add Movie to %s", m.list)
	case removeScreen:
		title = fmt.Sprintf("Remove Movie from %s", m.list)
	default:
		title = "Search Movie"
	}
	b.WriteString(m.styles.header.Render(title))
	b.WriteString("\n\n")
	for i, f := range m.fields {
		if i > m.focus {
			break
		}
		b.WriteString(f.input.View())
		b.WriteString("\n")
		if f.err != "" {
			b.WriteString(m.styles.errText.Render(f.err))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("enter: confirm • esc: cancel"))
	b.WriteString("\n")
}
