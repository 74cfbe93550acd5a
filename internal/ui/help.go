package ui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderHelp() string {
	title := m.styles.AccentText.Bold(true).Render("gazette")
	dim := m.styles.MutedText

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓      Move through the feed\n" +
		"  g/G            First / last article\n" +
		"  enter, o       Open article\n" +
		"  esc, backspace Back to the feed\n" +
		"  tab            Open the menu\n\n" +
		dim.Render("Actions") + "\n" +
		"  space          Toggle favorite\n" +
		"  f              Show all / favorites only\n" +
		"  r              Refresh\n" +
		"  x              Dismiss error\n\n" +
		dim.Render("General") + "\n" +
		"  T              Cycle theme\n" +
		"  ?              Toggle this help\n" +
		"  q, ctrl+c      Quit"

	card := m.styles.Panel.Render(help)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
