package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// drawerEntry is one row of the navigation drawer.
type drawerEntry struct {
	label  string
	action func(m Model) (tea.Model, tea.Cmd)
}

func drawerEntries() []drawerEntry {
	return []drawerEntry{
		{"All articles", func(m Model) (tea.Model, tea.Cmd) {
			m.filter = FilterAll
			m.currentView = ViewFeed
			m.selectedRow = 0
			m.showDrawer = false
			m.savePrefs()
			return m, nil
		}},
		{"Favorites", func(m Model) (tea.Model, tea.Cmd) {
			m.filter = FilterFavorites
			m.currentView = ViewFeed
			m.selectedRow = 0
			m.showDrawer = false
			m.savePrefs()
			return m, nil
		}},
		{"Help", func(m Model) (tea.Model, tea.Cmd) {
			m.showDrawer = false
			m.showHelp = true
			return m, nil
		}},
		{"Quit", func(m Model) (tea.Model, tea.Cmd) {
			return m, tea.Quit
		}},
	}
}

func (m Model) handleDrawerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := drawerEntries()

	switch msg.String() {
	case "esc", "tab":
		m.showDrawer = false
		return m, nil
	case "j", "down":
		if m.drawerCursor < len(entries)-1 {
			m.drawerCursor++
		}
		return m, nil
	case "k", "up":
		if m.drawerCursor > 0 {
			m.drawerCursor--
		}
		return m, nil
	case "enter":
		return entries[m.drawerCursor].action(m)
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) renderDrawer() string {
	entries := drawerEntries()

	var b strings.Builder
	b.WriteString(m.styles.AccentText.Bold(true).Render("gazette"))
	b.WriteString("\n\n")
	for i, e := range entries {
		line := "  " + e.label
		if i == m.drawerCursor {
			line = m.styles.SelectedTitle.Render("▸ " + e.label)
		} else {
			line = m.styles.Text.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.FaintText.Render("j/k move · enter select · esc close"))

	card := m.styles.PanelFocus.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
