package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderHeader() string {
	left := m.styles.Header.Render("gazette")
	if m.loading() {
		left += " " + m.spinner.View()
	}

	right := m.styles.HeaderMeta.Render(time.Now().Format("Mon Jan 2") + " ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + fmt.Sprintf("%*s", gap, "") + right
}

func (m Model) renderStatusBar() string {
	if err := m.activeError(); err != nil {
		banner := m.styles.ErrorBanner.Render("✗ " + truncate(err.Error(), m.width-24)) +
			m.styles.MutedText.Render("  r retry · x dismiss")
		return banner
	}

	var left string
	switch m.currentView {
	case ViewDetail:
		left = "esc back · space favorite · r reload"
	default:
		count := len(m.visibleArticles())
		left = fmt.Sprintf("%d %s · %s", count, ternary(count == 1, "article", "articles"), m.filterLabel())
	}

	hints := "space fav · f filter · r refresh · tab menu · ? help"
	bar := left + "  ·  " + hints
	return m.styles.StatusBar.Width(m.width).Render(truncate(bar, m.width-2))
}

// activeError returns the error the status bar should surface, preferring
// the view the user is looking at.
func (m Model) activeError() error {
	if m.toggleErr != nil {
		return m.toggleErr
	}
	if m.currentView == ViewDetail {
		// Full-screen detail errors (no stale data) render in the pane
		// itself; the banner only covers errors next to stale data.
		if m.detailSnap.Data != nil && m.detailSnap.HasError() {
			return m.detailSnap.Err
		}
		return nil
	}
	if m.feedSnap.Data != nil && m.feedSnap.HasError() {
		return m.feedSnap.Err
	}
	return nil
}

func (m Model) filterLabel() string {
	if m.filter == FilterFavorites {
		return "favorites"
	}
	return "all"
}
