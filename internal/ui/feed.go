package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gazette/internal/news"
)

// feedItemHeight is the rendered height of one card: title, meta, spacer.
const feedItemHeight = 3

func (m Model) renderFeed() string {
	if m.feedSnap.InitialLoad() {
		msg := "Fetching the latest articles…"
		if m.feedSnap.Loading {
			msg = m.spinner.View() + " " + msg
		}
		return m.centered(m.styles.MutedText.Render(msg))
	}

	// Nothing ever loaded and the load failed: full-screen error state.
	if m.feedSnap.Data == nil && m.feedSnap.HasError() {
		body := m.styles.Text.Render("Could not load the feed.") + "\n\n" +
			m.styles.FaintText.Render(m.feedSnap.Err.Error()) + "\n\n" +
			m.styles.MutedText.Render("r retry · x dismiss")
		return m.centered(body)
	}

	articles := m.visibleArticles()
	if len(articles) == 0 {
		empty := "No articles yet."
		if m.filter == FilterFavorites {
			empty = "No favorites yet. Press space on an article to mark one."
		}
		return m.centered(m.styles.MutedText.Render(empty))
	}

	return m.renderCards(articles)
}

func (m Model) renderCards(articles []news.Article) string {
	height := m.contentHeight()
	visible := height / feedItemHeight
	if visible < 1 {
		visible = 1
	}

	// Keep the cursor inside the window.
	start := 0
	if m.selectedRow >= visible {
		start = m.selectedRow - visible + 1
	}
	end := start + visible
	if end > len(articles) {
		end = len(articles)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	now := time.Now()
	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.renderCard(articles[i], i == m.selectedRow, now))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	content := b.String()
	lines := strings.Count(content, "\n") + 1
	for ; lines < height; lines++ {
		content += "\n"
	}
	return content
}

func (m Model) renderCard(a news.Article, selected bool, now time.Time) string {
	width := m.width
	if width < 20 {
		width = 20
	}

	star := "  "
	if m.favorites.Has(a.ID) {
		star = m.styles.Star.Render("★") + " "
	}

	title := truncate(a.Title, width-6)
	if selected {
		title = m.styles.SelectedTitle.Render("▸ " + title)
	} else {
		title = m.styles.Title.Render("  " + title)
	}

	meta := "    " +
		m.styles.Success.Render(a.Author) +
		m.styles.FaintText.Render(" · "+relativeTime(a.PublishedAt, now)+" · "+readTime(a.ReadMinutes))

	return star + title + "\n" + meta + "\n"
}

// centered places content in the middle of the main pane.
func (m Model) centered(content string) string {
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, content)
}
