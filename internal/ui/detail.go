package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderDetail() string {
	if m.detailSnap.InitialLoad() {
		msg := "Opening article…"
		if m.detailSnap.Loading {
			msg = m.spinner.View() + " " + msg
		}
		return m.centered(m.styles.MutedText.Render(msg))
	}

	if m.detailSnap.Data == nil && m.detailSnap.HasError() {
		body := m.styles.Text.Render("Could not open this article.") + "\n\n" +
			m.styles.FaintText.Render(m.detailSnap.Err.Error()) + "\n\n" +
			m.styles.MutedText.Render("r retry · x dismiss · esc back")
		return m.centered(body)
	}

	return m.detailViewport.View()
}

// syncDetailViewport rebuilds the viewport content from the current detail
// snapshot. Called on every snapshot, favorite, size, or theme change.
func (m *Model) syncDetailViewport() {
	if !m.ready || m.detailSnap.Data == nil {
		return
	}
	m.detailViewport.Width = m.width
	m.detailViewport.Height = m.contentHeight()
	m.detailViewport.SetContent(m.detailContent())
}

func (m Model) detailContent() string {
	a := *m.detailSnap.Data

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	wrap := lipgloss.NewStyle().Width(width)

	title := wrap.Inherit(m.styles.Title).Render(a.Title)

	byline := m.styles.Success.Render(a.Author) +
		m.styles.FaintText.Render(" · "+a.PublishedAt.Format("January 2, 2006")+" · "+readTime(a.ReadMinutes))

	fav := m.styles.FaintText.Render("☆ not in favorites · space to add")
	if m.favorites.Has(a.ID) {
		fav = m.styles.Star.Render("★ favorite") + m.styles.FaintText.Render(" · space to remove")
	}

	body := wrap.Inherit(m.styles.Text).Render(a.Excerpt)

	image := m.styles.FaintText.Render("image: " + a.ImageURL)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(byline)
	b.WriteString("\n")
	b.WriteString(fav)
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(image)
	b.WriteString("\n")

	pad := lipgloss.NewStyle().Padding(0, 2)
	return pad.Render(b.String())
}
