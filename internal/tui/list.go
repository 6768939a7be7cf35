package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/srikar0313/TechPulse/internal/bookmarks"
	"github.com/srikar0313/TechPulse/internal/news"
)

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func (p palette) renderListItem(a news.Article, selected, marked bool, width int) string {
	if width < 10 {
		width = 30
	}

	star := "  "
	if marked {
		star = p.itemBookmark.Render("★ ")
	}

	var title string
	if selected {
		title = p.itemSelected.Render("> " + truncateStr(a.Title, width-6))
	} else {
		title = p.itemTitle.Render("  " + truncateStr(a.Title, width-6))
	}

	meta := "  " + star + p.itemSource.Render(a.Source) + " " + p.itemMeta.Render("· "+a.Category)

	return title + "\n" + meta
}

func (p palette) renderList(articles []news.Article, marked bookmarks.Set, cursor, height, width int, empty string) string {
	if len(articles) == 0 {
		return p.renderEmpty(empty, width, height)
	}

	// Each item is 2 lines + 1 blank line = 3 lines
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(articles) {
		end = len(articles)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(p.renderListItem(articles[i], i == cursor, marked.Has(articles[i].ID), width))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

func (p palette) renderEmpty(msg string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, p.emptyText.Render(msg))
}

// renderCard renders the detail pane for the selected article.
func (p palette) renderCard(a *news.Article, marked bool, width, height, scroll int) string {
	if a == nil {
		return p.renderEmpty("Nothing selected", width, height)
	}
	if width < 10 {
		width = 40
	}

	title := p.cardTitle.Width(width).Render(a.Title)

	source := a.Source
	if marked {
		source += "  " + p.itemBookmark.Render("★ bookmarked")
	}
	sourceLine := p.cardSource.Render(source) + "  " + p.cardCategory.Render(a.Category)

	date := a.PublishedAt
	if d := a.PublishedDate(); !d.IsZero() {
		date = d.Format("January 2, 2006")
	}
	dateLine := p.itemMeta.Render(date)

	body := p.cardBody.Width(width).Render(a.Description)
	link := p.cardLink.Width(width).Render(a.Link)

	content := lipgloss.JoinVertical(lipgloss.Left, title, sourceLine, dateLine, "", body, link)

	// Scroll by dropping leading lines; the pane clips the rest.
	lines := strings.Split(content, "\n")
	if scroll > 0 {
		if scroll >= len(lines) {
			scroll = len(lines) - 1
		}
		lines = lines[scroll:]
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// renderTabs renders the category bar: All · categories · Bookmarks.
func (p palette) renderTabs(tabs []string, active int, width int) string {
	sep := p.tabSeparator.Render(" · ")
	var parts []string
	for i, tab := range tabs {
		style := p.tabInactive
		if i == active {
			style = p.tabActive
		}
		parts = append(parts, style.Render(tab))
	}

	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}
	return lipgloss.NewStyle().Width(width).PaddingLeft(1).Render(row)
}

func headingFor(activeTab string) string {
	switch activeTab {
	case news.CategoryBookmarks:
		return "Your Bookmarks"
	case news.CategoryAll:
		return "Latest Updates"
	default:
		return fmt.Sprintf("%s News", activeTab)
	}
}

func emptyMessageFor(activeTab string) string {
	if activeTab == news.CategoryBookmarks {
		return "You have no bookmarked articles."
	}
	return "No articles found. Try a different search or category."
}
