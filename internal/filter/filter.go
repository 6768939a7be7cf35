// Package filter selects the articles to display for the current view.
package filter

import (
	"strings"

	"github.com/samber/lo"

	"github.com/srikar0313/TechPulse/internal/bookmarks"
	"github.com/srikar0313/TechPulse/internal/news"
)

// Visible returns the articles to show for the active tab and search
// term, preserving input order. It is a pure function and never fails;
// no matches means an empty slice.
//
// The Bookmarks tab shows bookmarked articles only and ignores the
// search term entirely — that is the inherited behavior, kept on
// purpose rather than treated as a bug.
func Visible(articles []news.Article, activeCategory, searchTerm string, marked bookmarks.Set) []news.Article {
	if activeCategory == news.CategoryBookmarks {
		return lo.Filter(articles, func(a news.Article, _ int) bool {
			return marked.Has(a.ID)
		})
	}

	term := strings.ToLower(searchTerm)
	return lo.Filter(articles, func(a news.Article, _ int) bool {
		return matchesCategory(a, activeCategory) && matchesSearch(a, term)
	})
}

func matchesCategory(a news.Article, activeCategory string) bool {
	return activeCategory == news.CategoryAll || a.Category == activeCategory
}

// matchesSearch does a case-insensitive substring match against title
// and description. term must already be lowercased.
func matchesSearch(a news.Article, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Title), term) ||
		strings.Contains(strings.ToLower(a.Description), term)
}
