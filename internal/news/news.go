package news

import (
	"fmt"
	"time"
)

// Category labels an article. The generator is asked to pick from the
// fixed set below, but articles carry whatever string came back —
// off-list categories simply never match a tab and show up under All.
type Category = string

const (
	AI            Category = "AI"
	Gadgets       Category = "Gadgets"
	Software      Category = "Software"
	Startups      Category = "Startups"
	Cybersecurity Category = "Cybersecurity"
	Gaming        Category = "Gaming"
)

// View selectors that are not article categories.
const (
	CategoryAll       = "All"
	CategoryBookmarks = "Bookmarks"
)

// Categories returns the article categories in canonical tab order.
func Categories() []Category {
	return []Category{AI, Gadgets, Software, Startups, Cybersecurity, Gaming}
}

// Tabs returns the selectable views: All, the categories, Bookmarks.
func Tabs() []string {
	tabs := make([]string, 0, len(Categories())+2)
	tabs = append(tabs, CategoryAll)
	tabs = append(tabs, Categories()...)
	tabs = append(tabs, CategoryBookmarks)
	return tabs
}

// Raw is one record as returned by the content generator, before an
// identifier has been assigned.
type Raw struct {
	Title       string `json:"title"`
	Image       string `json:"image"`
	Source      string `json:"source"`
	Description string `json:"description"`
	PublishedAt string `json:"publishedAt"`
	Link        string `json:"link"`
	Category    string `json:"category"`
}

// Article is one displayable news item. Immutable once built.
//
// ID is the record's link joined with its position in the batch, so
// duplicate links within a batch still get distinct ids. Ids are not
// stable across refreshes: a bookmark detaches silently if the same
// story lands at a different position next time. Known limitation,
// kept as-is.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Source      string `json:"source"`
	Description string `json:"description"`
	PublishedAt string `json:"publishedAt"`
	Link        string `json:"link"`
	Category    string `json:"category"`
}

// PublishedDate parses PublishedAt for display. The zero time comes
// back for anything that isn't RFC 3339; callers fall back to the raw
// string. The core never compares these values.
func (a Article) PublishedDate() time.Time {
	t, err := time.Parse(time.RFC3339, a.PublishedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Normalize turns a generated batch into articles, assigning each
// record the id link+"-"+position. The batch is all-or-nothing: one
// record missing a required field fails the whole refresh rather than
// producing a partially filled dashboard.
func Normalize(raws []Raw) ([]Article, error) {
	articles := make([]Article, 0, len(raws))
	for i, r := range raws {
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		articles = append(articles, Article{
			ID:          fmt.Sprintf("%s-%d", r.Link, i),
			Title:       r.Title,
			Image:       r.Image,
			Source:      r.Source,
			Description: r.Description,
			PublishedAt: r.PublishedAt,
			Link:        r.Link,
			Category:    r.Category,
		})
	}
	return articles, nil
}

func (r Raw) validate() error {
	required := []struct {
		name, value string
	}{
		{"title", r.Title},
		{"image", r.Image},
		{"source", r.Source},
		{"description", r.Description},
		{"publishedAt", r.PublishedAt},
		{"link", r.Link},
		{"category", r.Category},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("missing required field %q", f.name)
		}
	}
	return nil
}
