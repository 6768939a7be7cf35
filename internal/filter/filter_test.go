package filter

import (
	"reflect"
	"testing"

	"github.com/srikar0313/TechPulse/internal/bookmarks"
	"github.com/srikar0313/TechPulse/internal/news"
)

func sampleArticles() []news.Article {
	return []news.Article{
		{ID: "a-0", Title: "OpenAI launches new model", Description: "Frontier lab ships again.", Category: news.AI},
		{ID: "b-1", Title: "New phone announced", Description: "Thinner, somehow.", Category: news.Gadgets},
		{ID: "c-2", Title: "Editor wars continue", Description: "AI autocomplete splits opinions.", Category: news.Software},
		{ID: "d-3", Title: "Seed round closed", Description: "A startup raised money.", Category: news.Startups},
	}
}

func TestAllWithEmptySearchReturnsEverything(t *testing.T) {
	articles := sampleArticles()
	got := Visible(articles, news.CategoryAll, "", bookmarks.Set{})
	if !reflect.DeepEqual(got, articles) {
		t.Errorf("expected full list in order, got %v", got)
	}
}

func TestCategoryFilter(t *testing.T) {
	got := Visible(sampleArticles(), news.Gadgets, "", bookmarks.Set{})
	if len(got) != 1 || got[0].ID != "b-1" {
		t.Errorf("expected only the Gadgets article, got %v", got)
	}
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := Visible(sampleArticles(), news.CategoryAll, "AI", bookmarks.Set{})

	// "AI" matches "OpenAI launches..." in the title and "AI
	// autocomplete" in a description.
	ids := make([]string, 0, len(got))
	for _, a := range got {
		ids = append(ids, a.ID)
	}
	want := []string{"a-0", "c-2"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("search 'AI' returned %v, want %v", ids, want)
	}
}

func TestSearchMatchesDescription(t *testing.T) {
	got := Visible(sampleArticles(), news.CategoryAll, "thinner", bookmarks.Set{})
	if len(got) != 1 || got[0].ID != "b-1" {
		t.Errorf("expected description match, got %v", got)
	}
}

func TestCategoryAndSearchAreConjoined(t *testing.T) {
	got := Visible(sampleArticles(), news.AI, "autocomplete", bookmarks.Set{})
	if len(got) != 0 {
		t.Errorf("expected no match (autocomplete article is Software), got %v", got)
	}
}

func TestBookmarksViewIgnoresSearch(t *testing.T) {
	marked := bookmarks.Set{"b-1": true, "d-3": true}

	got := Visible(sampleArticles(), news.CategoryBookmarks, "zzz-no-match", marked)

	ids := make([]string, 0, len(got))
	for _, a := range got {
		ids = append(ids, a.ID)
	}
	want := []string{"b-1", "d-3"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("bookmarks view must ignore search, got %v, want %v", ids, want)
	}
}

func TestBookmarksViewIgnoresCategoryOfArticles(t *testing.T) {
	marked := bookmarks.Set{"a-0": true}
	got := Visible(sampleArticles(), news.CategoryBookmarks, "", marked)
	if len(got) != 1 || got[0].ID != "a-0" {
		t.Errorf("expected exactly the bookmarked article, got %v", got)
	}
}

func TestNoMatchesReturnsEmptyNotNilPanic(t *testing.T) {
	got := Visible(sampleArticles(), news.Gaming, "", bookmarks.Set{})
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestEmptyInput(t *testing.T) {
	got := Visible(nil, news.CategoryAll, "anything", bookmarks.Set{})
	if len(got) != 0 {
		t.Errorf("expected empty result for nil input, got %v", got)
	}
}
