package tui

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/srikar0313/TechPulse/internal/bookmarks"
	"github.com/srikar0313/TechPulse/internal/config"
	"github.com/srikar0313/TechPulse/internal/news"
)

type mapKV map[string]string

func (m mapKV) Meta(key string) (string, error) { return m[key], nil }
func (m mapKV) SetMeta(key, value string) error { m[key] = value; return nil }

type fakeGenerator struct {
	raws []news.Raw
	err  error
}

func (f *fakeGenerator) Generate(ctx context.Context) ([]news.Raw, error) {
	return f.raws, f.err
}

func testApp(t *testing.T) *App {
	t.Helper()
	return NewApp(RunOpts{
		Cfg:       &config.Config{RefreshInterval: "1h", Theme: "dark"},
		Bookmarks: bookmarks.Load(mapKV{}),
		Theme:     "dark",
	})
}

func batch() []news.Article {
	return []news.Article{
		{ID: "https://a-0", Title: "OpenAI launches new model", Description: "d", Source: "Wired", Link: "https://a", Category: news.AI, PublishedAt: "2025-06-01T09:00:00Z"},
		{ID: "https://b-1", Title: "New console revealed", Description: "d", Source: "The Verge", Link: "https://b", Category: news.Gaming, PublishedAt: "2025-06-01T08:00:00Z"},
	}
}

func TestInitStartsLoading(t *testing.T) {
	a := testApp(t)
	cmd := a.Init()
	if !a.refreshing {
		t.Error("expected Loading state after Init")
	}
	if cmd == nil {
		t.Error("expected initial refresh and tick commands")
	}
}

func TestBatchReplacesArticlesWholesale(t *testing.T) {
	a := testApp(t)
	a.articles = batch()
	a.refreshing = true

	next := []news.Article{{ID: "https://c-0", Title: "C", Description: "d", Source: "Wired", Link: "https://c", Category: news.AI, PublishedAt: "2025-06-02T09:00:00Z"}}
	at := time.Now()
	a.Update(batchMsg{articles: next, at: at})

	if a.refreshing {
		t.Error("expected Loaded state")
	}
	if !reflect.DeepEqual(a.articles, next) {
		t.Errorf("expected wholesale replacement, got %v", a.articles)
	}
	if !a.lastUpdated.Equal(at) {
		t.Errorf("expected timestamp recorded, got %v", a.lastUpdated)
	}
}

func TestRefreshFailurePreservesArticles(t *testing.T) {
	a := testApp(t)
	prev := batch()
	a.articles = prev
	a.refreshing = true

	a.Update(refreshErrMsg{err: errors.New("boom")})

	if a.refreshing {
		t.Error("expected Failed state, not Loading")
	}
	if a.errMsg != fetchErrText {
		t.Errorf("expected the generic fetch error, got %q", a.errMsg)
	}
	if !reflect.DeepEqual(a.articles, prev) {
		t.Error("failure must not mutate the previously loaded batch")
	}
}

func TestEnteringLoadingKeepsStaleArticles(t *testing.T) {
	a := testApp(t)
	a.articles = batch()
	a.errMsg = "old error"

	_, cmd := a.Update(refreshTickMsg{})

	if !a.refreshing {
		t.Error("tick should enter Loading")
	}
	if a.errMsg != "" {
		t.Error("entering Loading must clear the previous error")
	}
	if len(a.articles) != 2 {
		t.Error("entering Loading must keep the stale batch visible")
	}
	if cmd == nil {
		t.Error("expected refresh + reschedule commands")
	}
}

func TestTickWhileLoadingIsDropped(t *testing.T) {
	a := testApp(t)
	a.refreshing = true

	_, cmd := a.Update(refreshTickMsg{})

	if !a.refreshing {
		t.Error("still Loading")
	}
	// The timer must re-arm even when the trigger is dropped.
	if cmd == nil {
		t.Error("expected the tick to reschedule itself")
	}
}

func TestGenerateCmdSuccess(t *testing.T) {
	a := testApp(t)
	a.gen = &fakeGenerator{raws: []news.Raw{{
		Title: "T", Image: "i", Source: "s", Description: "d",
		PublishedAt: "2025-06-01T09:00:00Z", Link: "https://x", Category: news.AI,
	}}}

	msg := a.generateCmd()()
	got, ok := msg.(batchMsg)
	if !ok {
		t.Fatalf("expected batchMsg, got %T", msg)
	}
	if len(got.articles) != 1 || got.articles[0].ID != "https://x-0" {
		t.Errorf("unexpected normalized batch: %v", got.articles)
	}
	if got.at.IsZero() {
		t.Error("expected completion timestamp")
	}
}

func TestGenerateCmdFoldsFailures(t *testing.T) {
	a := testApp(t)

	// Transport error
	a.gen = &fakeGenerator{err: errors.New("network down")}
	if _, ok := a.generateCmd()().(refreshErrMsg); !ok {
		t.Error("expected refreshErrMsg for generator error")
	}

	// Schema violation: record missing fields fails the whole batch
	a.gen = &fakeGenerator{raws: []news.Raw{{Title: "only a title"}}}
	if _, ok := a.generateCmd()().(refreshErrMsg); !ok {
		t.Error("expected refreshErrMsg for malformed record")
	}
}

func TestBookmarkToggleKey(t *testing.T) {
	a := testApp(t)
	a.articles = batch()

	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	if !a.marked.Has("https://a-0") {
		t.Error("expected selected article to be bookmarked")
	}

	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	if a.marked.Has("https://a-0") {
		t.Error("expected second toggle to remove the bookmark")
	}
}

func TestBookmarksTabShowsOnlyMarked(t *testing.T) {
	a := testApp(t)
	a.articles = batch()
	a.marked = bookmarks.Set{"https://b-1": true}
	a.tabIdx = len(a.tabs) - 1 // Bookmarks
	a.searchInput.SetValue("no such term")

	v := a.visible()
	if len(v) != 1 || v[0].ID != "https://b-1" {
		t.Errorf("bookmarks view must ignore search, got %v", v)
	}
}

func TestCategoryTabFilters(t *testing.T) {
	a := testApp(t)
	a.articles = batch()

	// Tab 1 is the first category, AI.
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	if a.activeTab() != news.AI {
		t.Fatalf("expected AI tab, got %q", a.activeTab())
	}
	v := a.visible()
	if len(v) != 1 || v[0].Category != news.AI {
		t.Errorf("expected only AI articles, got %v", v)
	}
}

func TestSearchResetsCursor(t *testing.T) {
	a := testApp(t)
	a.articles = batch()
	a.cursor = 1
	a.searching = true
	a.searchInput.Focus()

	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if a.cursor != 0 {
		t.Errorf("expected cursor reset on search change, got %d", a.cursor)
	}
}

func TestSearchEscClears(t *testing.T) {
	a := testApp(t)
	a.searching = true
	a.searchInput.SetValue("console")

	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if a.searching {
		t.Error("esc should leave search mode")
	}
	if a.searchInput.Value() != "" {
		t.Error("esc should clear the search term")
	}
}

func TestThemeToggle(t *testing.T) {
	a := testApp(t)
	if a.theme != "dark" {
		t.Fatalf("expected dark start, got %q", a.theme)
	}
	a.toggleTheme()
	if a.theme != "light" {
		t.Errorf("expected light after toggle, got %q", a.theme)
	}
	a.toggleTheme()
	if a.theme != "dark" {
		t.Errorf("expected dark after second toggle, got %q", a.theme)
	}
}

func TestOpenKeyUsesSelectedLink(t *testing.T) {
	a := testApp(t)
	a.articles = batch()

	var opened string
	orig := openLink
	openLink = func(url string) error { opened = url; return nil }
	defer func() { openLink = orig }()

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	if cmd == nil {
		t.Fatal("expected a browser command")
	}
	cmd()
	if opened != "https://a" {
		t.Errorf("expected https://a opened, got %q", opened)
	}
}
