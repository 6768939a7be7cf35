package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/srikar0313/TechPulse/internal/ai"
	"github.com/srikar0313/TechPulse/internal/bookmarks"
	"github.com/srikar0313/TechPulse/internal/browser"
	"github.com/srikar0313/TechPulse/internal/config"
	"github.com/srikar0313/TechPulse/internal/filter"
	"github.com/srikar0313/TechPulse/internal/news"
	"github.com/srikar0313/TechPulse/internal/store"
)

// fetchErrText is the single user-facing message every refresh
// failure collapses into, whatever the underlying cause.
const fetchErrText = "Failed to fetch tech news. The AI might be busy, please try again later."

type focusPane int

const (
	focusList focusPane = iota
	focusCard
)

// App is the dashboard model. All state lives here and mutates only
// inside Update, in response to key events, refresh outcomes and the
// interval tick.
type App struct {
	cfg   *config.Config
	db    *store.Store
	gen   ai.Generator
	marks *bookmarks.Store

	articles []news.Article
	marked   bookmarks.Set

	tabs   []string
	tabIdx int
	cursor int
	scroll int
	focus  focusPane

	searchInput textinput.Model
	searching   bool
	spinner     spinner.Model

	// Refresh state machine: refreshing is the Loading state, errMsg
	// non-empty is Failed, lastUpdated non-zero is Loaded. Entering
	// Loading never clears articles — the stale batch stays visible.
	refreshing  bool
	lastUpdated time.Time
	errMsg      string

	theme  string
	styles palette

	width  int
	height int
}

// RunOpts holds all parameters for launching the dashboard.
type RunOpts struct {
	Cfg       *config.Config
	DB        *store.Store
	Generator ai.Generator
	Bookmarks *bookmarks.Store

	// Last persisted batch, shown until the first refresh lands.
	Articles    []news.Article
	LastUpdated time.Time

	Theme string
}

func NewApp(opts RunOpts) *App {
	theme := opts.Theme
	if theme == "" {
		theme = "auto"
	}
	styles := newPalette(theme)

	ti := textinput.New()
	ti.Placeholder = "Search articles..."
	ti.Prompt = styles.searchPrompt.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styles.spinner

	var marked bookmarks.Set
	if opts.Bookmarks != nil {
		marked = opts.Bookmarks.Set()
	} else {
		marked = bookmarks.Set{}
	}

	return &App{
		cfg:         opts.Cfg,
		db:          opts.DB,
		gen:         opts.Generator,
		marks:       opts.Bookmarks,
		articles:    opts.Articles,
		marked:      marked,
		tabs:        news.Tabs(),
		searchInput: ti,
		spinner:     sp,
		lastUpdated: opts.LastUpdated,
		theme:       theme,
		styles:      styles,
	}
}

// Init fires the initial refresh exactly once and arms the interval
// timer. There is no manual refresh key; the original design never
// had one and none is added here.
func (a *App) Init() tea.Cmd {
	a.refreshing = true
	return tea.Batch(a.generateCmd(), a.scheduleTick(), a.spinner.Tick)
}

// generateCmd runs one fetch-normalize cycle off the update loop. The
// remote call has no deadline of its own (the provider's HTTP client
// timeout is the only bound, matching the design this inherits).
func (a *App) generateCmd() tea.Cmd {
	gen := a.gen
	db := a.db
	return func() tea.Msg {
		raws, err := gen.Generate(context.Background())
		if err != nil {
			return refreshErrMsg{err: err}
		}
		articles, err := news.Normalize(raws)
		if err != nil {
			return refreshErrMsg{err: err}
		}

		at := time.Now()
		if db != nil {
			// Persistence is best-effort: the fresh batch is shown
			// even if it could not be written.
			if err := db.ReplaceArticles(articles); err != nil {
				log.Printf("[warn] persisting batch: %v", err)
			}
			if err := db.SetLastRefresh(at); err != nil {
				log.Printf("[warn] recording refresh time: %v", err)
			}
		}
		return batchMsg{articles: articles, at: at}
	}
}

// scheduleTick arms the next interval firing. It is re-armed after
// every tick regardless of how the refresh went.
func (a *App) scheduleTick() tea.Cmd {
	return tea.Tick(a.cfg.RefreshDuration(), func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

func openBrowserCmd(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		if err := open(url); err != nil {
			return uiErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) activeTab() string {
	return a.tabs[a.tabIdx]
}

// visible applies the current tab, search term and bookmark set.
func (a *App) visible() []news.Article {
	return filter.Visible(a.articles, a.activeTab(), a.searchInput.Value(), a.marked)
}

func (a *App) clampCursor() {
	if n := len(a.visible()); a.cursor >= n {
		a.cursor = max(0, n-1)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case batchMsg:
		a.refreshing = false
		a.errMsg = ""
		a.articles = msg.articles
		a.lastUpdated = msg.at
		a.clampCursor()
		return a, nil

	case refreshErrMsg:
		// Previous batch stays on screen untouched.
		a.refreshing = false
		a.errMsg = fetchErrText
		log.Printf("[warn] refresh failed: %v", msg.err)
		return a, nil

	case refreshTickMsg:
		cmds := []tea.Cmd{a.scheduleTick()}
		// A tick landing mid-refresh is dropped: one fetch in flight
		// at a time.
		if !a.refreshing {
			a.refreshing = true
			a.errMsg = ""
			cmds = append(cmds, a.generateCmd(), a.spinner.Tick)
		}
		return a, tea.Batch(cmds...)

	case uiErrMsg:
		a.errMsg = msg.err.Error()
		return a, nil

	case spinner.TickMsg:
		if a.refreshing {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.searching {
		return a.handleSearchKey(msg)
	}

	// Clear sticky error on any keypress
	a.errMsg = ""

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.focus == focusList {
			if a.cursor < len(a.visible())-1 {
				a.cursor++
				a.scroll = 0
			}
		} else {
			a.scroll++
		}
		return a, nil
	case "k", "up":
		if a.focus == focusList {
			if a.cursor > 0 {
				a.cursor--
				a.scroll = 0
			}
		} else if a.scroll > 0 {
			a.scroll--
		}
		return a, nil
	case "tab":
		if a.focus == focusList {
			a.focus = focusCard
		} else {
			a.focus = focusList
		}
		return a, nil
	case "left", "h":
		if a.tabIdx > 0 {
			a.tabIdx--
			a.cursor = 0
			a.scroll = 0
		}
		return a, nil
	case "right", "l":
		if a.tabIdx < len(a.tabs)-1 {
			a.tabIdx++
			a.cursor = 0
			a.scroll = 0
		}
		return a, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if idx < len(a.tabs) {
			a.tabIdx = idx
			a.cursor = 0
			a.scroll = 0
		}
		return a, nil
	case "/":
		a.searching = true
		a.searchInput.Focus()
		return a, textinput.Blink
	case "b":
		if v := a.visible(); len(v) > 0 && a.cursor < len(v) && a.marks != nil {
			a.marked = a.marks.Toggle(v[a.cursor].ID)
			a.clampCursor()
		}
		return a, nil
	case "o", "enter":
		if v := a.visible(); len(v) > 0 && a.cursor < len(v) {
			return a, openBrowserCmd(openLink, v[a.cursor].Link)
		}
		return a, nil
	case "t":
		a.toggleTheme()
		return a, nil
	}

	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.searching = false
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.cursor = 0
		return a, nil
	case "enter":
		a.searching = false
		a.searchInput.Blur()
		return a, nil
	}

	before := a.searchInput.Value()
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	if a.searchInput.Value() != before {
		a.cursor = 0
	}
	return a, cmd
}

// toggleTheme flips dark/light (auto resolves to dark first) and
// persists the choice.
func (a *App) toggleTheme() {
	if a.theme == "dark" {
		a.theme = "light"
	} else {
		a.theme = "dark"
	}
	a.styles = newPalette(a.theme)
	a.searchInput.Prompt = a.styles.searchPrompt.Render("/ ")
	a.spinner.Style = a.styles.spinner

	if a.db != nil {
		if err := a.db.SetMeta("theme", a.theme); err != nil {
			log.Printf("[warn] persisting theme: %v", err)
		}
	}
}

func (a *App) View() string {
	if a.width == 0 {
		return a.styles.header.Render("TechPulse")
	}

	p := a.styles
	visible := a.visible()

	// Header
	headerLeft := p.header.Render("TechPulse") + "  " + p.emptyText.Render(headingFor(a.activeTab()))
	headerRight := ""
	if !a.lastUpdated.IsZero() {
		headerRight = p.headerMeta.Render("Updated: " + a.lastUpdated.Format("15:04:05"))
	}
	gap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if gap < 0 {
		gap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", gap, "") + headerRight

	// Tab bar, replaced by the search input while searching
	tabBar := p.renderTabs(a.tabs, a.tabIdx, a.width)
	if a.searching {
		tabBar = a.searchInput.View()
	}

	// Layout
	contentHeight := a.height - 3 - 4 // header, tabs, status + borders
	if contentHeight < 3 {
		contentHeight = 3
	}
	listWidth := int(float64(a.width) * 0.38)
	cardWidth := a.width - listWidth - 1

	// List pane
	emptyMsg := emptyMessageFor(a.activeTab())
	if a.refreshing && len(a.articles) == 0 {
		emptyMsg = "Generating articles..."
	}
	listContent := p.renderList(visible, a.marked, a.cursor, contentHeight, listWidth-4, emptyMsg)
	listPane := p.listPane
	if a.focus == focusList {
		listPane = p.listPaneActive
	}
	list := listPane.Width(listWidth - 2).Height(contentHeight).Render(listContent)

	// Detail pane
	var selected *news.Article
	if len(visible) > 0 && a.cursor < len(visible) {
		selected = &visible[a.cursor]
	}
	var isMarked bool
	if selected != nil {
		isMarked = a.marked.Has(selected.ID)
	}
	cardContent := p.renderCard(selected, isMarked, cardWidth-4, contentHeight, a.scroll)
	cardPane := p.cardPane
	if a.focus == focusCard {
		cardPane = p.cardPaneActive
	}
	card := cardPane.Width(cardWidth - 2).Height(contentHeight).Render(cardContent)

	content := lipgloss.JoinHorizontal(lipgloss.Top, list, card)

	// Status bar
	status := p.renderStatusBar(len(visible), len(a.articles), a.lastUpdated, a.width, a.searching, a.refreshing)
	if a.refreshing {
		status = a.spinner.View() + " " + status
	}
	if a.errMsg != "" {
		status = p.errorText.Render("Error: " + a.errMsg)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, tabBar, content, status)
}

// openLink is a package var so tests can stub the browser launch.
var openLink = browser.Open

// Run starts the dashboard and blocks until it exits.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
