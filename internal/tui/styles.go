package tui

import "github.com/charmbracelet/lipgloss"

// palette holds every style the dashboard renders with. The original
// app has a light/dark toggle; "auto" leans on lipgloss adaptive
// colors instead of forcing one.
type palette struct {
	header       lipgloss.Style
	headerMeta   lipgloss.Style
	tabActive    lipgloss.Style
	tabInactive  lipgloss.Style
	tabSeparator lipgloss.Style

	listPane       lipgloss.Style
	listPaneActive lipgloss.Style
	cardPane       lipgloss.Style
	cardPaneActive lipgloss.Style
	itemTitle      lipgloss.Style
	itemSelected   lipgloss.Style
	itemSource     lipgloss.Style
	itemMeta       lipgloss.Style
	itemBookmark   lipgloss.Style
	cardTitle      lipgloss.Style
	cardSource     lipgloss.Style
	cardBody       lipgloss.Style
	cardLink       lipgloss.Style
	cardCategory   lipgloss.Style

	statusBar    lipgloss.Style
	errorText    lipgloss.Style
	emptyText    lipgloss.Style
	spinner      lipgloss.Style
	searchPrompt lipgloss.Style
}

type themeColors struct {
	primary   lipgloss.TerminalColor
	secondary lipgloss.TerminalColor
	dim       lipgloss.TerminalColor
	accent    lipgloss.TerminalColor
	border    lipgloss.TerminalColor
	activeBdr lipgloss.TerminalColor
	tabBg     lipgloss.TerminalColor
	statusBg  lipgloss.TerminalColor
	statusFg  lipgloss.TerminalColor
	green     lipgloss.TerminalColor
	gold      lipgloss.TerminalColor
}

func colorsFor(theme string) themeColors {
	switch theme {
	case "dark":
		return themeColors{
			primary:   lipgloss.Color("#7571F9"),
			secondary: lipgloss.Color("#ABABAB"),
			dim:       lipgloss.Color("#626262"),
			accent:    lipgloss.Color("#F25D94"),
			border:    lipgloss.Color("#383838"),
			activeBdr: lipgloss.Color("#7571F9"),
			tabBg:     lipgloss.Color("#2A2A3E"),
			statusBg:  lipgloss.Color("#16213E"),
			statusFg:  lipgloss.Color("#ABABAB"),
			green:     lipgloss.Color("#25D366"),
			gold:      lipgloss.Color("#FFD264"),
		}
	case "light":
		return themeColors{
			primary:   lipgloss.Color("#5A56E0"),
			secondary: lipgloss.Color("#3D3D3D"),
			dim:       lipgloss.Color("#9B9B9B"),
			accent:    lipgloss.Color("#F25D94"),
			border:    lipgloss.Color("#DBDBDB"),
			activeBdr: lipgloss.Color("#5A56E0"),
			tabBg:     lipgloss.Color("#EEEEEE"),
			statusBg:  lipgloss.Color("#E8E8E8"),
			statusFg:  lipgloss.Color("#3D3D3D"),
			green:     lipgloss.Color("#04B575"),
			gold:      lipgloss.Color("#B8860B"),
		}
	default: // auto
		return themeColors{
			primary:   lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"},
			secondary: lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"},
			dim:       lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"},
			accent:    lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"},
			border:    lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"},
			activeBdr: lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"},
			tabBg:     lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A3E"},
			statusBg:  lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#16213E"},
			statusFg:  lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"},
			green:     lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"},
			gold:      lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD264"},
		}
	}
}

func newPalette(theme string) palette {
	c := colorsFor(theme)
	return palette{
		header:       lipgloss.NewStyle().Bold(true).Foreground(c.primary).PaddingLeft(1),
		headerMeta:   lipgloss.NewStyle().Foreground(c.dim).Align(lipgloss.Right),
		tabActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(c.activeBdr).Padding(0, 1).Bold(true),
		tabInactive:  lipgloss.NewStyle().Foreground(c.secondary).Background(c.tabBg).Padding(0, 1),
		tabSeparator: lipgloss.NewStyle().Foreground(c.dim),

		listPane:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c.border),
		listPaneActive: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c.activeBdr),
		cardPane:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c.border),
		cardPaneActive: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c.activeBdr),
		itemTitle:      lipgloss.NewStyle().Foreground(c.primary).Bold(true),
		itemSelected:   lipgloss.NewStyle().Foreground(c.accent).Bold(true),
		itemSource:     lipgloss.NewStyle().Foreground(c.green),
		itemMeta:       lipgloss.NewStyle().Foreground(c.dim),
		itemBookmark:   lipgloss.NewStyle().Foreground(c.gold),
		cardTitle:      lipgloss.NewStyle().Bold(true).Foreground(c.primary).MarginBottom(1),
		cardSource:     lipgloss.NewStyle().Foreground(c.green).MarginBottom(1),
		cardBody:       lipgloss.NewStyle().Foreground(c.secondary),
		cardLink:       lipgloss.NewStyle().Foreground(c.dim).Italic(true).MarginTop(1),
		cardCategory:   lipgloss.NewStyle().Foreground(c.accent),

		statusBar:    lipgloss.NewStyle().Background(c.statusBg).Foreground(c.statusFg).PaddingLeft(1).PaddingRight(1),
		errorText:    lipgloss.NewStyle().Foreground(c.accent),
		emptyText:    lipgloss.NewStyle().Foreground(c.dim),
		spinner:      lipgloss.NewStyle().Foreground(c.accent),
		searchPrompt: lipgloss.NewStyle().Foreground(c.accent).Bold(true),
	}
}
