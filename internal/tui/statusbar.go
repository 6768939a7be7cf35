package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (p palette) renderStatusBar(shown, total int, lastUpdated time.Time, width int, searching, refreshing bool) string {
	left := fmt.Sprintf(" %d of %d articles", shown, total)
	if !lastUpdated.IsZero() {
		left += " · updated " + lastUpdated.Format("15:04:05")
	}
	if refreshing {
		left += " (refreshing...)"
	}

	right := " / search  b bookmark  o open  t theme  q quit "
	if searching {
		right = " esc cancel  enter apply "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right
	return p.statusBar.Width(width).Render(bar)
}
