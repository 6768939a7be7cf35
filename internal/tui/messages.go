package tui

import (
	"time"

	"github.com/srikar0313/TechPulse/internal/news"
)

// batchMsg delivers a successfully generated and normalized batch.
type batchMsg struct {
	articles []news.Article
	at       time.Time
}

// refreshErrMsg reports a failed refresh. The previous batch stays on
// screen untouched.
type refreshErrMsg struct {
	err error
}

// refreshTickMsg fires once per refresh interval.
type refreshTickMsg struct{}

// uiErrMsg carries non-refresh errors (e.g. browser launch).
type uiErrMsg struct {
	err error
}
