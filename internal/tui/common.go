package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/pomo/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewTimer viewState = iota
	viewProjects
	viewConfig
)

// --- Messages ---

type tickMsg time.Time

type statusMsg struct {
	text    string
	isError bool
}

type projectsDataMsg struct {
	projects []store.Project
}

type configSavedMsg struct{}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

// formatClock renders a countdown as MM:SS.
func formatClock(secs int) string {
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// formatLedgerSeconds renders accumulated project time the way the ledger
// table shows it: "1h 01m 01s", with the hour part suppressed when zero.
func formatLedgerSeconds(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
	}
	return fmt.Sprintf("%dm %02ds", m, s)
}
