package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomo/internal/session"
)

// phaseColor maps a phase to its semantic accent.
func phaseColor(p session.Phase) lipgloss.Color {
	switch p {
	case session.PhaseBreak:
		return colorBreak
	case session.PhaseLongBreak:
		return colorLongBreak
	default:
		return colorFocus
	}
}

// renderTimer is the render bridge: a pure function of the session state,
// safe to call at any rate. It produces the phase title, the big-digit
// countdown and the status line.
func renderTimer(s *session.Session, width int) string {
	accent := phaseColor(s.Phase)

	title := phaseStyle(accent).Render(s.Phase.String())
	clock := renderBigTime(formatClock(s.Remaining), accent)

	status := "paused"
	if s.Running {
		status = "running"
	}
	info := mutedStyle.Render(fmt.Sprintf(
		"cycle: %d/%d | status: %s | project: %s",
		s.CurrentCycle, s.Config().Cycles, status, s.Project.Name,
	))

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	return lipgloss.JoinVertical(lipgloss.Left,
		center.Render(title),
		"",
		center.Render(clock),
		"",
		center.Render(info),
	)
}
