// Package session implements the pomodoro phase state machine. It owns a
// working copy of the active project and accrues elapsed seconds into it;
// the canonical stored copy is only written back by the caller at shutdown.
package session

import "github.com/sadopc/pomo/internal/store"

type Phase int

const (
	PhaseFocus Phase = iota
	PhaseBreak
	PhaseLongBreak
)

var phaseNames = map[Phase]string{
	PhaseFocus:     "FOCUS",
	PhaseBreak:     "BREAK",
	PhaseLongBreak: "LONG BREAK",
}

func (p Phase) String() string {
	return phaseNames[p]
}

// Session is the mutable runtime state of one timer run. It is never
// persisted directly; only the embedded project counters survive the run.
type Session struct {
	cfg store.Config

	Phase        Phase
	CurrentCycle int
	Remaining    int // seconds left in the current phase
	Running      bool
	Project      *store.Project

	// notify fires on natural phase completion, never on Skip. It must not
	// block; the notifier dispatches its own goroutine.
	notify func()
}

// New builds a session in the initial state: Focus, cycle 1, full countdown,
// paused. notify may be nil.
func New(cfg store.Config, project *store.Project, notify func()) *Session {
	return &Session{
		cfg:          cfg,
		Phase:        PhaseFocus,
		CurrentCycle: 1,
		Remaining:    cfg.Focus * 60,
		Project:      project,
		notify:       notify,
	}
}

// Toggle flips between running and paused. Always valid.
func (s *Session) Toggle() {
	s.Running = !s.Running
}

// Tick advances the countdown by one second. The caller is responsible for
// the once-per-second cadence (the TUI re-arms a 1s tea.Tick). While paused
// this is a no-op. A tick that lands on zero notifies and advances within
// the same call, so the countdown never sits at 00:00.
func (s *Session) Tick() {
	if !s.Running || s.Remaining == 0 {
		return
	}

	s.Remaining--
	s.Project.TotalSeconds++
	if s.Phase == PhaseFocus {
		s.Project.FocusSeconds++
	}

	if s.Remaining == 0 {
		if s.notify != nil {
			s.notify()
		}
		s.Advance()
	}
}

// Advance moves to the next phase and resets the countdown to that phase's
// configured duration. The cycle counter increments on Break→Focus and
// resets to 1 on LongBreak→Focus; Running is left untouched.
func (s *Session) Advance() {
	switch s.Phase {
	case PhaseFocus:
		if s.CurrentCycle == s.cfg.Cycles {
			s.Phase = PhaseLongBreak
			s.Remaining = s.cfg.LongBreak * 60
		} else {
			s.Phase = PhaseBreak
			s.Remaining = s.cfg.Break * 60
		}
	case PhaseBreak:
		s.CurrentCycle++
		s.Phase = PhaseFocus
		s.Remaining = s.cfg.Focus * 60
	case PhaseLongBreak:
		s.CurrentCycle = 1
		s.Phase = PhaseFocus
		s.Remaining = s.cfg.Focus * 60
	}
}

// Reset forces the machine back to a paused Focus phase at cycle 1.
func (s *Session) Reset() {
	s.Phase = PhaseFocus
	s.CurrentCycle = 1
	s.Remaining = s.cfg.Focus * 60
	s.Running = false
}

// Skip jumps to the next phase immediately, without the completion
// notification.
func (s *Session) Skip() {
	s.Advance()
}

// Pause stops the countdown. Used when leaving the timer view.
func (s *Session) Pause() {
	s.Running = false
}

// Config returns the configuration the session was built from.
func (s *Session) Config() store.Config {
	return s.cfg
}
