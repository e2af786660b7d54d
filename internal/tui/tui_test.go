package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/pomo/internal/session"
	"github.com/sadopc/pomo/internal/store"
)

func newTestApp(t *testing.T) (App, *session.Session) {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("create test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	project, err := s.GetOrCreateProject(store.DefaultProject)
	if err != nil {
		t.Fatalf("get default project: %v", err)
	}

	sess := session.New(store.DefaultConfig(), project, nil)
	app := NewApp(s, sess)

	m, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m.(App), sess
}

func keyPress(t *testing.T, app App, k string) App {
	t.Helper()
	var msg tea.KeyMsg
	if k == " " {
		msg = tea.KeyMsg{Type: tea.KeySpace}
	} else {
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	m, _ := app.Update(msg)
	return m.(App)
}

// ============================================================
// Formatting helpers
// ============================================================

func TestFormatClock(t *testing.T) {
	cases := []struct {
		secs int
		want string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{125, "02:05"},
		{1500, "25:00"},
	}
	for _, c := range cases {
		if got := formatClock(c.secs); got != c.want {
			t.Errorf("formatClock(%d) = %q, want %q", c.secs, got, c.want)
		}
	}
}

func TestFormatLedgerSeconds(t *testing.T) {
	cases := []struct {
		secs int64
		want string
	}{
		{0, "0m 00s"},
		{65, "1m 05s"},
		{3600, "1h 00m 00s"},
		{3661, "1h 01m 01s"},
		{7325, "2h 02m 05s"},
	}
	for _, c := range cases {
		if got := formatLedgerSeconds(c.secs); got != c.want {
			t.Errorf("formatLedgerSeconds(%d) = %q, want %q", c.secs, got, c.want)
		}
	}
}

// ============================================================
// Big digit rendering
// ============================================================

func TestBigTimeLinesHasFiveRows(t *testing.T) {
	lines := bigTimeLines("25:00")
	if len(lines) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(lines))
	}
	width := len([]rune(lines[0]))
	for i, line := range lines {
		if len([]rune(line)) != width {
			t.Errorf("row %d width %d, want %d", i, len([]rune(line)), width)
		}
	}
}

func TestBigTimeLinesUnknownRuneIsBlank(t *testing.T) {
	lines := bigTimeLines("A")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			t.Errorf("row %d of unknown glyph not blank: %q", i, line)
		}
	}
}

// ============================================================
// Ledger table
// ============================================================

func TestTruncateName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"short", "short"},
		{"exactly-14-len", "exactly-14-len"},
		{"a-rather-long-project-name", "a-rather-lo..."},
		// Multibyte names exceed nameWidth bytes well before nameWidth
		// runes; truncation must never cut mid-rune.
		{"küçük-proje", "küçük-proje"},
		{"çalışma-süresi-takibi", "çalışma-sür..."},
	}
	for _, c := range cases {
		got := truncateName(c.name)
		if got != c.want {
			t.Errorf("truncateName(%q) = %q, want %q", c.name, got, c.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncateName(%q) produced invalid UTF-8: %q", c.name, got)
		}
	}
}

// ============================================================
// Timer view
// ============================================================

func TestRenderTimerShowsState(t *testing.T) {
	project := &store.Project{Name: "widget"}
	sess := session.New(store.DefaultConfig(), project, nil)

	out := renderTimer(sess, 80)

	for _, want := range []string{"FOCUS", "cycle: 1/4", "status: paused", "project: widget"} {
		if !strings.Contains(out, want) {
			t.Errorf("timer view missing %q:\n%s", want, out)
		}
	}

	sess.Toggle()
	out = renderTimer(sess, 80)
	if !strings.Contains(out, "status: running") {
		t.Errorf("timer view missing running status:\n%s", out)
	}
}

// ============================================================
// App key dispatch
// ============================================================

func TestSpaceTogglesSession(t *testing.T) {
	app, sess := newTestApp(t)

	app = keyPress(t, app, " ")
	if !sess.Running {
		t.Fatal("space did not start the session")
	}
	app = keyPress(t, app, " ")
	if sess.Running {
		t.Fatal("space did not pause the session")
	}
	_ = app
}

func TestTickMsgDrivesSession(t *testing.T) {
	app, sess := newTestApp(t)
	sess.Toggle()

	m, cmd := app.Update(tickMsg{})
	app = m.(App)

	if sess.Remaining != 25*60-1 {
		t.Fatalf("tick did not decrement, remaining %d", sess.Remaining)
	}
	if cmd == nil {
		t.Fatal("tick did not re-arm the scheduler")
	}
	_ = app
}

func TestResetAndSkipKeys(t *testing.T) {
	app, sess := newTestApp(t)
	sess.Toggle()

	app = keyPress(t, app, "s")
	if sess.Phase != session.PhaseBreak {
		t.Fatalf("s did not skip to break, got %v", sess.Phase)
	}

	app = keyPress(t, app, "r")
	if sess.Phase != session.PhaseFocus || sess.Running || sess.CurrentCycle != 1 {
		t.Fatalf("r did not reset: phase=%v running=%v cycle=%d",
			sess.Phase, sess.Running, sess.CurrentCycle)
	}
	_ = app
}

func TestProjectsViewPausesAndReturns(t *testing.T) {
	app, sess := newTestApp(t)
	sess.Toggle()

	app = keyPress(t, app, "p")
	if app.activeView != viewProjects {
		t.Fatal("p did not open the projects view")
	}
	if sess.Running {
		t.Fatal("opening the projects view must pause the session")
	}

	// Timer keys are inert while the ledger is shown.
	app = keyPress(t, app, "s")
	if sess.Phase != session.PhaseFocus {
		t.Fatal("s must be inert in the projects view")
	}

	app = keyPress(t, app, "p")
	if app.activeView != viewTimer {
		t.Fatal("p did not return to the timer view")
	}
}

func TestQuitKeyQuits(t *testing.T) {
	app, _ := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q produced no command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Fatalf("q produced %T, want tea.QuitMsg", msg)
	}
}
