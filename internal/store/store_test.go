package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("create test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Migrations
// ============================================================

func TestMigrateSetsUserVersion(t *testing.T) {
	s := newTestStore(t)

	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("read user_version: %v", err)
	}
	if version != currentVersion {
		t.Fatalf("expected user_version %d, got %d", currentVersion, version)
	}
}

func TestNewCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pomo.db")

	s, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	if _, err := s.Config(); err != nil {
		t.Fatalf("config on fresh file store: %v", err)
	}
}

// ============================================================
// Config
// ============================================================

func TestConfigSeededDefaults(t *testing.T) {
	s := newTestStore(t)

	cfg, err := s.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	want := Config{Focus: 25, Break: 5, LongBreak: 15, Cycles: 4}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	s := newTestStore(t)

	want := Config{Focus: 50, Break: 10, LongBreak: 30, Cycles: 2}
	if err := s.SaveConfig(want); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	got, err := s.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestConfigReseedsMissingRow(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.db.Exec("DELETE FROM config"); err != nil {
		t.Fatalf("delete config row: %v", err)
	}

	cfg, err := s.Config()
	if err != nil {
		t.Fatalf("Config after delete: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("expected defaults after reseed, got %+v", cfg)
	}
}

func TestConfigReseedsMalformedRow(t *testing.T) {
	s := newTestStore(t)

	// Non-positive durations would give the session a zero-length phase.
	if _, err := s.db.Exec("UPDATE config SET focus = 0, cycles = -3 WHERE id = 1"); err != nil {
		t.Fatalf("corrupt config row: %v", err)
	}

	cfg, err := s.Config()
	if err != nil {
		t.Fatalf("Config after corruption: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("expected defaults after reseed, got %+v", cfg)
	}

	// The stored row is repaired, not just masked on read.
	again, err := s.Config()
	if err != nil {
		t.Fatalf("Config on repaired row: %v", err)
	}
	if again != DefaultConfig() {
		t.Fatalf("repaired row did not persist, got %+v", again)
	}
}

// ============================================================
// Projects
// ============================================================

func TestDefaultProjectSeeded(t *testing.T) {
	s := newTestStore(t)

	projects, err := s.ListProjects()
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	for _, p := range projects {
		if p.Name == DefaultProject {
			return
		}
	}
	t.Fatalf("%q project missing from fresh store", DefaultProject)
}

func TestGetOrCreateProjectCreatesZeroedRow(t *testing.T) {
	s := newTestStore(t)

	p, err := s.GetOrCreateProject("widget")
	if err != nil {
		t.Fatalf("GetOrCreateProject: %v", err)
	}
	if p.Name != "widget" || p.FocusSeconds != 0 || p.TotalSeconds != 0 {
		t.Fatalf("expected zeroed row, got %+v", p)
	}

	// The row is persisted immediately, not lazily at save time.
	projects, err := s.ListProjects()
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	found := false
	for _, row := range projects {
		if row.Name == "widget" {
			found = true
		}
	}
	if !found {
		t.Fatal("created project not visible in listing")
	}
}

func TestGetOrCreateProjectExisting(t *testing.T) {
	s := newTestStore(t)

	p, err := s.GetOrCreateProject("widget")
	if err != nil {
		t.Fatalf("GetOrCreateProject: %v", err)
	}
	p.FocusSeconds = 120
	p.TotalSeconds = 150
	if err := s.SaveProject(p); err != nil {
		t.Fatalf("SaveProject: %v", err)
	}

	again, err := s.GetOrCreateProject("widget")
	if err != nil {
		t.Fatalf("GetOrCreateProject (existing): %v", err)
	}
	if again.FocusSeconds != 120 || again.TotalSeconds != 150 {
		t.Fatalf("expected counters 120/150, got %d/%d",
			again.FocusSeconds, again.TotalSeconds)
	}
}

func TestGetOrCreateProjectEmptyName(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetOrCreateProject("")
	if !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestListProjectsOrderedByName(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if _, err := s.GetOrCreateProject(name); err != nil {
			t.Fatalf("GetOrCreateProject(%q): %v", name, err)
		}
	}

	projects, err := s.ListProjects()
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	for i := 1; i < len(projects); i++ {
		if projects[i-1].Name > projects[i].Name {
			t.Fatalf("projects not sorted: %q before %q",
				projects[i-1].Name, projects[i].Name)
		}
	}
}
