package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrEmptyName is returned when a project is looked up with an empty name.
var ErrEmptyName = errors.New("project name must not be empty")

// GetOrCreateProject looks a project up by name, inserting a zeroed record
// on first reference. The insert happens immediately so the name is
// reserved even if the run later dies without a counter flush.
func (s *Store) GetOrCreateProject(name string) (*Project, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	p := &Project{}
	err := s.db.QueryRow(
		`SELECT name, focus_seconds, total_seconds FROM projects WHERE name = ?`, name,
	).Scan(&p.Name, &p.FocusSeconds, &p.TotalSeconds)
	if errors.Is(err, sql.ErrNoRows) {
		if _, err := s.db.Exec(
			`INSERT INTO projects (name, focus_seconds, total_seconds) VALUES (?, 0, 0)`, name,
		); err != nil {
			return nil, fmt.Errorf("insert project %q: %w", name, err)
		}
		return &Project{Name: name}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project %q: %w", name, err)
	}
	return p, nil
}

// ListProjects returns every project ordered by name.
func (s *Store) ListProjects() ([]Project, error) {
	rows, err := s.db.Query(
		`SELECT name, focus_seconds, total_seconds FROM projects ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.Name, &p.FocusSeconds, &p.TotalSeconds); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// SaveProject writes a project's counters back wholesale. Called once per
// run, at shutdown, for the active project.
func (s *Store) SaveProject(p *Project) error {
	if p.Name == "" {
		return ErrEmptyName
	}
	_, err := s.db.Exec(
		`UPDATE projects SET focus_seconds = ?, total_seconds = ? WHERE name = ?`,
		p.FocusSeconds, p.TotalSeconds, p.Name,
	)
	if err != nil {
		return fmt.Errorf("save project %q: %w", p.Name, err)
	}
	return nil
}
