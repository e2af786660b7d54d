package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// Config loads the singleton config row. A missing or malformed row (e.g.
// deleted or zeroed out from under us) is recovered by re-seeding the
// defaults rather than surfacing an error: a non-positive duration would
// hand the session a zero-length phase it can never leave.
func (s *Store) Config() (Config, error) {
	var c Config
	err := s.db.QueryRow(
		`SELECT focus, break_time, long_break, cycles FROM config WHERE id = 1`,
	).Scan(&c.Focus, &c.Break, &c.LongBreak, &c.Cycles)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Config{}, fmt.Errorf("get config: %w", err)
	}
	if errors.Is(err, sql.ErrNoRows) || !c.Valid() {
		c = DefaultConfig()
		if err := s.SaveConfig(c); err != nil {
			return Config{}, fmt.Errorf("seed default config: %w", err)
		}
	}
	return c, nil
}

// SaveConfig writes the singleton config row wholesale.
func (s *Store) SaveConfig(c Config) error {
	_, err := s.db.Exec(
		`INSERT INTO config (id, focus, break_time, long_break, cycles) VALUES (1, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			focus = excluded.focus,
			break_time = excluded.break_time,
			long_break = excluded.long_break,
			cycles = excluded.cycles`,
		c.Focus, c.Break, c.LongBreak, c.Cycles,
	)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}
