package store

// Config holds the four user-tunable durations. Exactly one row exists per
// installation; all values are minutes except Cycles, the number of focus
// phases before a long break.
type Config struct {
	Focus     int
	Break     int
	LongBreak int
	Cycles    int
}

// DefaultConfig is seeded on first run and whenever the config row goes
// missing.
func DefaultConfig() Config {
	return Config{Focus: 25, Break: 5, LongBreak: 15, Cycles: 4}
}

// Valid reports whether every field is a positive integer.
func (c Config) Valid() bool {
	return c.Focus > 0 && c.Break > 0 && c.LongBreak > 0 && c.Cycles > 0
}

// Project is a named accumulator of elapsed work time. FocusSeconds counts
// focus-phase seconds only and is always <= TotalSeconds; both grow
// monotonically during a run.
type Project struct {
	Name         string
	FocusSeconds int64
	TotalSeconds int64
}
