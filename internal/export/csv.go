// Package export writes ledger snapshots to CSV or JSON.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/sadopc/pomo/internal/store"
)

func ToCSV(projects []store.Project, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Project", "Focus (s)", "Focus", "Total (s)", "Total"}); err != nil {
		return err
	}

	for _, p := range projects {
		row := []string{
			p.Name,
			fmt.Sprintf("%d", p.FocusSeconds),
			formatDuration(p.FocusSeconds),
			fmt.Sprintf("%d", p.TotalSeconds),
			formatDuration(p.TotalSeconds),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func formatDuration(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
