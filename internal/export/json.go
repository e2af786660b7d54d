package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/pomo/internal/store"
)

type jsonExport struct {
	ExportedAt string        `json:"exported_at"`
	Count      int           `json:"count"`
	Projects   []jsonProject `json:"projects"`
}

type jsonProject struct {
	Name         string `json:"name"`
	FocusSeconds int64  `json:"focus_seconds"`
	Focus        string `json:"focus"`
	TotalSeconds int64  `json:"total_seconds"`
	Total        string `json:"total"`
}

func ToJSON(projects []store.Project, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(projects),
	}

	for _, p := range projects {
		export.Projects = append(export.Projects, jsonProject{
			Name:         p.Name,
			FocusSeconds: p.FocusSeconds,
			Focus:        formatDuration(p.FocusSeconds),
			TotalSeconds: p.TotalSeconds,
			Total:        formatDuration(p.TotalSeconds),
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
