package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Rigediduu/tool-evaluation-kit-demo/internal/scoring"
)

// JSONReport is the optional machine-readable export of a run.
type JSONReport struct {
	RunID       string           `json:"run_id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Results     []scoring.Result `json:"results"`
}

func WriteJSON(r *JSONReport, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
