package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Rigediduu/tool-evaluation-kit-demo/internal/scoring"
)

var csvHeader = []string{"tool", "weighted_score", "normalized_percent", "notes"}

// WriteCSV writes the ranked results as a CSV artifact, creating the
// destination directory if needed. Score strings are emitted verbatim.
func WriteCSV(results []scoring.Result, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results CSV: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write results CSV header: %w", err)
	}
	for _, r := range results {
		row := []string{r.Tool, r.WeightedScore, r.NormalizedPercent, r.Notes}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write results CSV row for %q: %w", r.Tool, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush results CSV: %w", err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}
