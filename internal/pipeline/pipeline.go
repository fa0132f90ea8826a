package pipeline

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Rigediduu/tool-evaluation-kit-demo/internal/report"
	"github.com/Rigediduu/tool-evaluation-kit-demo/internal/rubric"
	"github.com/Rigediduu/tool-evaluation-kit-demo/internal/scores"
	"github.com/Rigediduu/tool-evaluation-kit-demo/internal/scoring"
)

type Config struct {
	CriteriaPath string
	ScoresPath   string
	CSVPath      string
	MarkdownPath string
}

// Summary describes a completed run. Results are in ranked order, matching
// the two written artifacts.
type Summary struct {
	RunID         uuid.UUID
	GeneratedAt   time.Time
	CriteriaCount int
	ToolCount     int
	Results       []scoring.Result
}

// Run executes the whole evaluation: load rubric and scores, compute and
// rank, write the CSV and Markdown artifacts. The first error aborts the
// run; no partial output is written if scoring fails.
func Run(cfg Config) (*Summary, error) {
	r, err := rubric.LoadFromFile(cfg.CriteriaPath)
	if err != nil {
		return nil, fmt.Errorf("load rubric: %w", err)
	}
	slog.Info("Rubric loaded",
		"path", cfg.CriteriaPath,
		"criteria", len(r.Criteria),
		"scale_min", r.Scale.Min,
		"scale_max", r.Scale.Max,
	)

	rows, err := scores.LoadFromFile(cfg.ScoresPath)
	if err != nil {
		return nil, fmt.Errorf("load scores: %w", err)
	}
	slog.Info("Scores loaded", "path", cfg.ScoresPath, "rows", len(rows))

	results, err := scoring.Compute(r, rows)
	if err != nil {
		return nil, fmt.Errorf("compute results: %w", err)
	}
	scoring.Rank(results)

	if err := report.WriteCSV(results, cfg.CSVPath); err != nil {
		return nil, fmt.Errorf("write CSV report: %w", err)
	}
	if err := report.WriteMarkdown(results, cfg.MarkdownPath); err != nil {
		return nil, fmt.Errorf("write markdown report: %w", err)
	}

	return &Summary{
		RunID:         uuid.New(),
		GeneratedAt:   time.Now().UTC(),
		CriteriaCount: len(r.Criteria),
		ToolCount:     len(results),
		Results:       results,
	}, nil
}
