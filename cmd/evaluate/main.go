package main

import (
	"log/slog"
	"os"

	"github.com/Rigediduu/tool-evaluation-kit-demo/internal/pipeline"
	"github.com/Rigediduu/tool-evaluation-kit-demo/internal/report"
)

func main() {
	cfg := parseFlags()

	summary, err := pipeline.Run(cfg.pipelineConfig())
	if err != nil {
		slog.Error("Evaluation failed", "error", err)
		os.Exit(1)
	}

	report.WriteTable(summary.Results, os.Stdout)

	if cfg.JSONPath != "" {
		jr := &report.JSONReport{
			RunID:       summary.RunID.String(),
			GeneratedAt: summary.GeneratedAt,
			Results:     summary.Results,
		}
		if err := report.WriteJSON(jr, cfg.JSONPath); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
		slog.Info("JSON report written", "path", cfg.JSONPath)
	}

	slog.Info("Evaluation complete",
		"run_id", summary.RunID,
		"tools", summary.ToolCount,
		"criteria", summary.CriteriaCount,
	)
}
