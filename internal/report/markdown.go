package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/Rigediduu/tool-evaluation-kit-demo/internal/scoring"
)

// WriteMarkdown writes the ranked results as a Markdown table with 1-based
// ranks, creating the destination directory if needed.
func WriteMarkdown(results []scoring.Result, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("# Tool Evaluation Results\n\n")
	b.WriteString("| Rank | Tool | Weighted Score | Normalized (0-100) | Notes | \n")
	b.WriteString("|---:|---|---:|---:|---|\n")
	for i, r := range results {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			i+1, r.Tool, r.WeightedScore, r.NormalizedPercent, r.Notes)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write results markdown: %w", err)
	}
	return nil
}
