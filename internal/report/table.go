package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Rigediduu/tool-evaluation-kit-demo/internal/scoring"
)

// WriteTable renders the ranked results as an aligned console table. It is a
// convenience view; the CSV and Markdown artifacts are the canonical outputs.
func WriteTable(results []scoring.Result, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Tool Evaluation Results ===\n\n")

	header := []string{"Rank", "Tool", "Weighted", "Normalized %", "Notes"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for i, r := range results {
		row := []string{
			fmt.Sprintf("%d", i+1),
			r.Tool,
			r.WeightedScore,
			r.NormalizedPercent,
			r.Notes,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
	tw.Flush()
}
