package scoring

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Rigediduu/tool-evaluation-kit-demo/internal/rubric"
	"github.com/Rigediduu/tool-evaluation-kit-demo/internal/scores"
)

// Compute walks rows in input order and produces one Result per tool.
// Any missing column, unparseable value, or out-of-range score aborts the
// whole computation; no partial results are returned.
func Compute(r *rubric.Rubric, rows []scores.Row) ([]Result, error) {
	results := make([]Result, 0, len(rows))

	for _, row := range rows {
		tool := strings.TrimSpace(row["tool"])

		var weighted, raw, maxRaw float64
		for _, c := range r.Criteria {
			value, ok := row[c.ID]
			if !ok {
				return nil, fmt.Errorf("tool %q has no column for criterion %q", tool, c.ID)
			}
			score, err := parseScore(value, r.Scale)
			if err != nil {
				return nil, fmt.Errorf("tool %q, criterion %q: %w", tool, c.ID, err)
			}
			weighted += score * c.Weight
			raw += score
			maxRaw += float64(r.Scale.Max)
		}
		normalized := raw / maxRaw * 100.0

		results = append(results, Result{
			Tool:              tool,
			WeightedScore:     fmt.Sprintf("%.3f", weighted),
			NormalizedPercent: fmt.Sprintf("%.1f", normalized),
			Notes:             row["notes"],
		})
	}

	return results, nil
}

func parseScore(value string, s rubric.Scale) (float64, error) {
	score, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("score %q is not numeric", value)
	}
	if score < float64(s.Min) || score > float64(s.Max) {
		return 0, fmt.Errorf("score %g out of range [%d, %d]", score, s.Min, s.Max)
	}
	return score, nil
}

// Rank sorts results by weighted score descending. The sort is stable and
// keyed on the formatted value, so tools whose scores round to the same
// three decimals keep their input order.
func Rank(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return numericScore(results[i]) > numericScore(results[j])
	})
}

func numericScore(r Result) float64 {
	v, _ := strconv.ParseFloat(r.WeightedScore, 64)
	return v
}
