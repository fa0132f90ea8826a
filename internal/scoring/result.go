package scoring

// Result is one tool's computed standing. WeightedScore and
// NormalizedPercent are fixed-point decimal strings (3 and 1 places) so the
// report writers emit them verbatim without re-formatting.
type Result struct {
	Tool              string `json:"tool"`
	WeightedScore     string `json:"weighted_score"`
	NormalizedPercent string `json:"normalized_percent"`
	Notes             string `json:"notes"`
}
