package rubric

// Criterion is one weighted rubric dimension. Values are immutable after
// loading.
type Criterion struct {
	ID     string
	Name   string
	Weight float64
}

// Scale is the inclusive valid range for any raw score.
type Scale struct {
	Min int
	Max int
}

// Rubric is the validated output of the loader: criteria in source order
// plus the scoring scale. Criteria order drives column iteration downstream.
type Rubric struct {
	Criteria []Criterion
	Scale    Scale
}

const (
	DefaultMinScore = 1
	DefaultMaxScore = 5
)

// WeightSumTolerance is the absolute tolerance when checking that criterion
// weights sum to 1.0.
const WeightSumTolerance = 1e-5
