package rubric

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoCriteria   = errors.New("rubric has no criteria")
	ErrWeightSum    = errors.New("criteria weights must sum to 1.0")
	ErrDuplicateIDs = errors.New("criterion IDs must be unique")
	ErrScaleOrder   = errors.New("scale min must be less than max")
)

type rubricDoc struct {
	Scale    *scaleSpec      `yaml:"scale"`
	Criteria []criterionSpec `yaml:"criteria"`
}

type scaleSpec struct {
	Min *int `yaml:"min"`
	Max *int `yaml:"max"`
}

type criterionSpec struct {
	ID     string  `yaml:"id"`
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

func LoadFromFile(path string) (*Rubric, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rubric file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Rubric, error) {
	var doc rubricDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse rubric YAML: %w", err)
	}

	r := &Rubric{
		Scale: Scale{Min: DefaultMinScore, Max: DefaultMaxScore},
	}
	if doc.Scale != nil {
		if doc.Scale.Min != nil {
			r.Scale.Min = *doc.Scale.Min
		}
		if doc.Scale.Max != nil {
			r.Scale.Max = *doc.Scale.Max
		}
	}

	r.Criteria = make([]Criterion, 0, len(doc.Criteria))
	for _, c := range doc.Criteria {
		r.Criteria = append(r.Criteria, Criterion{
			ID:     strings.TrimSpace(c.ID),
			Name:   strings.TrimSpace(c.Name),
			Weight: c.Weight,
		})
	}

	if err := validate(r); err != nil {
		return nil, err
	}
	return r, nil
}

func validate(r *Rubric) error {
	if len(r.Criteria) == 0 {
		return ErrNoCriteria
	}
	if r.Scale.Min >= r.Scale.Max {
		return fmt.Errorf("%w: got [%d, %d]", ErrScaleOrder, r.Scale.Min, r.Scale.Max)
	}

	total := 0.0
	seen := make(map[string]bool, len(r.Criteria))
	for _, c := range r.Criteria {
		total += c.Weight
		if seen[c.ID] {
			return fmt.Errorf("%w: %q appears more than once", ErrDuplicateIDs, c.ID)
		}
		seen[c.ID] = true
	}
	if math.Abs(total-1.0) > WeightSumTolerance {
		return fmt.Errorf("%w: got %g", ErrWeightSum, total)
	}
	return nil
}
