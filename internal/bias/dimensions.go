// Package bias derives bias indicators from historical hiring records by
// comparing hire rates across groups of protected or derived attributes.
package bias

import (
	"fmt"

	"github.com/jonathan/hirescore/internal/types"
)

// Dimension is one grouping axis for bias analysis: a label, a grouping
// function, and the recommendations to emit when the dimension's
// hire-rate variance crosses the alert threshold. Adding a dimension
// means appending to DefaultDimensions; the variance routine never
// changes.
type Dimension struct {
	// Name keys the dimension in the bias_indicators map.
	Name string
	// GroupOf maps a record to its group label. ok=false excludes the
	// record from this dimension.
	GroupOf func(r types.HiringRecord) (label string, ok bool)
	// Recommendations are emitted when this dimension's variance exceeds
	// the alert threshold.
	Recommendations []string
}

// Age bucket boundaries for the derived age dimension. A missing age
// defaults to 30 rather than excluding the record.
const defaultAge = 30

func ageBucket(age float64) string {
	switch {
	case age < 30:
		return "under_30"
	case age < 40:
		return "30_39"
	case age < 50:
		return "40_49"
	default:
		return "over_50"
	}
}

// DefaultDimensions returns the two analyzed axes: the literal gender
// field and a derived age bucket. These are the only dimensions the
// source data carries; the list is the extension point for more.
func DefaultDimensions() []Dimension {
	return []Dimension{
		{
			Name: "gender_bias",
			GroupOf: func(r types.HiringRecord) (string, bool) {
				if r.Gender == nil || *r.Gender == "" {
					return "", false
				}
				return *r.Gender, true
			},
			Recommendations: []string{
				"Implement blind resume screening to reduce gender bias",
				"Ensure diverse interview panels",
			},
		},
		{
			Name: "age_bias",
			GroupOf: func(r types.HiringRecord) (string, bool) {
				age := float64(defaultAge)
				if r.Age != nil {
					age = *r.Age
				}
				return ageBucket(age), true
			},
			Recommendations: []string{
				"Focus on skills and experience rather than graduation dates",
				"Use structured interviews with standardized questions",
			},
		},
	}
}

// validateDimensions guards against misconfigured dimension lists.
func validateDimensions(dims []Dimension) error {
	seen := make(map[string]bool, len(dims))
	for _, d := range dims {
		if d.Name == "" || d.GroupOf == nil {
			return fmt.Errorf("dimension missing name or grouping function")
		}
		if seen[d.Name] {
			return fmt.Errorf("duplicate dimension name %q", d.Name)
		}
		seen[d.Name] = true
	}
	return nil
}
