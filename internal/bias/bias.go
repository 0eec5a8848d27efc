package bias

import (
	"math"

	"github.com/jonathan/hirescore/internal/types"
)

const (
	// minGroupsPerDimension gates a dimension into the report: comparing
	// hire rates needs at least two groups.
	minGroupsPerDimension = 2
	// varianceAlertThreshold triggers dimension-specific recommendations.
	// Policy constant; it carries no statistical-significance claim.
	varianceAlertThreshold = 0.1
)

// collectMoreDataRecommendation is returned whenever no dimension
// qualifies for analysis.
const collectMoreDataRecommendation = "Collect more hiring data for analysis"

// genericRecommendations are emitted when dimensions qualified but none
// crossed the alert threshold.
var genericRecommendations = []string{
	"Continue monitoring hiring patterns for bias",
	"Maintain diverse candidate pipelines",
}

// Detector runs variance-based bias analysis over a fixed dimension list.
type Detector struct {
	dimensions []Dimension
}

// NewDetector creates a detector over the given dimensions, or the
// default gender/age pair when none are supplied.
func NewDetector(dims []Dimension) (*Detector, error) {
	if len(dims) == 0 {
		dims = DefaultDimensions()
	}
	if err := validateDimensions(dims); err != nil {
		return nil, err
	}
	return &Detector{dimensions: dims}, nil
}

// Analyze groups the records along each dimension, computes per-group
// hire rates and their population variance, and derives the overall bias
// score as min(average variance across qualifying dimensions * 100, 100).
// Dimensions with fewer than two groups are omitted entirely. When no
// dimension qualifies the report is the documented fallback: score 0,
// empty indicators, and the single collect-more-data recommendation.
//
// Known weakness, preserved by design: variance over small groups reads
// as bias with no sample-size or significance adjustment.
func (d *Detector) Analyze(records []types.HiringRecord) types.BiasReport {
	indicators := make(map[string]types.BiasIndicator)
	alerted := make([]string, 0, len(d.dimensions))

	totalVariance := 0.0
	for _, dim := range d.dimensions {
		rates, ok := hireRates(records, dim)
		if !ok {
			continue
		}
		variance := populationVariance(values(rates))
		indicators[dim.Name] = types.BiasIndicator{HireRates: rates, Variance: variance}
		totalVariance += variance
		if variance > varianceAlertThreshold {
			alerted = append(alerted, dim.Name)
		}
	}

	if len(indicators) == 0 {
		return types.BiasReport{
			BiasScore:       0,
			BiasIndicators:  map[string]types.BiasIndicator{},
			Recommendations: []string{collectMoreDataRecommendation},
			Fallback:        true,
		}
	}

	avgVariance := totalVariance / float64(len(indicators))
	score := math.Min(avgVariance*100, 100)

	return types.BiasReport{
		BiasScore:       int(math.Round(score)),
		BiasIndicators:  indicators,
		Recommendations: d.recommendations(alerted),
	}
}

// hireRates computes the hired fraction per group for one dimension.
// ok=false when fewer than minGroupsPerDimension distinct groups appear.
func hireRates(records []types.HiringRecord, dim Dimension) (map[string]float64, bool) {
	sizes := make(map[string]int)
	hires := make(map[string]int)
	for _, r := range records {
		label, include := dim.GroupOf(r)
		if !include {
			continue
		}
		sizes[label]++
		if r.Hired {
			hires[label]++
		}
	}

	if len(sizes) < minGroupsPerDimension {
		return nil, false
	}

	rates := make(map[string]float64, len(sizes))
	for label, size := range sizes {
		rates[label] = float64(hires[label]) / float64(size)
	}
	return rates, true
}

// populationVariance is the mean of squared deviations from the mean,
// dividing by N (not N-1).
func populationVariance(nums []float64) float64 {
	if len(nums) == 0 {
		return 0
	}
	mean := 0.0
	for _, n := range nums {
		mean += n
	}
	mean /= float64(len(nums))

	variance := 0.0
	for _, n := range nums {
		d := n - mean
		variance += d * d
	}
	return variance / float64(len(nums))
}

func values(m map[string]float64) []float64 {
	out := make([]float64, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

// recommendations collects the dimension-specific suggestions for every
// alerted dimension, or the generic monitoring pair when none alerted.
func (d *Detector) recommendations(alerted []string) []string {
	var recs []string
	for _, dim := range d.dimensions {
		for _, name := range alerted {
			if dim.Name == name {
				recs = append(recs, dim.Recommendations...)
			}
		}
	}
	if len(recs) == 0 {
		recs = append(recs, genericRecommendations...)
	}
	return recs
}
