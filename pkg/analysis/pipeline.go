package analysis

import (
	"github.com/eth-easl/brachistochrone/pkg/common"

	log "github.com/sirupsen/logrus"
)

// SizeSeries is the aggregated baseline curve of one matrix size and, if the
// curve has enough points, its optimum.
type SizeSeries struct {
	MatrixSize int
	Series     Series

	Optimum    Optimum
	HasOptimum bool
}

// Result gathers everything derived from one dataset.
type Result struct {
	Series []SizeSeries
	// SkippedSizes have too few granularities for minimum detection.
	SkippedSizes []int

	Surface *Surface
	Valley  []ValleyPoint

	Overhead    []OverheadSample
	Comparisons []FaultComparison
}

// Analyze runs every stage over the dataset. Stages only read the dataset,
// so the same input always yields the same result.
func Analyze(dataset common.Dataset) (*Result, error) {
	result := &Result{
		SkippedSizes: []int{},
	}

	groups := GroupBaseline(dataset)
	for _, size := range groups.MatrixSizes() {
		entry := SizeSeries{
			MatrixSize: size,
			Series:     groups.Series(size),
		}

		entry.Optimum, entry.HasOptimum = FindMinimum(entry.Series)
		if !entry.HasOptimum {
			log.Debugf("Matrix size %d has %d granularities, skipping minimum detection", size, len(entry.Series))
			result.SkippedSizes = append(result.SkippedSizes, size)
		}

		result.Series = append(result.Series, entry)
	}

	surface, err := BuildSurface(dataset)
	if err != nil {
		return nil, err
	}
	result.Surface = surface
	result.Valley = FindValley(dataset)

	result.Overhead = AnalyzeOverhead(dataset)
	result.Comparisons = CompareFaults(dataset)

	if !result.HasOverhead() {
		log.Info("Not enough data with killed workers to compute the fault tolerance overhead")
	}

	return result, nil
}

func (r *Result) HasOverhead() bool {
	return len(r.Overhead) > 0
}

// Optima returns the series that have an optimum, in ascending size order.
func (r *Result) Optima() []SizeSeries {
	var optima []SizeSeries
	for _, s := range r.Series {
		if s.HasOptimum {
			optima = append(optima, s)
		}
	}
	return optima
}
