package analysis

import (
	"github.com/eth-easl/brachistochrone/pkg/common"
	"gonum.org/v1/gonum/floats"
)

// Optimum is the granularity with the lowest mean total time.
type Optimum struct {
	Granularity int
	Time        float64
}

// FindMinimum scans a granularity-sorted series for its global minimum. The
// smallest granularity wins on ties. The second return value is false when
// the series is too short to describe a U-curve.
func FindMinimum(series Series) (Optimum, bool) {
	if len(series) < common.MinSeriesPoints {
		return Optimum{}, false
	}

	best := series[floats.MinIdx(series.Times())]

	return Optimum{
		Granularity: best.Granularity,
		Time:        best.Time,
	}, true
}
