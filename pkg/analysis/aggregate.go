package analysis

import (
	"sort"

	"github.com/eth-easl/brachistochrone/pkg/common"
	"gonum.org/v1/gonum/stat"
)

// Point is the mean total time measured at one granularity.
type Point struct {
	Granularity int
	Time        float64
}

// Series holds the points of one matrix size in ascending granularity order.
type Series []Point

func (s Series) Times() []float64 {
	times := make([]float64, len(s))
	for i, p := range s {
		times[i] = p.Time
	}
	return times
}

func (s Series) Granularities() []int {
	granularities := make([]int, len(s))
	for i, p := range s {
		granularities[i] = p.Granularity
	}
	return granularities
}

// BaselineGroups maps each configuration to its fault-free runs. Keys are
// kept sorted by matrix size, then granularity, and records keep their
// dataset order.
type BaselineGroups struct {
	keys   []common.ConfigKey
	groups map[common.ConfigKey][]common.Record
}

func GroupBaseline(dataset common.Dataset) BaselineGroups {
	result := BaselineGroups{
		groups: make(map[common.ConfigKey][]common.Record),
	}

	for _, record := range dataset.Baseline() {
		key := record.Key()
		if _, ok := result.groups[key]; !ok {
			result.keys = append(result.keys, key)
		}
		result.groups[key] = append(result.groups[key], record)
	}

	sort.Slice(result.keys, func(i, j int) bool {
		if result.keys[i].MatrixSize != result.keys[j].MatrixSize {
			return result.keys[i].MatrixSize < result.keys[j].MatrixSize
		}
		return result.keys[i].Granularity < result.keys[j].Granularity
	})

	return result
}

func (g BaselineGroups) Keys() []common.ConfigKey {
	return append([]common.ConfigKey(nil), g.keys...)
}

func (g BaselineGroups) Records(key common.ConfigKey) []common.Record {
	return append([]common.Record(nil), g.groups[key]...)
}

// MatrixSizes returns the distinct baseline matrix sizes in ascending order.
func (g BaselineGroups) MatrixSizes() []int {
	var sizes []int
	for _, key := range g.keys {
		if len(sizes) == 0 || sizes[len(sizes)-1] != key.MatrixSize {
			sizes = append(sizes, key.MatrixSize)
		}
	}
	return sizes
}

// Mean returns the mean total time of one configuration.
func (g BaselineGroups) Mean(key common.ConfigKey) (float64, bool) {
	records, ok := g.groups[key]
	if !ok {
		return 0, false
	}

	times := make([]float64, len(records))
	for i, record := range records {
		times[i] = record.TotalTime
	}
	return stat.Mean(times, nil), true
}

// Series averages the total time of every group of the given matrix size.
func (g BaselineGroups) Series(matrixSize int) Series {
	result := Series{}

	for _, key := range g.keys {
		if key.MatrixSize != matrixSize {
			continue
		}

		mean, _ := g.Mean(key)
		result = append(result, Point{
			Granularity: key.Granularity,
			Time:        mean,
		})
	}

	return result
}

// AggregateBaseline computes the aggregated series of one matrix size.
func AggregateBaseline(dataset common.Dataset, matrixSize int) Series {
	return GroupBaseline(dataset).Series(matrixSize)
}
