package analysis

import (
	"github.com/eth-easl/brachistochrone/pkg/common"
)

// ValleyPoint is the fastest single baseline run of a matrix size.
type ValleyPoint struct {
	MatrixSize  int
	Granularity int
	Time        float64
}

// FindValley returns the fastest raw baseline run of every matrix size, in
// ascending size order. The earliest run wins on ties. Unlike FindMinimum
// no averaging happens and no minimum number of points is required.
func FindValley(dataset common.Dataset) []ValleyPoint {
	best := make(map[int]common.Record)

	for _, record := range dataset.Baseline() {
		current, ok := best[record.MatrixSize]
		if !ok || record.TotalTime < current.TotalTime {
			best[record.MatrixSize] = record
		}
	}

	result := []ValleyPoint{}
	for _, size := range dataset.Baseline().MatrixSizes() {
		record := best[size]
		result = append(result, ValleyPoint{
			MatrixSize:  size,
			Granularity: record.Granularity,
			Time:        record.TotalTime,
		})
	}

	return result
}
