package analysis

import (
	"github.com/eth-easl/brachistochrone/pkg/common"
	"pgregory.net/rapid"
)

func baseline(size, granularity int, totalTime float64) common.Record {
	return common.Record{
		MatrixSize:  size,
		Granularity: granularity,
		TotalTime:   totalTime,
		MultTime:    totalTime / 2,
	}
}

func faulty(size, granularity int, killProbability float64, killed int, totalTime float64) common.Record {
	return common.Record{
		MatrixSize:      size,
		Granularity:     granularity,
		KillProbability: killProbability,
		WorkersKilled:   killed,
		TotalTime:       totalTime,
		MultTime:        totalTime / 2,
	}
}

// datasetGenerator draws small datasets over a narrow configuration space so
// that duplicates, gaps and fault runs all show up regularly.
func datasetGenerator() *rapid.Generator[common.Dataset] {
	record := rapid.Custom(func(t *rapid.T) common.Record {
		r := common.Record{
			MatrixSize:  rapid.SampledFrom([]int{100, 200, 400, 800}).Draw(t, "size"),
			Granularity: rapid.SampledFrom([]int{1, 5, 10, 25, 50}).Draw(t, "granularity"),
			TotalTime:   rapid.Float64Range(0.001, 100).Draw(t, "total"),
		}
		if rapid.Bool().Draw(t, "fault") {
			r.KillProbability = rapid.Float64Range(0.05, 1).Draw(t, "probability")
			r.WorkersKilled = rapid.IntRange(0, 4).Draw(t, "killed")
		}
		r.MultTime = r.TotalTime * rapid.Float64Range(0, 1).Draw(t, "share")
		return r
	})

	return rapid.Custom(func(t *rapid.T) common.Dataset {
		return common.Dataset(rapid.SliceOfN(record, 0, 40).Draw(t, "records"))
	})
}
