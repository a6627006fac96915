package analysis

import (
	"testing"

	"github.com/eth-easl/brachistochrone/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverheadPct(t *testing.T) {
	dataset := common.Dataset{
		baseline(1000, 20, 10.0),
		faulty(1000, 20, 0.1, 2, 15.0),
	}

	samples := AnalyzeOverhead(dataset)

	assert.Equal(t, []OverheadSample{
		{MatrixSize: 1000, Granularity: 20, OverheadPct: 50.0, WorkersKilled: 2},
	}, samples)
}

func TestOverheadUsesFirstFaultRun(t *testing.T) {
	dataset := common.Dataset{
		faulty(500, 10, 0.2, 1, 12.0),
		baseline(500, 10, 10.0),
		faulty(500, 10, 0.2, 3, 30.0),
	}

	samples := AnalyzeOverhead(dataset)

	require.Len(t, samples, 1)
	assert.InDelta(t, 20.0, samples[0].OverheadPct, 1e-9)
	assert.Equal(t, 1, samples[0].WorkersKilled)
}

func TestOverheadSkipsIncompletePairs(t *testing.T) {
	tests := []struct {
		testName string
		dataset  common.Dataset
	}{
		{
			testName: "no_worker_killed",
			dataset: common.Dataset{
				baseline(500, 10, 10.0),
				faulty(500, 10, 0.2, 0, 11.0),
				// Only the first fault run counts, even when a later one killed workers.
				faulty(500, 10, 0.2, 2, 14.0),
			},
		},
		{
			testName: "baseline_missing",
			dataset: common.Dataset{
				baseline(500, 20, 10.0),
				faulty(500, 10, 0.2, 2, 14.0),
			},
		},
		{
			testName: "fault_missing",
			dataset: common.Dataset{
				baseline(500, 10, 10.0),
				baseline(800, 10, 20.0),
			},
		},
		{
			testName: "zero_baseline_time",
			dataset: common.Dataset{
				baseline(500, 10, 0.0),
				faulty(500, 10, 0.2, 2, 14.0),
			},
		},
		{
			testName: "empty",
			dataset:  common.Dataset{},
		},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			samples := AnalyzeOverhead(test.dataset)

			assert.NotNil(t, samples)
			assert.Empty(t, samples)
		})
	}
}

func TestOverheadOrdering(t *testing.T) {
	dataset := common.Dataset{
		faulty(800, 5, 0.1, 1, 4.0),
		baseline(800, 5, 2.0),
		faulty(200, 50, 0.1, 2, 3.0),
		baseline(200, 50, 1.5),
		faulty(200, 5, 0.1, 1, 1.0),
		baseline(200, 5, 2.0),
	}

	samples := AnalyzeOverhead(dataset)

	assert.Equal(t, []OverheadSample{
		{MatrixSize: 200, Granularity: 5, OverheadPct: -50.0, WorkersKilled: 1},
		{MatrixSize: 200, Granularity: 50, OverheadPct: 100.0, WorkersKilled: 2},
		{MatrixSize: 800, Granularity: 5, OverheadPct: 100.0, WorkersKilled: 1},
	}, samples)
}

func TestCompareFaults(t *testing.T) {
	dataset := common.Dataset{
		baseline(100, 10, 1.0),
		baseline(100, 10, 2.0),
		faulty(100, 10, 0.3, 2, 2.5),
		faulty(100, 10, 0.3, 4, 9.0),
		baseline(200, 20, 4.0),
	}

	comparisons := CompareFaults(dataset)

	assert.Equal(t, []FaultComparison{
		{
			MatrixSize: 100,
			Entries: []ComparisonEntry{
				{Granularity: 10, BaselineTime: 1.5, HasBaseline: true, FaultTime: 2.5, HasFault: true, WorkersKilled: 2},
				{Granularity: 20},
			},
		},
		{
			MatrixSize: 200,
			Entries: []ComparisonEntry{
				{Granularity: 10},
				{Granularity: 20, BaselineTime: 4.0, HasBaseline: true},
			},
		},
	}, comparisons)
}
