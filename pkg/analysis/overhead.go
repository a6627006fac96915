package analysis

import (
	"github.com/eth-easl/brachistochrone/pkg/common"

	log "github.com/sirupsen/logrus"
)

// OverheadSample is the relative cost of worker failures at one configuration.
type OverheadSample struct {
	MatrixSize    int
	Granularity   int
	OverheadPct   float64
	WorkersKilled int
}

// AnalyzeOverhead compares the mean baseline time of every configuration
// with its first fault-injected run. Configurations where no worker was
// actually killed, or where either side is missing, produce no sample.
//
// Repeated fault runs are not averaged: only the first one counts. Whether
// averaging them would be more appropriate is still open.
func AnalyzeOverhead(dataset common.Dataset) []OverheadSample {
	groups := GroupBaseline(dataset)
	faults := firstMatches(dataset.FaultInjected())
	result := []OverheadSample{}

	for _, size := range dataset.MatrixSizes() {
		for _, granularity := range dataset.Granularities() {
			key := common.ConfigKey{MatrixSize: size, Granularity: granularity}

			baselineTime, okBaseline := groups.Mean(key)
			fault, okFault := faults[key]
			if !okBaseline || !okFault || fault.WorkersKilled <= 0 {
				continue
			}

			if baselineTime == 0 {
				log.Debugf("Skipping overhead of %+v: baseline time is zero", key)
				continue
			}

			result = append(result, OverheadSample{
				MatrixSize:    size,
				Granularity:   granularity,
				OverheadPct:   OverheadPct(baselineTime, fault.TotalTime),
				WorkersKilled: fault.WorkersKilled,
			})
		}
	}

	return result
}

// OverheadPct returns the increase of faultTime over baselineTime in percent.
func OverheadPct(baselineTime, faultTime float64) float64 {
	return (faultTime - baselineTime) / baselineTime * 100
}

// ComparisonEntry puts the normal and the faulty run of one granularity side
// by side. Either side may be absent.
type ComparisonEntry struct {
	Granularity int

	BaselineTime float64
	HasBaseline  bool

	FaultTime     float64
	HasFault      bool
	WorkersKilled int
}

// FaultComparison lists the entries of one matrix size in ascending
// granularity order.
type FaultComparison struct {
	MatrixSize int
	Entries    []ComparisonEntry
}

// CompareFaults builds, for every matrix size, one entry per granularity
// observed anywhere in the dataset. Baseline times are group means, fault
// times come from the first fault-injected run.
func CompareFaults(dataset common.Dataset) []FaultComparison {
	groups := GroupBaseline(dataset)
	faults := firstMatches(dataset.FaultInjected())
	granularities := dataset.Granularities()
	result := []FaultComparison{}

	for _, size := range dataset.MatrixSizes() {
		comparison := FaultComparison{MatrixSize: size}

		for _, granularity := range granularities {
			key := common.ConfigKey{MatrixSize: size, Granularity: granularity}
			entry := ComparisonEntry{Granularity: granularity}

			entry.BaselineTime, entry.HasBaseline = groups.Mean(key)
			if fault, ok := faults[key]; ok {
				entry.FaultTime = fault.TotalTime
				entry.HasFault = true
				entry.WorkersKilled = fault.WorkersKilled
			}

			comparison.Entries = append(comparison.Entries, entry)
		}

		result = append(result, comparison)
	}

	return result
}
