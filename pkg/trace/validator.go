package trace

import (
	"math"
	"strconv"
	"strings"

	"github.com/eth-easl/brachistochrone/pkg/common"
)

// validate coerces a raw row into a Record. The second return value is false
// when any field is absent, non-numeric or out of range; such rows are never
// partially used.
func validate(row rawRecord) (common.Record, bool) {
	matrixSize, okSize := parseInt(row.MatrixSize)
	granularity, okGranularity := parseInt(row.Granularity)
	killProbability, okProbability := parseFloat(row.KillProbability)
	workersKilled, okKilled := parseInt(row.WorkersKilled)
	totalTime, okTotal := parseFloat(row.TotalTime)
	multTime, okMult := parseFloat(row.MultTime)

	if !(okSize && okGranularity && okProbability && okKilled && okTotal && okMult) {
		return common.Record{}, false
	}

	record := common.Record{
		MatrixSize:      matrixSize,
		Granularity:     granularity,
		KillProbability: killProbability,
		WorkersKilled:   workersKilled,
		TotalTime:       totalTime,
		MultTime:        multTime,
	}

	return record, common.CheckRanges(record)
}

// parseFloat accepts finite decimal numbers only. NaN and infinities count
// as absent.
func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseInt accepts plain integers as well as integral decimals such as "4.0",
// which spreadsheet round trips tend to produce. Both forms are limited to
// the int32 range.
func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int(v), true
	}

	f, ok := parseFloat(s)
	if !ok || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
