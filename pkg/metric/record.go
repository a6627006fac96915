package metric

type SeriesRecord struct {
	MatrixSize    int     `csv:"matrix_size"`
	Granularity   int     `csv:"granularity"`
	MeanTotalTime float64 `csv:"mean_total_time"`
}

type OptimumRecord struct {
	MatrixSize         int     `csv:"matrix_size"`
	OptimalGranularity int     `csv:"optimal_granularity"`
	OptimalTime        float64 `csv:"optimal_time"`
}

type SurfaceRecord struct {
	Granularity int     `csv:"granularity"`
	MatrixSize  int     `csv:"matrix_size"`
	TotalTime   float64 `csv:"total_time"`
	Exact       bool    `csv:"exact"`
}

type ValleyRecord struct {
	MatrixSize  int     `csv:"matrix_size"`
	Granularity int     `csv:"granularity"`
	TotalTime   float64 `csv:"total_time"`
}

type OverheadRecord struct {
	MatrixSize    int     `csv:"matrix_size"`
	Granularity   int     `csv:"granularity"`
	OverheadPct   float64 `csv:"overhead_pct"`
	WorkersKilled int     `csv:"workers_killed"`
}

// FaultComparisonRecord leaves a time cell empty when that run is absent.
type FaultComparisonRecord struct {
	MatrixSize    int    `csv:"matrix_size"`
	Granularity   int    `csv:"granularity"`
	BaselineTime  string `csv:"baseline_time"`
	FaultTime     string `csv:"fault_time"`
	WorkersKilled int    `csv:"workers_killed"`
}
