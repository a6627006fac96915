package metric

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/eth-easl/brachistochrone/pkg/analysis"
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	log "github.com/sirupsen/logrus"
)

const (
	SeriesFile          = "series.csv"
	OptimaFile          = "optima.csv"
	SurfaceFile         = "surface.csv"
	ValleyFile          = "valley.csv"
	OverheadFile        = "overhead.csv"
	FaultComparisonFile = "fault_comparison.csv"
)

// Exporter writes analysis results as CSV files for the plotting scripts.
type Exporter struct {
	outputDir string
}

func NewExporter(outputDir string) *Exporter {
	return &Exporter{outputDir: outputDir}
}

func (ep *Exporter) OutputDir() string {
	return ep.outputDir
}

// Export writes one file per result table. Existing files are overwritten.
func (ep *Exporter) Export(result *analysis.Result) error {
	if err := os.MkdirAll(ep.outputDir, os.ModePerm); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}

	tables := []struct {
		name string
		rows interface{}
	}{
		{SeriesFile, SeriesRecords(result)},
		{OptimaFile, OptimumRecords(result)},
		{SurfaceFile, SurfaceRecords(result)},
		{ValleyFile, ValleyRecords(result)},
		{OverheadFile, OverheadRecords(result)},
		{FaultComparisonFile, FaultComparisonRecords(result)},
	}

	for _, table := range tables {
		if err := ep.save(table.name, table.rows); err != nil {
			return err
		}
	}

	log.Infof("Exported analysis results to %s", ep.outputDir)
	return nil
}

func (ep *Exporter) save(name string, rows interface{}) (err error) {
	path := filepath.Join(ep.outputDir, name)
	log.Debugf("Writing %s", path)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrapf(closeErr, "failed to close %s", path)
		}
	}()

	if err := gocsv.MarshalFile(rows, f); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

func SeriesRecords(result *analysis.Result) []SeriesRecord {
	records := []SeriesRecord{}
	for _, s := range result.Series {
		for _, p := range s.Series {
			records = append(records, SeriesRecord{
				MatrixSize:    s.MatrixSize,
				Granularity:   p.Granularity,
				MeanTotalTime: p.Time,
			})
		}
	}
	return records
}

func OptimumRecords(result *analysis.Result) []OptimumRecord {
	records := []OptimumRecord{}
	for _, s := range result.Optima() {
		records = append(records, OptimumRecord{
			MatrixSize:         s.MatrixSize,
			OptimalGranularity: s.Optimum.Granularity,
			OptimalTime:        s.Optimum.Time,
		})
	}
	return records
}

func SurfaceRecords(result *analysis.Result) []SurfaceRecord {
	records := []SurfaceRecord{}
	if result.Surface == nil {
		return records
	}
	for _, cell := range result.Surface.Cells() {
		records = append(records, SurfaceRecord{
			Granularity: cell.Granularity,
			MatrixSize:  cell.MatrixSize,
			TotalTime:   cell.Time,
			Exact:       cell.Exact,
		})
	}
	return records
}

func ValleyRecords(result *analysis.Result) []ValleyRecord {
	records := []ValleyRecord{}
	for _, p := range result.Valley {
		records = append(records, ValleyRecord{
			MatrixSize:  p.MatrixSize,
			Granularity: p.Granularity,
			TotalTime:   p.Time,
		})
	}
	return records
}

func OverheadRecords(result *analysis.Result) []OverheadRecord {
	records := []OverheadRecord{}
	for _, s := range result.Overhead {
		records = append(records, OverheadRecord{
			MatrixSize:    s.MatrixSize,
			Granularity:   s.Granularity,
			OverheadPct:   s.OverheadPct,
			WorkersKilled: s.WorkersKilled,
		})
	}
	return records
}

func FaultComparisonRecords(result *analysis.Result) []FaultComparisonRecord {
	records := []FaultComparisonRecord{}
	for _, comparison := range result.Comparisons {
		for _, entry := range comparison.Entries {
			record := FaultComparisonRecord{
				MatrixSize:    comparison.MatrixSize,
				Granularity:   entry.Granularity,
				WorkersKilled: entry.WorkersKilled,
			}
			if entry.HasBaseline {
				record.BaselineTime = formatSeconds(entry.BaselineTime)
			}
			if entry.HasFault {
				record.FaultTime = formatSeconds(entry.FaultTime)
			}
			records = append(records, record)
		}
	}
	return records
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
