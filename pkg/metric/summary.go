package metric

import (
	"fmt"
	"io"
	"strconv"

	"github.com/eth-easl/brachistochrone/pkg/analysis"
	"github.com/olekukonko/tablewriter"
)

// PrintSummary renders the optimal granularity of every matrix size and the
// fault tolerance overhead samples as text tables.
func PrintSummary(w io.Writer, result *analysis.Result) {
	optima := tablewriter.NewWriter(w)
	optima.SetHeader([]string{"Matrix Size", "Optimal Granularity", "Time (s)", "Granularities"})
	for _, s := range result.Series {
		if !s.HasOptimum {
			optima.Append([]string{sizeLabel(s.MatrixSize), "-", "-", strconv.Itoa(len(s.Series))})
			continue
		}
		optima.Append([]string{
			sizeLabel(s.MatrixSize),
			strconv.Itoa(s.Optimum.Granularity),
			strconv.FormatFloat(s.Optimum.Time, 'f', 3, 64),
			strconv.Itoa(len(s.Series)),
		})
	}
	optima.Render()

	if !result.HasOverhead() {
		fmt.Fprintln(w, "Not enough data with killed workers to summarize the overhead")
		return
	}

	overhead := tablewriter.NewWriter(w)
	overhead.SetHeader([]string{"Matrix Size", "Granularity", "Overhead %", "Workers Killed"})
	for _, s := range result.Overhead {
		overhead.Append([]string{
			sizeLabel(s.MatrixSize),
			strconv.Itoa(s.Granularity),
			strconv.FormatFloat(s.OverheadPct, 'f', 2, 64),
			strconv.Itoa(s.WorkersKilled),
		})
	}
	overhead.Render()
}

func sizeLabel(size int) string {
	return fmt.Sprintf("%dx%d", size, size)
}
