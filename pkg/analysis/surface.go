package analysis

import (
	"github.com/eth-easl/brachistochrone/pkg/common"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/interp"

	log "github.com/sirupsen/logrus"
)

// Surface is the dense granularity x matrix size grid of baseline total
// times. Rows follow Granularities and columns follow Sizes, both ascending.
type Surface struct {
	Sizes         []int
	Granularities []int

	Times [][]float64
	// Exact marks cells taken verbatim from a measurement.
	Exact [][]bool
}

// SurfaceCell is one grid cell in flattened (row-major) order.
type SurfaceCell struct {
	Granularity int
	MatrixSize  int
	Time        float64
	Exact       bool
}

// BuildSurface lays every baseline measurement on the grid spanned by all
// observed baseline sizes and granularities. A cell takes the total time of
// the first matching record; the gaps are filled afterwards.
func BuildSurface(dataset common.Dataset) (*Surface, error) {
	baseline := dataset.Baseline()
	exact := firstMatches(baseline)

	surface := &Surface{
		Sizes:         baseline.MatrixSizes(),
		Granularities: baseline.Granularities(),
	}

	surface.Times = make([][]float64, len(surface.Granularities))
	surface.Exact = make([][]bool, len(surface.Granularities))

	for row, granularity := range surface.Granularities {
		surface.Times[row] = make([]float64, len(surface.Sizes))
		surface.Exact[row] = make([]bool, len(surface.Sizes))

		for col, size := range surface.Sizes {
			key := common.ConfigKey{MatrixSize: size, Granularity: granularity}
			if record, ok := exact[key]; ok {
				surface.Times[row][col] = record.TotalTime
				surface.Exact[row][col] = true
			}
		}
	}

	if err := surface.fillGaps(); err != nil {
		return nil, err
	}

	return surface, nil
}

// fillGaps interpolates missing cells linearly over their position in the
// flattened grid, clamping to the nearest known value at either end.
//
// NOTE: neighbours in the flattened order are not neighbours on the grid: the
// last size of one granularity row is interpolated against the first size of
// the next row. Plots produced so far rely on this exact behaviour, so do not
// switch to per-axis interpolation without re-validating them.
func (s *Surface) fillGaps() error {
	var xs, ys []float64
	var missing []int

	for k := 0; k < s.cellCount(); k++ {
		row, col := s.position(k)
		if s.Exact[row][col] {
			xs = append(xs, float64(k))
			ys = append(ys, s.Times[row][col])
		} else {
			missing = append(missing, k)
		}
	}

	if len(missing) == 0 {
		return nil
	}
	log.Debugf("Interpolating %d of %d surface cells", len(missing), s.cellCount())

	predict := func(float64) float64 { return ys[0] }
	if len(xs) > 1 {
		var pl interp.PiecewiseLinear
		if err := pl.Fit(xs, ys); err != nil {
			return errors.Wrap(err, "failed to fit surface interpolation")
		}
		predict = pl.Predict
	}

	for _, k := range missing {
		row, col := s.position(k)
		s.Times[row][col] = predict(float64(k))
	}

	return nil
}

func (s *Surface) cellCount() int {
	return len(s.Sizes) * len(s.Granularities)
}

func (s *Surface) position(k int) (row, col int) {
	return k / len(s.Sizes), k % len(s.Sizes)
}

// At returns the cell of the given configuration.
func (s *Surface) At(matrixSize, granularity int) (SurfaceCell, bool) {
	for row, g := range s.Granularities {
		if g != granularity {
			continue
		}
		for col, size := range s.Sizes {
			if size == matrixSize {
				return SurfaceCell{
					Granularity: g,
					MatrixSize:  size,
					Time:        s.Times[row][col],
					Exact:       s.Exact[row][col],
				}, true
			}
		}
	}
	return SurfaceCell{}, false
}

// Cells returns every cell in flattened order.
func (s *Surface) Cells() []SurfaceCell {
	cells := make([]SurfaceCell, 0, s.cellCount())
	for k := 0; k < s.cellCount(); k++ {
		row, col := s.position(k)
		cells = append(cells, SurfaceCell{
			Granularity: s.Granularities[row],
			MatrixSize:  s.Sizes[col],
			Time:        s.Times[row][col],
			Exact:       s.Exact[row][col],
		})
	}
	return cells
}
