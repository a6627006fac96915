/*
 * MIT License
 *
 * Copyright (c) 2023 EASL and the vHive community
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package common

// Column headers written by the matrix multiplication master.
const (
	ColumnMatrixSize      = "Matrix Size"
	ColumnGranularity     = "Granularity"
	ColumnKillProbability = "Kill Probability"
	ColumnWorkersKilled   = "Workers Killed"
	ColumnTotalTime       = "Total Time (s)"
	ColumnMultTime        = "Multiplication Time (s)"
)

// RequiredColumns lists every column a benchmark log must carry.
var RequiredColumns = []string{
	ColumnMatrixSize,
	ColumnGranularity,
	ColumnKillProbability,
	ColumnWorkersKilled,
	ColumnTotalTime,
	ColumnMultTime,
}

const (
	// MinSeriesPoints is the number of distinct granularities needed to
	// characterise the U-shaped time curve of a matrix size.
	MinSeriesPoints = 3

	// NoFaultProbability marks a run without fault injection.
	NoFaultProbability = 0.0
)
