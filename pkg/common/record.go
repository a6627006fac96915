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

// Record is a single validated benchmark run.
type Record struct {
	MatrixSize      int
	Granularity     int
	KillProbability float64
	WorkersKilled   int

	// Measurements in seconds
	TotalTime float64
	MultTime  float64
}

// ConfigKey identifies a benchmark configuration.
type ConfigKey struct {
	MatrixSize  int
	Granularity int
}

func (r Record) Key() ConfigKey {
	return ConfigKey{MatrixSize: r.MatrixSize, Granularity: r.Granularity}
}

// IsBaseline reports whether the run was executed without fault injection.
func (r Record) IsBaseline() bool {
	return r.KillProbability == NoFaultProbability
}

func (r Record) IsFaultInjected() bool {
	return r.KillProbability > NoFaultProbability
}

// Dataset is the ordered sequence of valid records of one benchmark log.
// It must not be modified once ingested.
type Dataset []Record

// Baseline returns the records without fault injection, in dataset order.
func (d Dataset) Baseline() Dataset {
	return d.filter(Record.IsBaseline)
}

// FaultInjected returns the records with a positive kill probability.
func (d Dataset) FaultInjected() Dataset {
	return d.filter(Record.IsFaultInjected)
}

func (d Dataset) filter(keep func(Record) bool) Dataset {
	result := Dataset{}
	for _, record := range d {
		if keep(record) {
			result = append(result, record)
		}
	}
	return result
}

// MatrixSizes returns the distinct matrix sizes in ascending order.
func (d Dataset) MatrixSizes() []int {
	sizes := make([]int, 0, len(d))
	for _, record := range d {
		sizes = append(sizes, record.MatrixSize)
	}
	return SortedUnique(sizes)
}

// Granularities returns the distinct granularities in ascending order.
func (d Dataset) Granularities() []int {
	granularities := make([]int, 0, len(d))
	for _, record := range d {
		granularities = append(granularities, record.Granularity)
	}
	return SortedUnique(granularities)
}
