package trace

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eth-easl/brachistochrone/pkg/common"
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	log "github.com/sirupsen/logrus"
)

// rawRecord is a benchmark log row before coercion. Every field is kept as
// text so that a single malformed cell only invalidates its own row.
type rawRecord struct {
	MatrixSize      string `csv:"Matrix Size"`
	Granularity     string `csv:"Granularity"`
	KillProbability string `csv:"Kill Probability"`
	WorkersKilled   string `csv:"Workers Killed"`
	TotalTime       string `csv:"Total Time (s)"`
	MultTime        string `csv:"Multiplication Time (s)"`
}

var utf8BOM = []byte("\ufeff")

// MissingColumnsError is returned when a benchmark log lacks required
// columns entirely. No analysis can run on such a log.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("benchmark log is missing required columns: %s", strings.Join(e.Columns, ", "))
}

// Stats describes how many rows survived validation.
type Stats struct {
	Rows    int
	Valid   int
	Dropped int
}

func ParseBenchmarkFile(path string) (common.Dataset, Stats, error) {
	log.Debugf("Parsing benchmark log %s", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, errors.Wrap(err, "failed to open benchmark log")
	}
	defer f.Close()

	dataset, stats, err := ParseBenchmarkLog(f)
	if err != nil {
		return nil, stats, errors.Wrapf(err, "failed to parse %s", path)
	}

	return dataset, stats, nil
}

// ParseBenchmarkLog reads a benchmark log in CSV form and returns its valid
// records in input order. Malformed rows are dropped without error; only a
// missing header column or an unreadable stream fails the parse.
func ParseBenchmarkLog(r io.Reader) (common.Dataset, Stats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, Stats{}, errors.Wrap(err, "failed to read benchmark log")
	}
	// Spreadsheet exports prefix the header with a byte order mark.
	data = bytes.TrimPrefix(data, utf8BOM)

	if err := checkHeader(data); err != nil {
		return nil, Stats{}, err
	}

	var rows []rawRecord
	if err := gocsv.UnmarshalCSV(newCSVReader(data), &rows); err != nil {
		return nil, Stats{}, errors.Wrap(err, "failed to decode benchmark rows")
	}

	stats := Stats{Rows: len(rows)}
	dataset := make(common.Dataset, 0, len(rows))

	for i, row := range rows {
		record, ok := validate(row)
		if !ok {
			// Header is line 1.
			log.Tracef("Dropping malformed row on line %d: %+v", i+2, row)
			stats.Dropped++
			continue
		}
		dataset = append(dataset, record)
	}
	stats.Valid = len(dataset)

	log.Debugf("Parsed %d rows (%d valid, %d dropped)", stats.Rows, stats.Valid, stats.Dropped)

	return dataset, stats, nil
}

func newCSVReader(data []byte) *csv.Reader {
	reader := csv.NewReader(bytes.NewReader(data))
	// Truncated rows are validated and dropped individually.
	reader.FieldsPerRecord = -1
	return reader
}

func checkHeader(data []byte) error {
	header, err := newCSVReader(data).Read()
	if err == io.EOF {
		return &MissingColumnsError{Columns: common.RequiredColumns}
	}
	if err != nil {
		return errors.Wrap(err, "failed to read benchmark log header")
	}

	present := make(map[string]bool, len(header))
	for _, column := range header {
		present[column] = true
	}

	var missing []string
	for _, column := range common.RequiredColumns {
		if !present[column] {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return &MissingColumnsError{Columns: missing}
	}
	return nil
}
