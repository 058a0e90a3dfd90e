package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	errs "github.com/matzehuels/csvplot/pkg/errors"
)

// ReadCSV decodes a header row followed by numeric data rows from r.
//
// Row numbers in errors are 1-based and count data rows only (the header is
// not row 1). ReadCSV stops at the first failing row and does not close r.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errs.New(errs.ErrCodeSchema, "missing header row")
	}
	if err != nil {
		return nil, readError(err, "header")
	}

	t, err := newHeader(header)
	if err != nil {
		return nil, err
	}

	for n := 1; ; n++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, readError(err, fmt.Sprintf("row %d", n))
		}
		if len(record) != len(t.names) {
			line, _ := cr.FieldPos(0)
			return nil, errs.New(errs.ErrCodeSchema, "row %d (line %d): expected %d fields, got %d",
				n, line, len(t.names), len(record))
		}

		row := make([]float64, len(record))
		for col, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errs.Wrap(errs.ErrCodeParse, err, "row %d, column %q: %q is not a number",
					n, t.names[col], field)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errs.New(errs.ErrCodeParse, "row %d, column %q: %q is not a finite number",
					n, t.names[col], field)
			}
			row[col] = v
		}
		t.rows = append(t.rows, row)
	}

	return t, nil
}

// readError classifies a csv.Reader failure: syntax problems are parse
// errors, anything else came from the underlying reader.
func readError(err error, where string) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return errs.Wrap(errs.ErrCodeParse, err, "malformed csv at %s", where)
	}
	return errs.Wrap(errs.ErrCodeIO, err, "read %s", where)
}

// Load reads the CSV file at path into a Table.
//
// The file is opened, fully consumed and closed before Load returns, so no
// handle outlives ingestion. Open and read failures are reported as
// IO_ERROR; content problems carry the codes described on [ReadCSV].
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
