// Package sink implements the reference output format: CSV with a
// header, zero-origin document ids, and the distance as a decimal
// fraction. This is the downstream contract's reference sink, not
// part of the core; the core only ever hands back (i, j, dist)
// triples.
package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/daac-tools/find-simdoc/internal/join"
)

var header = []string{"i", "j", "dist"}

// WriteResults emits results as CSV i,j,dist with a header, in
// whatever order results is already in (callers wanting the sorted
// contract should pass join.Join's own return value straight through).
func WriteResults(w io.Writer, results []join.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range results {
		record := []string{
			strconv.Itoa(r.I),
			strconv.Itoa(r.J),
			strconv.FormatFloat(r.Dist, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row %v: %w", record, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadResults parses the CSV format WriteResults produces, used by the
// dump command to re-hydrate a prior join's output.
func ReadResults(r io.Reader) ([]join.Result, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	start := 0
	if len(records[0]) >= 3 && records[0][0] == header[0] {
		start = 1
	}

	out := make([]join.Result, 0, len(records)-start)
	for _, rec := range records[start:] {
		if len(rec) < 3 {
			return nil, fmt.Errorf("malformed pairs row, expected 3 fields, got %d: %v", len(rec), rec)
		}
		i, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("parsing i: %w", err)
		}
		j, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("parsing j: %w", err)
		}
		d, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing dist: %w", err)
		}
		out = append(out, join.Result{I: i, J: j, Dist: d})
	}
	return out, nil
}
