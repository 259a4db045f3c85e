package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
)

// loadCSV reads a headed CSV file column-wise. Short records are
// padded with absent cells; long records are an error from the csv
// reader unless FieldsPerRecord is relaxed, which we do to tolerate
// ragged exports.
func loadCSV(path string) ([]rawColumn, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.New("empty file")
	}
	if err != nil {
		return nil, err
	}

	cols := make([]rawColumn, len(header))
	for i, name := range header {
		cols[i] = rawColumn{name: name}
	}

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for i := range cols {
			if i < len(rec) {
				cols[i].values = append(cols[i].values, rec[i])
				cols[i].present = append(cols[i].present, true)
			} else {
				cols[i].values = append(cols[i].values, "")
				cols[i].present = append(cols[i].present, false)
			}
		}
	}
	return cols, nil
}
