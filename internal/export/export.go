package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"

	"tabview/internal/dataset"
)

// ToCSV writes the given rows of ds (in order) to path, header
// first. The placeholder glyph for absent values is written as an
// empty field so the output round-trips.
func ToCSV(path string, ds *dataset.Dataset, rows []int) error {
	if len(rows) == 0 {
		return errors.New("no rows")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write(ds.Headers()); err != nil {
		return err
	}
	rec := make([]string, ds.ColumnCount())
	for _, r := range rows {
		for i := range ds.Columns {
			rec[i] = exportValue(ds.Cell(r, i))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// ToNDJSON writes one JSON object per row, keyed by column name.
// Absent values become null.
func ToNDJSON(path string, ds *dataset.Dataset, rows []int) error {
	if len(rows) == 0 {
		return errors.New("no rows")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	defer bw.Flush()
	headers := ds.Headers()
	for _, r := range rows {
		obj := make(map[string]any, len(headers))
		for i, h := range headers {
			v := ds.Cell(r, i)
			if v == dataset.Placeholder {
				obj[h] = nil
			} else {
				obj[h] = v
			}
		}
		b, _ := json.Marshal(obj)
		if _, err := bw.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

func exportValue(v string) string {
	if v == dataset.Placeholder {
		return ""
	}
	return v
}
