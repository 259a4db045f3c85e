package dataset

import (
	"os"

	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// loadArrow reads an Arrow IPC (Feather v2) file. Records are
// concatenated across batches; nulls become absent cells.
func loadArrow(path string) ([]rawColumn, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := ipc.NewFileReader(f, ipc.WithAllocator(memory.DefaultAllocator))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	schema := r.Schema()
	cols := make([]rawColumn, len(schema.Fields()))
	for i, field := range schema.Fields() {
		cols[i] = rawColumn{name: field.Name}
	}

	for i := 0; i < r.NumRecords(); i++ {
		rec, err := r.Record(i)
		if err != nil {
			return nil, err
		}
		for c := 0; c < int(rec.NumCols()); c++ {
			arr := rec.Column(c)
			for row := 0; row < arr.Len(); row++ {
				if arr.IsNull(row) {
					cols[c].values = append(cols[c].values, "")
					cols[c].present = append(cols[c].present, false)
				} else {
					cols[c].values = append(cols[c].values, arr.ValueStr(row))
					cols[c].present = append(cols[c].present, true)
				}
			}
		}
	}
	return cols, nil
}
