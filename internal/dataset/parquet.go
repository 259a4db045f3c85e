package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hangxie/parquet-go/v2/common"
	"github.com/hangxie/parquet-go/v2/reader"
	"github.com/hangxie/parquet-go/v2/source/local"
)

// loadParquet reads every leaf column of a Parquet file as strings.
// Repeated and deeply nested fields are flattened to their dotted
// path name; null values are absent cells.
func loadParquet(path string) ([]rawColumn, error) {
	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, err
	}
	defer fr.Close()

	pr, err := reader.NewParquetColumnReader(fr, 4)
	if err != nil {
		return nil, err
	}
	defer pr.ReadStop()

	numRows := pr.GetNumRows()
	paths := pr.SchemaHandler.ValueColumns

	cols := make([]rawColumn, 0, len(paths))
	for _, p := range paths {
		values, _, _, err := pr.ReadColumnByPath(p, numRows)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", p, err)
		}

		// drop the root element from the dotted path
		parts := strings.Split(p, common.PAR_GO_PATH_DELIMITER)
		name := parts[len(parts)-1]

		rc := rawColumn{
			name:    name,
			values:  make([]string, numRows),
			present: make([]bool, numRows),
		}
		for i := int64(0); i < numRows; i++ {
			if i >= int64(len(values)) || values[i] == nil {
				continue
			}
			rc.values[i] = formatParquetValue(values[i])
			rc.present[i] = true
		}
		cols = append(cols, rc)
	}
	return cols, nil
}

func formatParquetValue(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return fmt.Sprintf("%v", x)
	}
}
