package dataset

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/sync/errgroup"

	"tabview/internal/util/logx"
)

// rawColumn is loader output before normalization: values plus a
// per-cell presence flag (a cell can be present but empty, which is
// still treated as absent for display and numeric classification).
type rawColumn struct {
	name    string
	values  []string
	present []bool
}

// Load reads the file at path into a Dataset. The format is chosen by
// extension. Column normalization (placeholder substitution, width
// measurement, numeric classification) runs one goroutine per column.
func Load(ctx context.Context, path string) (*Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, ErrFileNotFound
		case errors.Is(err, fs.ErrPermission):
			return nil, ErrPermissionDenied
		default:
			return nil, err
		}
	}
	if !info.Mode().IsRegular() {
		return nil, ErrNotAFile
	}

	var (
		raw    []rawColumn
		format string
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		format = "csv"
		raw, err = loadCSV(path)
	case ".parquet", ".pq":
		format = "parquet"
		raw, err = loadParquet(path)
	case ".arrow", ".ipc", ".feather":
		format = "arrow"
		raw, err = loadArrow(path)
	default:
		return nil, ErrUnknownFileType
	}
	if err != nil {
		return nil, &LoadError{Format: format, Err: err}
	}

	rows := 0
	if len(raw) > 0 {
		rows = len(raw[0].values)
	}

	cols := make([]*Column, len(raw))
	g, _ := errgroup.WithContext(ctx)
	for i := range raw {
		i := i
		g.Go(func() error {
			cols[i] = buildColumn(raw[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logx.Infof("loaded %s: format=%s rows=%d cols=%d", path, format, rows, len(cols))
	return &Dataset{Path: path, Columns: cols, rows: rows}, nil
}

// NewColumn normalizes a plain value slice into a Column. Empty
// strings are treated as absent.
func NewColumn(name string, values []string) *Column {
	present := make([]bool, len(values))
	for i, v := range values {
		present[i] = v != ""
	}
	return buildColumn(rawColumn{name: name, values: values, present: present})
}

// buildColumn normalizes one raw column: placeholder substitution,
// max display width, and numeric classification. A column is numeric
// when every present value parses as a float and at least one value
// is present.
func buildColumn(rc rawColumn) *Column {
	c := &Column{
		Name:     rc.name,
		Data:     make([]string, len(rc.values)),
		MaxWidth: runewidth.StringWidth(rc.name),
	}
	numeric := true
	seen := false
	for i, v := range rc.values {
		present := rc.present[i] && v != ""
		if present {
			seen = true
			if numeric {
				if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
					numeric = false
				}
			}
		}
		cell := sanitizeCell(v, present)
		c.Data[i] = cell
		if w := runewidth.StringWidth(cell); w > c.MaxWidth {
			c.MaxWidth = w
		}
	}
	c.Numeric = numeric && seen
	return c
}
