package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type Config struct {
	FilePath       string
	MaxColumnWidth int
	ColumnMargin   int
	Theme          Theme
	ShowIndex      bool
	ShowVersion    bool
}

func Load() (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("tabview", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: tabview [flags] <file.csv|file.parquet|file.arrow>")
		fs.PrintDefaults()
	}

	fs.IntVar(&cfg.MaxColumnWidth, "max-col-width", getenvDefaultInt("TABVIEW_MAX_COL_WIDTH", 30), "cap on rendered column width (Normal columns)")
	fs.IntVar(&cfg.ColumnMargin, "col-margin", getenvDefaultInt("TABVIEW_COL_MARGIN", 1), "extra cells added to every column's content width")
	theme := getenvDefault("TABVIEW_THEME", string(ThemeDark))
	fs.StringVar(&theme, "theme", theme, "theme: dark|light")
	fs.BoolVar(&cfg.ShowIndex, "index", false, "show the 1-based row number column at startup")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}
	cfg.Theme = Theme(theme)

	if cfg.ShowVersion {
		return cfg, nil
	}

	cfg.FilePath = fs.Arg(0)
	if cfg.FilePath == "" {
		fs.Usage()
		return nil, errors.New("missing input file")
	}
	if fs.NArg() > 1 {
		return nil, errors.New("expected exactly one input file")
	}

	if cfg.MaxColumnWidth < 4 {
		cfg.MaxColumnWidth = 4
	}
	if cfg.ColumnMargin < 0 {
		cfg.ColumnMargin = 0
	}

	return cfg, nil
}

func getenvDefault(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvDefaultInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func (c *Config) String() string {
	return fmt.Sprintf("file=%s max-col-width=%d col-margin=%d theme=%s index=%v",
		c.FilePath, c.MaxColumnWidth, c.ColumnMargin, c.Theme, c.ShowIndex)
}
