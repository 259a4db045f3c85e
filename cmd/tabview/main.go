package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tabview/internal/config"
	"tabview/internal/dataset"
	"tabview/internal/ui"
	"tabview/internal/util/logx"
	"tabview/internal/version"
)

func main() {
	logx.SetLevelFromEnv()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	if cfg.ShowVersion {
		fmt.Println("tabview", version.String())
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logx.Infof("starting tabview %s: %s", version.String(), cfg.String())
	if err := ui.Run(ctx, cfg); err != nil {
		fmt.Fprintln(os.Stderr, loadMessage(cfg.FilePath, err))
		logx.Errorf("tabview exited with error: %v", err)
		os.Exit(1)
	}
}

// loadMessage turns load errors into operator-facing text; anything
// else passes through.
func loadMessage(path string, err error) string {
	switch {
	case errors.Is(err, dataset.ErrFileNotFound):
		return fmt.Sprintf("%s: no such file", path)
	case errors.Is(err, dataset.ErrPermissionDenied):
		return fmt.Sprintf("%s: permission denied", path)
	case errors.Is(err, dataset.ErrNotAFile):
		return fmt.Sprintf("%s: not a regular file", path)
	case errors.Is(err, dataset.ErrUnknownFileType):
		return fmt.Sprintf("%s: unsupported file type (want .csv, .parquet, or .arrow)", path)
	default:
		return err.Error()
	}
}
