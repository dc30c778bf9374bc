package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tiepath/grid"
	"github.com/katalvlaran/tiepath/internal/config"
	"github.com/katalvlaran/tiepath/internal/metrics"
	"github.com/katalvlaran/tiepath/tiepath"
)

// resolveConfig loads the config file and environment, then applies every
// flag the user set explicitly.
func resolveConfig(cmd *cobra.Command, f solveFlags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("frontier") {
		cfg.Frontier = f.frontier
	}
	if flags.Changed("storage") {
		cfg.Storage = f.storage
	}
	if flags.Changed("no-reverse-start") {
		cfg.ReverseStart = !f.noReverseStart
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if flags.Changed("metrics-out") {
		cfg.MetricsOut = f.metricsOut
	}
	return cfg, cfg.Validate()
}

func runSolve(cmd *cobra.Command, paths []string, f solveFlags) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	lvl, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	rec := metrics.NewRecorder()
	opts := append(cfg.Options(), tiepath.WithLogger(logger))

	out := cmd.OutOrStdout()
	for _, path := range paths {
		if err := solveFile(out, logger, rec, path, len(paths) > 1, f.overlay, opts); err != nil {
			return err
		}
	}

	if cfg.MetricsOut != "" {
		if err := rec.WriteTextfile(cfg.MetricsOut); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("metrics written", slog.String("path", cfg.MetricsOut))
	}
	return nil
}

// solveFile prints "<cost> <tiles>" (prefixed with the path when several
// files are given). An unreachable goal prints "no path" and is not an error.
func solveFile(out io.Writer, logger *slog.Logger, rec *metrics.Recorder, path string, prefix, overlay bool, opts []tiepath.Option) error {
	g, err := loadGrid(path)
	if err != nil {
		rec.Observe(tiepath.Result{}, err, 0)
		return err
	}
	lead := ""
	if prefix {
		lead = path + ": "
	}

	began := time.Now()
	s, err := tiepath.Run(g, opts...)
	if err != nil {
		rec.Observe(tiepath.Result{}, err, time.Since(began))
		if errors.Is(err, tiepath.ErrNoPath) {
			fmt.Fprintf(out, "%sno path\n", lead)
			return nil
		}
		return fmt.Errorf("%s: %w", path, err)
	}
	tiles, err := tiepath.OptimalTiles(s)
	elapsed := time.Since(began)
	res := tiepath.Result{MinCost: s.MinCost, Tiles: len(tiles), Stats: s.Stats}
	rec.Observe(res, err, elapsed)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("solved",
		slog.String("file", path),
		slog.Int64("min_cost", res.MinCost),
		slog.Int("tiles", res.Tiles),
		slog.Duration("elapsed", elapsed))

	fmt.Fprintf(out, "%s%d %d\n", lead, res.MinCost, res.Tiles)
	if overlay {
		fmt.Fprint(out, tiepath.Overlay(g, tiles))
	}
	return nil
}

func loadGrid(path string) (*grid.Grid, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	g, err := grid.Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
