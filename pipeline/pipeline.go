// Package pipeline runs load → compute → plot → save for one input file.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/gradviz/config"
	"github.com/katalvlaran/gradviz/field"
	"github.com/katalvlaran/gradviz/histogram"
	"github.com/katalvlaran/gradviz/render"
)

// Result describes a completed run.
type Result struct {
	Samples int
	Bounds  field.Bounds
	Output  string
	Bytes   int64
}

// Run executes the pipeline described by cfg.
//
// Stage 1 (Load): parse cfg.Input.
// Stage 2 (Compute): 2D histogram of positions over their min/max.
// Stage 3 (Plot): compose heatmap, scatter and quiver layers.
// Stage 4 (Save): encode to cfg.Output.
//
// ctx is checked between stages; a cancelled run returns ctx.Err() and
// writes nothing. A nil log discards output.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) (Result, error) {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}
	start := time.Now()

	// Stage 1 (Load)
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	f, err := field.Load(cfg.Input)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: load: %w", err)
	}
	b, err := f.Bounds()
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: load: %w", err)
	}
	log.Info("pipeline.loaded", "input", cfg.Input, "samples", f.Len(), "bounds", b.String())

	// Stage 2 (Compute)
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	var h *histogram.Histogram2D
	opts := cfg.RenderOptions()
	if opts.Layers.Heatmap {
		h, err = histogram.New(f.X, f.Y, histogram.WithBins(cfg.Bins))
		if err != nil {
			return Result{}, fmt.Errorf("pipeline: histogram: %w", err)
		}
		log.Debug("pipeline.binned", "bins", cfg.Bins, "max_count", h.Counts.Max())
	}

	// Stage 3 (Plot)
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	fig, err := render.NewPlot(f, h, opts)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: plot: %w", err)
	}

	// Stage 4 (Save)
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	n, err := fig.Save(cfg.Output)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: save: %w", err)
	}
	log.Info("pipeline.saved",
		"output", cfg.Output,
		"bytes", n,
		"dpi", opts.DPI,
		"elapsed", time.Since(start).String())

	return Result{Samples: f.Len(), Bounds: b, Output: cfg.Output, Bytes: n}, nil
}
