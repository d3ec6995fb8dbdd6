// Package config holds the run configuration for gradviz: input and output
// paths, binning and figure settings. Values come from Default, are
// overridden by an optional YAML file and finally by explicit CLI flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gradviz/histogram"
	"github.com/katalvlaran/gradviz/render"
)

// Fixed paths of the reference pipeline.
const (
	DefaultInput  = "grad_vectors.txt"
	DefaultOutput = "full_visualization.png"
)

// Config is the complete run configuration.
type Config struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Bins   int    `yaml:"bins"`

	Figure Figure `yaml:"figure"`
	Log    Log    `yaml:"log"`
}

// Figure mirrors render.Options in YAML-friendly form.
type Figure struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	DPI            int     `yaml:"dpi"`
	Title          string  `yaml:"title"`
	XLabel         string  `yaml:"x_label"`
	YLabel         string  `yaml:"y_label"`
	DensityLabel   string  `yaml:"density_label"`
	MagnitudeLabel string  `yaml:"magnitude_label"`
	PointRadius    float64 `yaml:"point_radius"`
	QuiverScale    float64 `yaml:"quiver_scale"`
	QuiverWidth    float64 `yaml:"quiver_width"`
	Layers         Layers  `yaml:"layers"`
	ColorBars      bool    `yaml:"colorbars"`
	Legend         bool    `yaml:"legend"`
	EqualAspect    bool    `yaml:"equal_aspect"`
}

// Layers toggles the three plot layers.
type Layers struct {
	Heatmap bool `yaml:"heatmap"`
	Scatter bool `yaml:"scatter"`
	Quiver  bool `yaml:"quiver"`
}

// Log configures the structured logger.
type Log struct {
	File  string `yaml:"file"` // empty → stderr
	Debug bool   `yaml:"debug"`
}

// Default returns the reference pipeline's constants.
func Default() Config {
	o := render.DefaultOptions()
	return Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
		Bins:   histogram.DefaultBins,
		Figure: Figure{
			Width:          o.Width,
			Height:         o.Height,
			DPI:            o.DPI,
			Title:          o.Title,
			XLabel:         o.XLabel,
			YLabel:         o.YLabel,
			DensityLabel:   o.DensityLabel,
			MagnitudeLabel: o.MagnitudeLabel,
			PointRadius:    o.PointRadius,
			QuiverScale:    o.QuiverScale,
			QuiverWidth:    o.QuiverWidth,
			Layers: Layers{
				Heatmap: o.Layers.Heatmap,
				Scatter: o.Layers.Scatter,
				Quiver:  o.Layers.Quiver,
			},
			ColorBars:   o.ColorBars,
			Legend:      o.Legend,
			EqualAspect: o.EqualAspect,
		},
	}
}

// Load reads a YAML file over Default. Keys left out keep their defaults;
// unknown keys are rejected.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &OpError{
			Op:   "config.load",
			Kind: KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, &OpError{
			Op:   "config.load",
			Kind: KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, &OpError{
			Op:   "config.load",
			Kind: KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return cfg, nil
}

// Validate checks paths, bins and figure settings.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return errors.New("input path is empty")
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("output path is empty")
	}
	if filepath.Ext(c.Output) == "" {
		return fmt.Errorf("output %q needs an image extension (.png, .svg, .pdf, ...)", c.Output)
	}
	if c.Bins <= 0 {
		return fmt.Errorf("bins must be > 0, got %d", c.Bins)
	}

	return c.RenderOptions().Validate()
}

// RenderOptions converts the figure section into render.Options.
// Settings the YAML does not expose keep render's defaults.
func (c Config) RenderOptions() render.Options {
	o := render.DefaultOptions()
	f := c.Figure
	o.Width, o.Height, o.DPI = f.Width, f.Height, f.DPI
	o.Title = f.Title
	o.XLabel, o.YLabel = f.XLabel, f.YLabel
	o.DensityLabel, o.MagnitudeLabel = f.DensityLabel, f.MagnitudeLabel
	o.PointRadius = f.PointRadius
	o.QuiverScale, o.QuiverWidth = f.QuiverScale, f.QuiverWidth
	o.Layers = render.Layers{Heatmap: f.Layers.Heatmap, Scatter: f.Layers.Scatter, Quiver: f.Layers.Quiver}
	o.ColorBars = f.ColorBars
	o.Legend = f.Legend
	o.EqualAspect = f.EqualAspect

	return o
}
