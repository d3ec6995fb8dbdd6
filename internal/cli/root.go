package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gradviz/config"
	"github.com/katalvlaran/gradviz/internal/logger"
	"github.com/katalvlaran/gradviz/pipeline"
)

// Execute runs the root command and exits 1 on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// flags holds values shared by the root and stats commands.
type flags struct {
	configPath string
	input      string
	output     string
	bins       int
	dpi        int
	title      string
	logFile    string
	debug      bool
}

func newRootCmd() *cobra.Command {
	var fl flags

	cmd := &cobra.Command{
		Use:          "gradviz",
		Short:        "Render a gradient field as density heatmap, scatter and quiver",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, fl)
			if err != nil {
				return err
			}

			cleanup, err := logger.Setup(logger.Config{
				File:   cfg.Log.File,
				Writer: cmd.ErrOrStderr(),
				Debug:  cfg.Log.Debug,
			})
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			defer func() { _ = cleanup() }()

			res, err := pipeline.Run(cmd.Context(), cfg, logger.L())
			if err != nil {
				// cobra prints err on stderr; only a log file needs its own record
				if cfg.Log.File != "" {
					logger.L().Error("pipeline.failed", "error", err.Error())
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d samples, %d bytes)\n", res.Output, res.Samples, res.Bytes)
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&fl.configPath, "config", "c", "", "YAML config file (optional)")
	pf.StringVarP(&fl.input, "input", "i", config.DefaultInput, "gradient table: x y dx dy magnitude per line")
	pf.StringVar(&fl.logFile, "log-file", "", "append JSON logs to this file instead of stderr")
	pf.BoolVar(&fl.debug, "debug", false, "enable debug logging")

	f := cmd.Flags()
	f.StringVarP(&fl.output, "output", "o", config.DefaultOutput, "output image (.png, .jpg, .tif, .svg, .pdf)")
	f.IntVarP(&fl.bins, "bins", "b", config.Default().Bins, "density bins per axis")
	f.IntVar(&fl.dpi, "dpi", config.Default().Figure.DPI, "raster resolution")
	f.StringVar(&fl.title, "title", config.Default().Figure.Title, "figure title")

	cmd.AddCommand(statsCmd(&fl), synthCmd(), versionCmd())
	return cmd
}

// resolveConfig merges defaults, the optional YAML file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, fl flags) (config.Config, error) {
	cfg := config.Default()
	if fl.configPath != "" {
		var err error
		if cfg, err = config.Load(fl.configPath); err != nil {
			return config.Config{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("input") {
		cfg.Input = fl.input
	}
	if changed("output") {
		cfg.Output = fl.output
	}
	if changed("bins") {
		cfg.Bins = fl.bins
	}
	if changed("dpi") {
		cfg.Figure.DPI = fl.dpi
	}
	if changed("title") {
		cfg.Figure.Title = fl.title
	}
	if changed("log-file") {
		cfg.Log.File = fl.logFile
	}
	if changed("debug") {
		cfg.Log.Debug = fl.debug
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, &config.OpError{Op: "cli.flags", Kind: config.KindInvalidConfig, Err: err}
	}

	return cfg, nil
}
