package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gradviz/field"
	"github.com/katalvlaran/gradviz/histogram"
)

func statsCmd(fl *flags) *cobra.Command {
	var grid int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarise the gradient table (no image)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, *fl)
			if err != nil {
				return err
			}

			f, err := field.Load(cfg.Input)
			if err != nil {
				return err
			}
			s, err := field.Summarize(f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err = s.WriteTo(out); err != nil || grid <= 0 {
				return err
			}

			h, err := histogram.New(f.X, f.Y, histogram.WithBins(grid))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "density (%d×%d bins, y up):\n%s", grid, grid, h.Counts)
			return err
		},
	}

	cmd.Flags().IntVar(&grid, "grid", 0, "also print point counts on an N×N grid")
	return cmd
}
