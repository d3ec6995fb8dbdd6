package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gradviz/field"
	"github.com/katalvlaran/gradviz/synth"
)

func synthCmd() *cobra.Command {
	o := synth.DefaultOptions()
	var output string

	c := &cobra.Command{
		Use:   "synth",
		Short: "Write a synthetic density-penalty gradient table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := synth.DensityField(o)
			if err != nil {
				return err
			}

			fh, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := field.Write(fh, f); err != nil {
				_ = fh.Close()
				return err
			}
			if err := fh.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d samples)\n", output, f.Len())
			return nil
		},
	}

	fl := c.Flags()
	fl.StringVarP(&output, "output", "o", "grad_vectors.txt", "table to write")
	fl.IntVar(&o.Modules, "modules", o.Modules, "number of modules")
	fl.IntVar(&o.Clusters, "clusters", o.Clusters, "number of clusters")
	fl.Float64Var(&o.Spread, "spread", o.Spread, "cluster standard deviation")
	fl.IntVar(&o.Bins, "density-bins", o.Bins, "density grid bins per axis")
	fl.Float64Var(&o.TargetDensity, "target-density", o.TargetDensity, "fraction of a bin's area modules may fill")
	fl.Int64Var(&o.Seed, "seed", o.Seed, "random seed")
	return c
}
