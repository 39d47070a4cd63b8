// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type rupturesFlags struct {
	limit   int
	minProb float64
}

func newRupturesCmd(root *rootFlags) *cobra.Command {
	flags := &rupturesFlags{}
	cmd := &cobra.Command{
		Use:   "ruptures",
		Short: "List the ruptures of the forecast source",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRuptures(cmd, root, flags)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&flags.limit, "limit", "n", 0, "Print at most N ruptures (0 = all)")
	f.Float64Var(&flags.minProb, "min-prob", 0, "Skip ruptures with a smaller probability")
	return cmd
}

func runRuptures(cmd *cobra.Command, root *rootFlags, flags *rupturesFlags) error {
	fc, err := loadForecast(cmd, root)
	if err != nil {
		return err
	}
	src, err := fc.Source(0)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tMAG\tRAKE\tPROB\tGRID")
	printed := 0
	for i := 0; i < src.NumRuptures(); i++ {
		if flags.limit > 0 && printed == flags.limit {
			break
		}
		r, err := src.Rupture(i)
		if err != nil {
			return err
		}
		if r.Prob < flags.minProb {
			continue
		}
		fmt.Fprintf(w, "%d\t%.2f\t%.1f\t%.6g\t%dx%d\n",
			i, r.Mag, r.Rake, r.Prob, r.Surface.NumRows(), r.Surface.NumCols())
		printed++
	}
	return w.Flush()
}
