// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rupcast/source"
)

type rescaleFlags struct {
	to float64
}

func newRescaleCmd(root *rootFlags) *cobra.Command {
	flags := &rescaleFlags{}
	cmd := &cobra.Command{
		Use:   "rescale",
		Short: "Rebuild the forecast for another duration and compare",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRescale(cmd, root, flags)
		},
	}
	cmd.Flags().Float64Var(&flags.to, "to", 0, "New duration in years (required)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func runRescale(cmd *cobra.Command, root *rootFlags, flags *rescaleFlags) error {
	fc, err := loadForecast(cmd, root)
	if err != nil {
		return err
	}
	before, err := fc.Source(0)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !before.IsPoissonian() {
		return fmt.Errorf("rescale %s: %w", before.Name(), source.ErrNotPoissonian)
	}
	fmt.Fprintln(out, "Before:")
	if err = printSummary(out, before); err != nil {
		return err
	}

	if err = fc.SetDuration(flags.to); err != nil {
		return err
	}
	if err = fc.UpdateForecast(); err != nil {
		return err
	}
	after, err := fc.Source(0)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "After:")
	return printSummary(out, after)
}
