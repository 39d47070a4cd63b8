// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rupcast/source"
)

type summaryFlags struct {
	site string
}

func newSummaryCmd(root *rootFlags) *cobra.Command {
	flags := &summaryFlags{}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarise rupture counts and probabilities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSummary(cmd, root, flags)
		},
	}
	cmd.Flags().StringVar(&flags.site, "site", "", "Report the distance to a site given as lat,lon")
	return cmd
}

func runSummary(cmd *cobra.Command, root *rootFlags, flags *summaryFlags) error {
	fc, err := loadForecast(cmd, root)
	if err != nil {
		return err
	}
	src, err := fc.Source(0)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err = printSummary(out, src); err != nil {
		return err
	}
	if flags.site != "" {
		site, err := parseSite(flags.site)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Distance:   %.3f km\n", src.MinDistance(site))
	}
	return nil
}

func printSummary(out io.Writer, src source.Source) error {
	s, err := summarize(src)
	if err != nil {
		return err
	}
	kind := "fixed probability"
	if src.IsPoissonian() {
		kind = "Poissonian"
	}
	fmt.Fprintf(out, "Source:     %s (%s)\n", src.Name(), kind)
	fmt.Fprintf(out, "Duration:   %g yr\n", src.Duration())
	fmt.Fprintf(out, "Ruptures:   %d\n", s.ruptures)
	if s.ruptures == 0 {
		return nil
	}
	fmt.Fprintf(out, "Magnitudes: %.2f - %.2f\n", s.minMag, s.maxMag)
	fmt.Fprintf(out, "Prob total: %.6g\n", s.totalProb)
	fmt.Fprintf(out, "Prob sum:   %.6g\n", s.sumProb)
	fmt.Fprintf(out, "Prob mean:  %.6g\n", s.meanProb)
	fmt.Fprintf(out, "Prob med:   %.6g\n", s.medProb)
	fmt.Fprintf(out, "Prob max:   %.6g\n", s.maxProb)
	return nil
}
