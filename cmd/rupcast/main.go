// SPDX-License-Identifier: MIT

// rupcast builds an earthquake rupture forecast from a YAML description and
// reports its ruptures.
//
// Usage:
//
//	rupcast ruptures [--config=<file>] [--limit=N]
//	rupcast summary  [--config=<file>] [--site=lat,lon]
//	rupcast rescale  [--config=<file>] --to=<years>
//
// Without --config the PEER non-planar fault forecast is used. RUPCAST_*
// variables override file settings; an optional .env file is read first.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	config   string
	envFile  string
	logLevel string
	duration float64
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "rupcast",
		Short: "Earthquake rupture forecasts from fault, point and area sources",
		Long: "rupcast expands a single seismic source into probabilistic ruptures\n" +
			"and reports counts, probabilities and duration rescaling.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Forecast YAML file (default: PEER non-planar fault)")
	pf.StringVar(&flags.envFile, "env-file", ".env", "Optional dotenv file with RUPCAST_* overrides")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	pf.Float64Var(&flags.duration, "duration", 0, "Forecast duration override in years")

	root.AddCommand(newRupturesCmd(flags))
	root.AddCommand(newSummaryCmd(flags))
	root.AddCommand(newRescaleCmd(flags))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
