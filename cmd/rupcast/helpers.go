// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rupcast/config"
	"github.com/katalvlaran/rupcast/erf"
	"github.com/katalvlaran/rupcast/geo"
	"github.com/katalvlaran/rupcast/logging"
	"github.com/katalvlaran/rupcast/source"
)

// loadForecast reads configuration, sets up logging and builds the forecast.
func loadForecast(cmd *cobra.Command, flags *rootFlags) (*erf.Forecast, error) {
	if flags.envFile != "" {
		if err := godotenv.Load(flags.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}
	cfg, err := config.Load(flags.config)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if err = logging.Setup(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr()); err != nil {
		return nil, err
	}
	if flags.duration != 0 {
		cfg.Forecast.Duration = flags.duration
	}

	f := erf.New(cfg.Forecast, logging.New("erf"))
	if err = f.UpdateForecast(); err != nil {
		return nil, fmt.Errorf("build forecast: %w", err)
	}
	return f, nil
}

// summary holds probability statistics of one source.
type summary struct {
	ruptures  int
	totalProb float64
	sumProb   float64
	meanProb  float64
	medProb   float64
	maxProb   float64
	minMag    float64
	maxMag    float64
}

func summarize(src source.Source) (summary, error) {
	s := summary{ruptures: src.NumRuptures()}
	if s.ruptures == 0 {
		return s, nil
	}
	probs := make([]float64, 0, s.ruptures)
	mags := make([]float64, 0, s.ruptures)
	for i := 0; i < s.ruptures; i++ {
		r, err := src.Rupture(i)
		if err != nil {
			return s, err
		}
		probs = append(probs, r.Prob)
		mags = append(mags, r.Mag)
	}
	var err error
	if s.totalProb, err = source.TotalProb(src); err != nil {
		return s, err
	}
	if s.sumProb, err = stats.Sum(probs); err != nil {
		return s, err
	}
	if s.meanProb, err = stats.Mean(probs); err != nil {
		return s, err
	}
	if s.medProb, err = stats.Median(probs); err != nil {
		return s, err
	}
	if s.maxProb, err = stats.Max(probs); err != nil {
		return s, err
	}
	if s.minMag, err = stats.Min(mags); err != nil {
		return s, err
	}
	if s.maxMag, err = stats.Max(mags); err != nil {
		return s, err
	}
	return s, nil
}

// parseSite parses "lat,lon".
func parseSite(s string) (geo.Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geo.Location{}, fmt.Errorf("site %q: want lat,lon", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geo.Location{}, fmt.Errorf("site latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geo.Location{}, fmt.Errorf("site longitude: %w", err)
	}
	return geo.NewLocation(lat, lon, 0), nil
}
