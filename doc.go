// SPDX-License-Identifier: MIT

// Package rupcast turns seismic sources into earthquake rupture forecasts:
// lists of possible ruptures, each with a magnitude, a rake, a probability of
// occurrence over a forecast duration and the fault surface it breaks.
//
// 🚀 What is rupcast?
//
//	A small, dependency-light toolkit that brings together:
//		• Geodesy: locations, azimuths, regions and gridded regions
//		• Magnitude-frequency distributions: single, Gutenberg-Richter, Gaussian
//		• Magnitude scaling relations with aleatory branches
//		• Gridded fault surfaces and their floating sub-surfaces
//		• Sources: fault, floating fault, point, point-to-line, area, gridded region
//		• A forecast wrapper with explicit rebuild semantics
//
// ✨ Why rupcast?
//
//   - Exact Poisson arithmetic – expm1/log1p for every rate ↔ probability step
//   - Deterministic – seeded strike sampling, stable rupture ordering
//   - Configurable – YAML forecasts with RUPCAST_* environment overrides
//
// Packages:
//
//	geo/         locations, distances, regions, gridded regions
//	discretized/ sampled lookup functions
//	magfreq/     magnitude-frequency distributions and point distributions
//	scaling/     magnitude scaling relations and sigma branches
//	surface/     gridded and point surfaces, floating subsets
//	rupture/     the rupture type and Poisson conversions
//	source/      rupture-generating sources
//	erf/         single-source forecast, parameters, builder
//	config/      YAML loading and environment overrides
//	logging/     slog setup
//	cmd/rupcast/ command-line front end
//
// Quick example (PEER non-planar fault, 1 year):
//
//	f := erf.New(erf.DefaultParameters(), nil)
//	if err := f.UpdateForecast(); err != nil { ... }
//	src, _ := f.Source(0)
//	fmt.Println(src.NumRuptures())
//
//	go install github.com/katalvlaran/rupcast/cmd/rupcast@latest
package rupcast
