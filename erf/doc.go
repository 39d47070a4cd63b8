// SPDX-License-Identifier: MIT

// Package erf wraps one configurable source in an earthquake rupture
// forecast with explicit rebuild semantics.
//
// What:
//
//   - Parameters describes a single source of one Kind (fault,
//     floating-fault, single-rupture, point, point-line, area,
//     gridded-region) as plain YAML-tagged data.
//   - Forecast holds exactly one source. Update and SetDuration mark it
//     dirty; UpdateForecast rebuilds it from the current parameters and
//     marks it clean.
//   - DefaultParameters returns the PEER non-planar fault forecast: a
//     floating fault under a slip-rate Gutenberg-Richter distribution.
//
// State machine:
//
//	dirty ──UpdateForecast()──▶ clean
//	clean ──Update()/SetDuration()──▶ dirty
//
// Reading the source while dirty returns ErrStale. A failed rebuild keeps
// the forecast dirty and the previous source unreachable.
//
// Errors:
//
//   - ErrSourceIndex: any source index other than 0.
//   - ErrStale: source read before UpdateForecast.
//   - ErrBadParameters: invalid kind, mode or distribution settings.
//   - Errors of the geo, magfreq, scaling, surface and source packages are
//     wrapped with the component that failed.
package erf
