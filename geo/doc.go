// SPDX-License-Identifier: MIT

// Package geo provides the geographic primitives used by rupture sources:
// locations, great-circle distances and azimuths, polygonal regions and
// regions discretised into evenly spaced nodes.
//
// What:
//
//   - Location holds latitude/longitude in decimal degrees and depth in km
//     (positive down).
//   - HorzDistance, LinearDistance, Azimuth and Destination wrap the
//     haversine and bearing helpers of github.com/paulmach/orb/geo, rescaled
//     from orb's sphere to the mean radius EarthRadius.
//   - Region is a closed polygon border; Contains uses orb/planar ring
//     containment in lat/lon space and counts edge points as inside.
//   - GriddedRegion discretises a Region at a fixed spacing in degrees. Nodes
//     sit at cell centres anchored on the south-west corner of the bounding box
//     and are addressed row-major (south to north, west to east).
//
// Why:
//
//   - Sources measure site distances (MinDistance) with HorzDistance.
//   - Point-to-line sources place trace endpoints with Destination.
//   - Area sources spread a magnitude-frequency distribution over nodes with
//     cos(latitude) weights (AreaWeights) so that every node stands for the
//     same physical area.
//
// Complexity:
//
//   - Distance and azimuth helpers: O(1).
//   - Region.Contains: O(V) for V border vertices.
//   - NewGriddedRegion: O(R×C×V) for an R×C bounding grid.
//
// Errors:
//
//   - ErrTooFewVertices: a polygon border needs at least three vertices.
//   - ErrEmptyRegion: the region holds no grid node at the requested spacing.
//   - ErrBadSpacing: spacing must be positive and finite.
//   - ErrNodeIndex: a node index outside [0, NumNodes).
package geo
