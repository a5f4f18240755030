// SPDX-License-Identifier: MIT

// Package detect finds scale-space extrema and corner-like points on grey
// pixel buffers.
//
// The building blocks are:
//
//   - HarrisResponse: a per-pixel corner measure computed from one-step
//     forward and central differences.
//   - LocalMax: narrows a candidate mask to the pixels whose (signed) value
//     beats every neighbour in a comparison buffer, optionally scaled.
//   - BuildScaleSpace: a Difference-of-Gaussian stack built by
//     reflect-convolving the image with a geometric series of blurs.
//   - (*ScaleSpace).Extrema: three LocalMax passes per interior DoG level,
//     against the level itself and both scale neighbours.
//
// Keypoints and HarrisKeypoints run these over successive half-size octaves
// and map the surviving mask pixels back to level-0 coordinates.
//
// All tuning lives in Config, which is passed explicitly to every call.
// There is no package-level mutable state.
//
// PeakMask, CenterSurround and SurroundPeaks keep an older asymmetric
// 4-neighbour stencil (the upward neighbour is counted twice and the left
// one never). Results produced with them are not comparable to LocalMax.
package detect
