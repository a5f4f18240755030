// SPDX-License-Identifier: MIT

// Package scalespace is a small image-analysis toolkit built around a single
// dense scalar pixel buffer: boundary-aware convolution, Gaussian and
// Laplacian pyramids with exact reconstruction, and Difference-of-Gaussian
// scale-space extrema detection.
//
// What is inside?
//
//	pixel/          strided float32 Buffer, checked and unchecked access,
//	                reflect/bilinear sampling, reductions, elementwise
//	                arithmetic, seeded random fills, raw byte-grid ingest
//	convolve/       valid, zero-pad and reflecting convolution, blur
//	                kernels, padding and derivative helpers
//	pyramid/        ReduceHalf, Gaussian pyramid, Laplacian pyramid and its
//	                exact inverse, resampling to a reference size
//	detect/         Harris-style response, neighbourhood maxima, DoG scale
//	                space, multi-octave keypoints
//	cmd/keypoints   command-line harness that decodes an image and prints
//	                the detected keypoints
//
// Conventions shared by every package:
//
//   - Coordinates are always (row, col); width is the column count.
//   - Pixels are stored as float32 and accumulated as float64.
//   - Operations write into a caller-supplied destination placed first in
//     the argument list. Elementwise operations accept a destination that
//     aliases an input; window-based operations reject it with
//     pixel.ErrAliased.
//   - Errors are package sentinels matched with errors.Is; contract
//     violations all wrap pixel.ErrContractViolation.
//   - The library is silent unless SetLogger installs a logger.
//
// Quick example:
//
//	grey, _ := pixel.FromRawGrey(raw)
//	kps, err := detect.Keypoints(detect.DefaultConfig(), grey)
//	if err != nil { ... }
//	for _, kp := range kps { fmt.Println(kp.Row, kp.Col, kp.Size) }
package scalespace
