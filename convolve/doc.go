// SPDX-License-Identifier: MIT

// Package convolve implements 2-D correlation of a pixel.Buffer with a kernel
// under three boundary policies, plus the kernels and padding helpers that
// feed them.
//
//	Valid       output shrinks to (W-kW+1)×(H-kH+1); no boundary reads
//	Pad         same-size output; only the interior window is written and
//	            the caller owns the border (see ReflectPad, CenterPad)
//	Reflecting  output is ceil(H/rowSkip)×ceil(W/colSkip); every source read
//	            goes through Buffer.AtReflect, so nothing is ever out of bounds
//
// All three walk the kernel in row-major order without flipping it
// (correlation), accumulate in float64 and round once per output sample.
// Output buffers are caller-supplied, must have the exact documented size,
// and must not alias the source or the kernel.
//
// AppendPatch and AppendKernelPatch collect windows into flat float32
// slices; the derivative helpers write forward differences.
package convolve
