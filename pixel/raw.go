// SPDX-License-Identifier: MIT
// Package: pixel
//
// Purpose:
//   - Ingest interleaved byte grids (the layout image decoders hand out) into
//     single-channel buffers: one channel at a time, or a grey average.
//
// Notes:
//   - Decoding file formats is not this package's job; callers (see
//     cmd/keypoints) decode with image.Decode and pass the pixel slice here.

package pixel

import "fmt"

// Raw describes an interleaved 8-bit pixel grid.
type Raw struct {
	Pix      []byte // row r starts at Pix[r*Stride]
	Width    int    // pixels per row
	Height   int    // rows
	Stride   int    // bytes per row, >= Width*Channels
	Channels int    // bytes per pixel, >= 1
	HasAlpha bool   // last channel is alpha and is excluded from grey
}

// validate checks the grid geometry against the backing slice.
func (raw Raw) validate() error {
	if raw.Width <= 0 || raw.Height <= 0 {
		return fmt.Errorf("Raw %dx%d: %w", raw.Width, raw.Height, ErrInvalidDimensions)
	}
	if raw.Channels < 1 || raw.Stride < raw.Width*raw.Channels {
		return fmt.Errorf("Raw channels=%d stride=%d width=%d: %w", raw.Channels, raw.Stride, raw.Width, ErrBadStrides)
	}
	if raw.HasAlpha && raw.Channels < 2 {
		return fmt.Errorf("Raw alpha needs >= 2 channels: %w", ErrBadArgument)
	}
	if need := (raw.Height-1)*raw.Stride + raw.Width*raw.Channels; len(raw.Pix) < need {
		return fmt.Errorf("Raw needs %d bytes, have %d: %w", need, len(raw.Pix), ErrShortBacking)
	}

	return nil
}

// FromRawChannel extracts channel ch of raw as a Width×Height buffer.
//
// Errors: ErrContractViolation family for bad geometry; ErrBadArgument if ch
// is not in [0,Channels).
func FromRawChannel(raw Raw, ch int) (*Buffer, error) {
	const op = "FromRawChannel"
	if err := raw.validate(); err != nil {
		return nil, opErrorf(op, err)
	}
	if ch < 0 || ch >= raw.Channels {
		return nil, opErrorf(op, fmt.Errorf("channel %d of %d: %w", ch, raw.Channels, ErrBadArgument))
	}
	b, err := New(raw.Width, raw.Height)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	for r := 0; r < raw.Height; r++ {
		row := raw.Pix[r*raw.Stride:]
		for c := 0; c < raw.Width; c++ {
			b.SetFast(r, c, float32(row[c*raw.Channels+ch]))
		}
	}

	return b, nil
}

// FromRawGrey averages the colour channels of raw into one buffer.
// With HasAlpha the last channel is left out of the average.
func FromRawGrey(raw Raw) (*Buffer, error) {
	const op = "FromRawGrey"
	if err := raw.validate(); err != nil {
		return nil, opErrorf(op, err)
	}
	colours := raw.Channels
	if raw.HasAlpha {
		colours--
	}
	b, err := New(raw.Width, raw.Height)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	for r := 0; r < raw.Height; r++ {
		row := raw.Pix[r*raw.Stride:]
		for c := 0; c < raw.Width; c++ {
			px := row[c*raw.Channels:]
			var sum float32
			for k := 0; k < colours; k++ {
				sum += float32(px[k])
			}
			b.SetFast(r, c, sum/float32(colours))
		}
	}

	return b, nil
}
