// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/katalvlaran/scalespace/pixel"
	"github.com/katalvlaran/scalespace/pyramid"
)

// loadGrey decodes the image at path and averages its colour channels.
func loadGrey(path string) (*pixel.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return greyFromImage(img, format)
}

// greyFromImage converts any image.Image to an RGBA grid and then to grey.
func greyFromImage(img image.Image, format string) (*pixel.Buffer, error) {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || bounds.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		xdraw.Draw(rgba, rgba.Bounds(), img, bounds.Min, xdraw.Src)
	}
	grey, err := pixel.FromRawGrey(pixel.Raw{
		Pix:      rgba.Pix,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Stride:   rgba.Stride,
		Channels: 4,
		HasAlpha: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%s image: %w", format, err)
	}

	return grey, nil
}

// fitGrey resamples grey into the aspect-preserving long×short frame.
func fitGrey(grey *pixel.Buffer, long, short int) (*pixel.Buffer, error) {
	w, h := pyramid.ReferenceSize(grey.Width(), grey.Height(), long, short)
	fitted, err := pixel.New(max(w, 1), max(h, 1))
	if err != nil {
		return nil, err
	}
	if err = pyramid.ReduceSize(fitted, grey); err != nil {
		return nil, err
	}

	return fitted, nil
}
