// SPDX-License-Identifier: MIT
// Package: detect
//
// scalespace.go: Difference-of-Gaussian stack and its extrema.
//
// Build (one octave):
//
//	Stage 1: pre-blur the image with a KernelSize² Gaussian of variance
//	         InitialVariance (normalised, reflecting borders).
//	Stage 2: step = Octaves^(1/(BlurSteps-2)); accumulated variance v = 1.
//	         For n in [0,BlurSteps): target = step^(2(n+1)),
//	         delta = target - v, blur the current image by delta,
//	         DoG[n] = current - blurred, v = target.
//
// Extrema: for every interior level i (1..len-2) a positive and a negative
// mask start at 1 and go through three LocalMax passes: against level i
// itself (×1), level i-1 (×Fudge) and level i+1 (×1/Fudge).

package detect

import (
	"fmt"
	"math"

	"github.com/katalvlaran/scalespace"
	"github.com/katalvlaran/scalespace/convolve"
	"github.com/katalvlaran/scalespace/pixel"
)

// ScaleSpace is one octave's DoG stack.
type ScaleSpace struct {
	// ScaleStep is the scale ratio between consecutive levels.
	ScaleStep float64
	// Variances[n] is the accumulated blur variance of the image subtracted
	// to form DoG[n]: ScaleStep^(2(n+1)).
	Variances []float64
	// DoG holds BlurSteps levels, finest first, all the size of the input.
	DoG []*pixel.Buffer
}

// LevelMasks are the extremum masks of one interior DoG level.
type LevelMasks struct {
	Level    int     // index into ScaleSpace.DoG
	Size     float64 // nominal feature size 4·ScaleStep^(Level-1), in level pixels
	Positive *pixel.Buffer
	Negative *pixel.Buffer
}

// BuildScaleSpace computes the DoG stack of grey.
//
// Errors: ErrBadConfig, pixel.ErrNilBuffer.
// Complexity: O(BlurSteps · W · H · KernelSize²).
func BuildScaleSpace(cfg Config, grey *pixel.Buffer) (*ScaleSpace, error) {
	const op = "detect.BuildScaleSpace"
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := pixel.ValidateNotNil(grey); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	kernel, err := convolve.Gaussian(cfg.KernelSize, cfg.KernelSize, 1, cfg.InitialVariance, cfg.InitialVariance, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	cur, _ := pixel.New(grey.Shape())
	if err = convolve.Reflecting(cur, grey, kernel, 1, 1); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	step := cfg.ScaleStep()
	ss := &ScaleSpace{
		ScaleStep: step,
		Variances: make([]float64, 0, cfg.BlurSteps),
		DoG:       make([]*pixel.Buffer, 0, cfg.BlurSteps),
	}
	variance := 1.0
	for n := 0; n < cfg.BlurSteps; n++ {
		target := math.Pow(step, float64(2*(n+1)))
		delta := target - variance
		if err = convolve.GaussianInto(kernel, 1, delta, delta, true); err != nil {
			return nil, fmt.Errorf("%s: level %d: %w", op, n, err)
		}
		next, _ := pixel.New(grey.Shape())
		if err = convolve.Reflecting(next, cur, kernel, 1, 1); err != nil {
			return nil, fmt.Errorf("%s: level %d: %w", op, n, err)
		}
		if err = pixel.Subtract(cur, cur, next); err != nil {
			return nil, fmt.Errorf("%s: level %d: %w", op, n, err)
		}
		ss.DoG = append(ss.DoG, cur)
		ss.Variances = append(ss.Variances, target)
		scalespace.Logger().Debug("dog level",
			"level", n, "blur", math.Sqrt(delta), "min", cur.Min(), "max", cur.Max())
		cur = next
		variance = target
	}

	return ss, nil
}

// Extrema returns the positive and negative extremum masks of every
// interior level, in level order.
//
// Errors: ErrBadConfig; pixel.ErrBadArgument if the stack has fewer than 3 levels.
func (s *ScaleSpace) Extrema(cfg Config) ([]LevelMasks, error) {
	const op = "detect.Extrema"
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if s == nil || len(s.DoG) < 3 {
		return nil, fmt.Errorf("%s: need at least 3 DoG levels: %w", op, pixel.ErrBadArgument)
	}
	if err := pixel.ValidateSameShape(s.DoG[0], s.DoG[1:]...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]LevelMasks, 0, len(s.DoG)-2)
	for i := 1; i < len(s.DoG)-1; i++ {
		lm := LevelMasks{Level: i, Size: 4 * math.Pow(s.ScaleStep, float64(i-1))}
		for _, pol := range []Polarity{Positive, Negative} {
			mask, err := s.levelExtrema(cfg, i, pol)
			if err != nil {
				return nil, fmt.Errorf("%s: level %d: %w", op, i, err)
			}
			if pol == Positive {
				lm.Positive = mask
			} else {
				lm.Negative = mask
			}
		}
		out = append(out, lm)
	}

	return out, nil
}

// levelExtrema runs the self, coarser and finer passes for one polarity.
func (s *ScaleSpace) levelExtrema(cfg Config, i int, pol Polarity) (*pixel.Buffer, error) {
	cur := s.DoG[i]
	mask, err := pixel.New(cur.Shape())
	if err != nil {
		return nil, err
	}
	mask.Fill(1)
	passes := []struct {
		mult      float64
		compareTo *pixel.Buffer
	}{
		{1, cur},
		{cfg.Fudge, s.DoG[i-1]},
		{1 / cfg.Fudge, s.DoG[i+1]},
	}
	for _, p := range passes {
		if err = LocalMax(cfg, cur, pol, p.mult, p.compareTo, mask); err != nil {
			return nil, err
		}
	}

	return mask, nil
}
