package image

import (
	"math"
	"sync"
)

// Fit computes the size of orig scaled to fit the box maxWidth x maxHeight,
// keeping the aspect ratio. A zero bound leaves that axis free; when both
// bounds are zero orig is returned as is.
//
// Sizes are rounded with math.Round (half away from zero). The result never
// exceeds a non-zero bound and both sides are at least 1. There is no
// "never enlarge" guard: a box bigger than the source scales it up.
func Fit(orig Dimensions, maxWidth, maxHeight int) Dimensions {
	if maxWidth < 0 {
		maxWidth = 0
	}
	if maxHeight < 0 {
		maxHeight = 0
	}
	if (maxWidth == 0 && maxHeight == 0) || !orig.Valid() {
		return orig
	}

	ow, oh := orig.Width, orig.Height
	w, h := maxWidth, maxHeight

	switch {
	case maxWidth == 0:
		w = scale(ow, h, oh)
	case maxHeight == 0:
		h = scale(oh, w, ow)
	case ow > oh:
		h = scale(oh, w, ow)
	case oh > ow:
		w = scale(ow, h, oh)
	default:
		// square source stays square at the smaller bound
		if maxWidth > maxHeight {
			w = maxHeight
		} else if maxHeight > maxWidth {
			h = maxWidth
		}
	}

	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
		h = scale(oh, w, ow)
	}
	if maxHeight > 0 && h > maxHeight {
		h = maxHeight
		w = scale(ow, h, oh)
	}

	return Dimensions{Width: atLeastOne(w), Height: atLeastOne(h)}
}

// Reduce divides both sides of orig by factor, rounding down.
// A factor below 2 returns orig unchanged.
func Reduce(orig Dimensions, factor int) Dimensions {
	if factor <= 1 {
		return orig
	}
	return Dimensions{
		Width:  atLeastOne(orig.Width / factor),
		Height: atLeastOne(orig.Height / factor),
	}
}

// scale returns round(v * num / den).
func scale(v, num, den int) int {
	return int(math.Round(float64(v) * (float64(num) / float64(den))))
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

type fitKey struct {
	maxWidth, maxHeight int
	width, height       int
}

// Fitter memoizes Fit results for one batch run. The zero value is ready
// to use and safe for concurrent use.
type Fitter struct {
	cache sync.Map // fitKey -> Dimensions
}

// NewFitter ...
func NewFitter() *Fitter {
	return &Fitter{}
}

// Fit is the memoized form of the package level Fit.
func (f *Fitter) Fit(orig Dimensions, maxWidth, maxHeight int) Dimensions {
	if f == nil {
		return Fit(orig, maxWidth, maxHeight)
	}
	k := fitKey{maxWidth, maxHeight, orig.Width, orig.Height}
	if v, ok := f.cache.Load(k); ok {
		return v.(Dimensions)
	}
	d := Fit(orig, maxWidth, maxHeight)
	f.cache.Store(k, d)
	return d
}

// Len returns the number of cached entries.
func (f *Fitter) Len() (n int) {
	f.cache.Range(func(_, _ any) bool {
		n++
		return true
	})
	return
}
