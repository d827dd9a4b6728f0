package image

import (
	"fmt"
)

// JPEG quality bounds accepted from the command line.
const (
	DefaultQuality = 85
	MinQuality     = 1
	MaxQuality     = 95
)

// ResizeMode ...
type ResizeMode uint8

const (
	ResizeNone ResizeMode = iota
	ResizeBox
	ResizeReduce
)

func (m ResizeMode) String() string {
	switch m {
	case ResizeBox:
		return "box"
	case ResizeReduce:
		return "reduce"
	}
	return "none"
}

// ResizeSpec selects how an image is scaled: fit into a box, reduce by an
// integer factor, or left alone. Box and Reduce are mutually exclusive.
type ResizeSpec struct {
	MaxWidth  int `json:"maxWidth,omitempty"`
	MaxHeight int `json:"maxHeight,omitempty"`
	Reduce    int `json:"reduce,omitempty"`
}

// Mode reports the active resize mode. It assumes Validate passed.
func (rs ResizeSpec) Mode() ResizeMode {
	if rs.Reduce > 0 {
		return ResizeReduce
	}
	if rs.MaxWidth > 0 || rs.MaxHeight > 0 {
		return ResizeBox
	}
	return ResizeNone
}

// Validate rejects negative values and a reduce factor combined with a box.
func (rs ResizeSpec) Validate() error {
	if rs.MaxWidth < 0 || rs.MaxHeight < 0 {
		return fmt.Errorf("%w: %dx%d", ErrNegativeSize, rs.MaxWidth, rs.MaxHeight)
	}
	if rs.Reduce < 0 {
		return fmt.Errorf("%w: reduce %d", ErrNegativeSize, rs.Reduce)
	}
	if rs.Reduce != 0 && (rs.MaxWidth != 0 || rs.MaxHeight != 0) {
		return ErrResizeConflict
	}
	return nil
}

// Target returns the output size for an image of size orig. f may be nil.
func (rs ResizeSpec) Target(orig Dimensions, f *Fitter) Dimensions {
	switch rs.Mode() {
	case ResizeReduce:
		return Reduce(orig, rs.Reduce)
	case ResizeBox:
		return f.Fit(orig, rs.MaxWidth, rs.MaxHeight)
	}
	return orig
}

func (rs ResizeSpec) String() string {
	switch rs.Mode() {
	case ResizeReduce:
		return fmt.Sprintf("reduce /%d", rs.Reduce)
	case ResizeBox:
		return fmt.Sprintf("box %dx%d", rs.MaxWidth, rs.MaxHeight)
	}
	return "none"
}

// EncodeOptions are the JPEG encoder settings. A Quality of zero means
// DefaultQuality.
type EncodeOptions struct {
	Quality     int  `json:"quality,omitempty"`
	Optimize    bool `json:"optimize,omitempty"`
	Progressive bool `json:"progressive"`
}

// DefaultEncodeOptions returns quality 85, progressive, no extra
// optimization pass.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{Quality: DefaultQuality, Progressive: true}
}

// EffectiveQuality returns the quality handed to the encoder.
func (eo EncodeOptions) EffectiveQuality() int {
	switch {
	case eo.Quality <= 0:
		return DefaultQuality
	case eo.Quality > MaxQuality:
		return MaxQuality
	}
	return eo.Quality
}

// Validate rejects qualities outside 1..95. Zero is accepted as "unset".
func (eo EncodeOptions) Validate() error {
	if eo.Quality != 0 && (eo.Quality < MinQuality || eo.Quality > MaxQuality) {
		return fmt.Errorf("%w: %d (use %d to %d)", ErrQuality, eo.Quality, MinQuality, MaxQuality)
	}
	return nil
}

func (eo EncodeOptions) String() string {
	return fmt.Sprintf("q%d optimize=%v progressive=%v", eo.EffectiveQuality(), eo.Optimize, eo.Progressive)
}
