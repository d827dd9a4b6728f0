package image

import (
	"fmt"
	"image"
)

// Dimensions is a width/height pair in pixels.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DimensionsOf returns the pixel size of m.
func DimensionsOf(m image.Image) Dimensions {
	b := m.Bounds()
	return Dimensions{Width: b.Dx(), Height: b.Dy()}
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Valid reports whether both sides are positive.
func (d Dimensions) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

// Ratio returns width/height, or 0 for an invalid size.
func (d Dimensions) Ratio() float64 {
	if !d.Valid() {
		return 0
	}
	return float64(d.Width) / float64(d.Height)
}

// Result describes one converted image.
type Result struct {
	Src    string     `json:"src"`
	Dst    string     `json:"dst"`
	Format string     `json:"format"` // decoded source format, e.g. "png"
	Orig   Dimensions `json:"orig"`
	Final  Dimensions `json:"final"`
	Bytes  int64      `json:"bytes"`
}
