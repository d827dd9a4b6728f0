//go:build !cgo

package image

import (
	"image"
	"image/jpeg"
	"io"
	"sync"
)

var warnBaseline sync.Once

// encodeJPEG writes baseline JPEG with the standard library encoder.
// Progressive and optimize need libjpeg, which needs cgo.
func encodeJPEG(w io.Writer, m image.Image, opt EncodeOptions) error {
	if opt.Progressive || opt.Optimize {
		warnBaseline.Do(func() {
			logger().Warnw("built without cgo, writing baseline jpeg",
				"progressive", opt.Progressive, "optimize", opt.Optimize)
		})
	}
	return jpeg.Encode(w, m, &jpeg.Options{Quality: opt.EffectiveQuality()})
}

// SupportsProgressive reports whether the linked encoder can write
// progressive JPEG.
func SupportsProgressive() bool { return false }
