//go:build cgo

package image

import (
	"image"
	"io"

	"github.com/pixiv/go-libjpeg/jpeg"
)

// encodeJPEG writes m through libjpeg, which supports progressive scans and
// optimized Huffman tables.
func encodeJPEG(w io.Writer, m image.Image, opt EncodeOptions) error {
	return jpeg.Encode(w, m, &jpeg.EncoderOptions{
		Quality:         opt.EffectiveQuality(),
		OptimizeCoding:  opt.Optimize,
		ProgressiveMode: opt.Progressive,
		DCTMethod:       jpeg.DCTISlow,
	})
}

// SupportsProgressive reports whether the linked encoder can write
// progressive JPEG.
func SupportsProgressive() bool { return true }
