package image

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	zlog "github.com/go-imsto/properjpg/log"
)

const jpegFormat = "jpeg"

func logger() zlog.Logger {
	return zlog.Get()
}

// Decode reads an image from r and returns it with its format name.
func Decode(r io.Reader) (image.Image, string, error) {
	m, format, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		if err == image.ErrFormat {
			return nil, "", ErrorFormat
		}
		return nil, "", err
	}
	return m, format, nil
}

// Open decodes the image file at filename.
func Open(filename string) (image.Image, string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return Decode(f)
}

// Resample scales m to size d. Reduction uses a box filter, box fitting
// uses Lanczos3. An unchanged size returns m itself.
func Resample(m image.Image, d Dimensions, mode ResizeMode) image.Image {
	if DimensionsOf(m) == d || !d.Valid() {
		return m
	}
	if mode == ResizeReduce {
		return imaging.Resize(m, d.Width, d.Height, imaging.Box)
	}
	return resize.Resize(uint(d.Width), uint(d.Height), m, resize.Lanczos3)
}

// ToRGB drops the alpha channel of m, keeping the color values as they
// are. The result is a fully opaque *image.RGBA.
func ToRGB(m image.Image) *image.RGBA {
	dst := imaging.Clone(m)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	// opaque NRGBA pixels are valid RGBA pixels
	return &image.RGBA{Pix: dst.Pix, Stride: dst.Stride, Rect: dst.Rect}
}

// encodable returns m in a pixel layout every JPEG writer accepts:
// *image.YCbCr, *image.Gray or *image.RGBA. Anything else is drawn onto a
// new RGBA buffer.
func encodable(m image.Image) image.Image {
	switch m.(type) {
	case *image.YCbCr, *image.Gray, *image.RGBA:
		return m
	}
	b := m.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), m, b.Min, draw.Src)
	return dst
}

// SaveTo encodes m as JPEG into w and returns the number of bytes written.
func SaveTo(w io.Writer, m image.Image, opt EncodeOptions) (int, error) {
	cw := &CountWriter{w: w}
	if err := encodeJPEG(cw, encodable(m), opt); err != nil {
		return cw.Len(), fmt.Errorf("encode jpeg: %w", err)
	}
	return cw.Len(), nil
}
