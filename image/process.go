package image

import (
	"fmt"
	"image"
	"os"

	"github.com/google/uuid"

	"github.com/go-imsto/properjpg/base"
	"github.com/go-imsto/properjpg/naming"
	"github.com/go-imsto/properjpg/utils"
)

// ProcessFile converts the image at src into a JPEG at dst. The extension
// of dst is replaced with .jpg. The parent directory of dst must exist.
//
// The output is written to a temporary file beside dst and renamed into
// place, so a failure never leaves a partial image behind.
func ProcessFile(src, dst string, rs ResizeSpec, opt EncodeOptions, f *Fitter) (*Result, error) {
	logger().Infow("processing", "src", src)

	m, format, err := Open(src)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", utils.AbsPath(src), err)
	}

	res := &Result{
		Src:    src,
		Dst:    naming.ForceExt(dst, base.EtJPEG.Ext()),
		Format: format,
		Orig:   DimensionsOf(m),
	}

	m = Convert(m, format, rs, f)
	res.Final = DimensionsOf(m)

	n, err := writeFile(res.Dst, m, opt)
	if err != nil {
		return nil, err
	}
	res.Bytes = int64(n)
	logger().Debugw("processed", "src", src, "dst", res.Dst, "format", format,
		"orig", res.Orig.String(), "final", res.Final.String(), "bytes", n)
	return res, nil
}

// Convert applies rs to m and makes it suitable for the JPEG encoder.
// format is the decoded source format.
func Convert(m image.Image, format string, rs ResizeSpec, f *Fitter) image.Image {
	orig := DimensionsOf(m)
	if mode := rs.Mode(); mode != ResizeNone {
		m = Resample(m, rs.Target(orig, f), mode)
	}
	if format != jpegFormat {
		m = ToRGB(m)
	}
	return m
}

func writeFile(dst string, m image.Image, opt EncodeOptions) (int, error) {
	tmp := dst + "." + uuid.NewString() + ".tmp"
	out, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, os.FileMode(0644))
	if err != nil {
		return 0, fmt.Errorf("create %q: %w", utils.AbsPath(dst), err)
	}

	n, err := SaveTo(out, m, opt)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, dst)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("write %q: %w", utils.AbsPath(dst), err)
	}
	return n, nil
}
