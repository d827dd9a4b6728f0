package base

import (
	"strings"
)

// ImagExt ...
type ImagExt byte

const (
	EtNone ImagExt = iota
	EtGIF
	EtJPEG
	EtPNG
	EtWEBP
	EtBMP
	EtTIFF
)

func (z ImagExt) String() string {
	switch z {
	case EtGIF:
		return "gif"
	case EtJPEG:
		return "jpeg"
	case EtPNG:
		return "png"
	case EtWEBP:
		return "webp"
	case EtBMP:
		return "bmp"
	case EtTIFF:
		return "tiff"
	}
	return "unknown"
}

// Ext returns the canonical file extension with its leading dot, or an
// empty string for EtNone.
func (z ImagExt) Ext() string {
	switch z {
	case EtJPEG:
		return ".jpg"
	case EtTIFF:
		return ".tif"
	case EtNone:
		return ""
	}
	return "." + z.String()
}

// MarshalText implements the encoding.TextMarshaler interface.
func (z ImagExt) MarshalText() ([]byte, error) {
	b := []byte(z.String())
	return b, nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *ImagExt) UnmarshalText(data []byte) error {
	*z = ParseExt(string(data))
	return nil
}

// ParseExt accepts a format name, an extension or a file name.
func ParseExt(s string) ImagExt {
	if pos := strings.LastIndex(s, "."); pos != -1 && pos < len(s) {
		s = s[pos+1:]
	}
	switch strings.ToLower(s) {
	case "gif":
		return EtGIF
	case "jpeg", "jpg", "jpe":
		return EtJPEG
	case "png":
		return EtPNG
	case "webp":
		return EtWEBP
	case "bmp":
		return EtBMP
	case "tiff", "tif":
		return EtTIFF
	}
	return EtNone
}
