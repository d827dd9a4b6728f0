package image

import (
	"errors"
)

var (
	ErrorFormat       = errors.New("invalid or unsupported image format")
	ErrResizeConflict = errors.New("reduce can't be combined with max-width or max-height")
	ErrNegativeSize   = errors.New("negative resize value")
	ErrQuality        = errors.New("quality out of range")
)
