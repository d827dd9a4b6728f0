//go:build !cgo

package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncoderMarkers(t *testing.T) {
	assert.False(t, SupportsProgressive())

	for _, rs := range []ResizeSpec{{}, {MaxWidth: 32}, {Reduce: 2}} {
		for _, fromJPEG := range []bool{false, true} {
			got := encodedMarker(t, rs, DefaultEncodeOptions(), fromJPEG)
			assert.Equal(t, byte(sofBaseline), got, "%s jpeg=%v", rs, fromJPEG)
		}
	}
}
