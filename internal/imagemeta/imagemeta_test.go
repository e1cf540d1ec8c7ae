package imagemeta

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensions(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	require.NoError(t, png.Encode(&buf, img))

	dims, err := Dimensions(&buf)
	assert.NoError(t, err)
	assert.Equal(t, "640x480", dims)
}

func TestDimensionsInvalidData(t *testing.T) {
	_, err := Dimensions(strings.NewReader("definitely not an image"))
	assert.Error(t, err)
}
