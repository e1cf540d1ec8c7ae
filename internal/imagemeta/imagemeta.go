// Package imagemeta probes pixel dimensions of uploaded photos.
package imagemeta

import (
	"fmt"
	"image"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Dimensions returns the "WxH" string for the image data in r, or an error
// when the format cannot be decoded. Callers treat failure as non-fatal and
// store an empty dimensions value.
func Dimensions(r io.Reader) (string, error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return "", fmt.Errorf("failed to decode image config: %w", err)
	}
	return fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), nil
}
