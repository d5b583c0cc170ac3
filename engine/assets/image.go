package assets

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
)

// LoadPNG decodes a PNG into tightly packed RGBA pixels. Rows are returned
// bottom-first so they match the texture origin the renderer expects.
func LoadPNG(path string) (pixels []uint8, width, height int32, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("opening texture %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decoding texture %s: %w", path, err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)

	w, h := bounds.Dx(), bounds.Dy()
	rowLen := 4 * w
	flipped := make([]uint8, h*rowLen)
	for y := 0; y < h; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+rowLen]
		copy(flipped[(h-1-y)*rowLen:], row)
	}

	return flipped, int32(w), int32(h), nil
}
