package images

import (
	"image"
	"image/color"
	"image/draw"
)

// Placeholder dimensions roughly match the aspect ratio of a poster cell.
const (
	placeholderWidth  = 210
	placeholderHeight = 295
)

// newPlaceholder builds the neutral fallback image returned whenever real
// artwork cannot be obtained.
func newPlaceholder() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, placeholderWidth, placeholderHeight))
	grey := color.RGBA{R: 0x3a, G: 0x3a, B: 0x3c, A: 0xff}
	draw.Draw(img, img.Bounds(), image.NewUniform(grey), image.Point{}, draw.Src)
	return img
}
