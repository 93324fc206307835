// Package texture provides procedural texture generation and image utilities.
package texture

import (
	"image"
	"image/color"
)

// ImageToRGBA converts any image to RGBA, optionally flipping it vertically.
// OpenGL expects the first row of texture data to be the bottom of the
// image, so textures decoded from files are flipped on upload.
func ImageToRGBA(img image.Image, flipV bool) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	h := bounds.Dy()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		dstY := y
		if flipV {
			dstY = bounds.Min.Y + (h - 1 - (y - bounds.Min.Y))
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.At(x, y)
			r16, g16, b16, a16 := c.RGBA()
			rgba.SetRGBA(x, dstY, color.RGBA{
				R: uint8(r16 >> 8),
				G: uint8(g16 >> 8),
				B: uint8(b16 >> 8),
				A: uint8(a16 >> 8),
			})
		}
	}

	return rgba
}
