package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	gomath "math"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/logger"
)

// DefaultSize is the default texture resolution (square).
const DefaultSize = 256

// pixelFunc computes the color of one pixel from its coordinates.
// Every generator is a pure deterministic function of (x, y, size), so
// regeneration always produces identical images.
type pixelFunc func(x, y, size int) color.RGBA

var generators = map[string]pixelFunc{
	"sun":     sunPixel,
	"mercury": mercuryPixel,
	"venus":   venusPixel,
	"earth":   earthPixel,
	"mars":    marsPixel,
	"jupiter": jupiterPixel,
	"saturn":  saturnPixel,
}

// bodyNames is the fixed generation order.
var bodyNames = []string{"sun", "mercury", "venus", "earth", "mars", "jupiter", "saturn"}

// Names returns the body names with procedural textures.
func Names() []string {
	names := make([]string, len(bodyNames))
	copy(names, bodyNames)
	return names
}

// Generate produces the procedural texture for the named body.
func Generate(name string, size int) (*image.RGBA, error) {
	fn, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("no texture generator for %q", name)
	}
	if size <= 0 {
		size = DefaultSize
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, fn(x, y, size))
		}
	}
	return img, nil
}

// GenerateAll writes one PNG per known body into dir. Regeneration is
// idempotent: the same inputs always yield byte-identical images.
func GenerateAll(dir string, size int) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating texture dir: %w", err)
	}

	logger.Info("generating planet textures", zap.String("dir", dir), zap.Int("size", size))

	for _, name := range bodyNames {
		img, err := Generate(name, size)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, name+".png")
		if err := writePNG(path, img); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// sunPixel is a radial gradient from yellow through orange to black.
func sunPixel(x, y, size int) color.RGBA {
	center := float64(size / 2)
	dx := float64(x) - center
	dy := float64(y) - center
	dist := gomath.Sqrt(dx*dx + dy*dy)

	intensity := 1.0 - gomath.Pow(dist/center, 0.8)
	if intensity < 0 {
		intensity = 0
	}

	return color.RGBA{
		R: clamp8(255 * intensity),
		G: clamp8(200 * intensity * 0.8),
		B: clamp8(50 * intensity * 0.3),
		A: 255,
	}
}

// mercuryPixel is grey with crater-like variation.
func mercuryPixel(x, y, _ int) color.RGBA {
	noise := gomath.Sin(float64(x)*0.02)*gomath.Cos(float64(y)*0.02)*0.5 + 0.5
	noise += gomath.Sin(float64(x)*0.005) * 0.2

	grey := 140 + 60*noise
	return color.RGBA{R: clamp8(grey), G: clamp8(grey), B: clamp8(grey - 20), A: 255}
}

// venusPixel is yellow-orange cloud cover.
func venusPixel(x, y, _ int) color.RGBA {
	noise := (gomath.Sin(float64(x)*0.01)+gomath.Cos(float64(y)*0.01))*0.3 + 0.7

	return color.RGBA{
		R: clamp8(230 * noise),
		G: clamp8(200 * noise),
		B: clamp8(100 * noise * 0.7),
		A: 255,
	}
}

// earthPixel thresholds low-frequency noise into land and ocean.
func earthPixel(x, y, _ int) color.RGBA {
	noise := gomath.Sin(float64(x)*0.02) * gomath.Cos(float64(y)*0.02)
	noise += gomath.Sin(float64(x)*0.001) * 0.5

	if noise > 0.3 { // land
		return color.RGBA{
			R: clamp8(100 + 80*(noise-0.3)),
			G: clamp8(150 + 60*(noise-0.3)),
			B: 50,
			A: 255,
		}
	}
	// ocean
	return color.RGBA{
		R: 20,
		G: clamp8(100 + 80*(0.3-noise)),
		B: clamp8(180 + 60*(0.3-noise)),
		A: 255,
	}
}

// marsPixel is rust-red with gentle variation.
func marsPixel(x, y, _ int) color.RGBA {
	noise := gomath.Sin(float64(x)*0.015)*gomath.Cos(float64(y)*0.015)*0.5 + 0.5

	return color.RGBA{
		R: clamp8(180 + 50*noise),
		G: clamp8(100 + 30*noise),
		B: clamp8(60 + 20*noise),
		A: 255,
	}
}

// jupiterPixel blends horizontal bands.
func jupiterPixel(x, y, size int) color.RGBA {
	bandPos := float64(y) / float64(size) * 10
	band := gomath.Abs(gomath.Sin(bandPos*2*gomath.Pi))*0.5 + 0.5
	noise := gomath.Sin(float64(x)*0.01)*0.3 + 0.7

	return color.RGBA{
		R: clamp8(200*band + 100*(1-band)),
		G: clamp8(150*band + 80*(1-band)),
		B: clamp8(80 + 40*noise),
		A: 255,
	}
}

// saturnPixel is pale with subtle banding.
func saturnPixel(x, y, size int) color.RGBA {
	bandPos := float64(y) / float64(size) * 5
	band := gomath.Abs(gomath.Sin(bandPos*gomath.Pi))*0.2 + 0.8
	noise := (gomath.Sin(float64(x)*0.01)+gomath.Cos(float64(y)*0.01))*0.1 + 0.9

	return color.RGBA{
		R: clamp8(220 * noise * band),
		G: clamp8(210 * noise * band),
		B: clamp8(190 * noise * band),
		A: 255,
	}
}
