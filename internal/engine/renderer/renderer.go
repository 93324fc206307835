// Package renderer provides OpenGL state management for the simulator.
package renderer

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/texture"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/pkg/math"
)

// Projection parameters.
const (
	FovYDegrees = 45.0
	NearPlane   = 0.1
	FarPlane    = 10000.0
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns graphics-API state: global GL setup, the projection
// matrix, and texture objects.
type Renderer struct {
	config Config
	proj   math.Mat4
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.01, 0.01, 0.02, 1.0) // deep space black

	r.updateProjection()

	return r, nil
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.updateProjection()
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

func (r *Renderer) updateProjection() {
	aspect := float32(r.config.Width) / float32(r.config.Height)
	r.proj = math.Perspective(math.Radians(FovYDegrees), aspect, NearPlane, FarPlane)
}

// Projection returns the current projection matrix.
func (r *Renderer) Projection() math.Mat4 {
	return r.proj
}

// Begin starts a new frame by clearing color and depth buffers.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// LoadTexture reads an image file and uploads it as a mipmapped GL texture.
func (r *Renderer) LoadTexture(path string) (uint32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading texture %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("decoding texture %s: %w", path, err)
	}

	rgba := texture.ImageToRGBA(img, true)
	return r.uploadTexture(rgba), nil
}

func (r *Renderer) uploadTexture(img *image.RGBA) uint32 {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	return texID
}
