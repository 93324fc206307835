package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/orrery/internal/engine/shader"
	"github.com/Faultbox/orrery/pkg/math"
)

// Star appearance.
var (
	starColor = [3]float32{0.8, 0.8, 1.0}
)

const starPointSize = 1.5

const starVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uMVP;
uniform float uPointSize;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
	gl_PointSize = uPointSize;
}
`

const starFragmentShader = `
#version 410 core

uniform vec3 uColor;

out vec4 FragColor;

void main() {
	FragColor = vec4(uColor, 1.0);
}
`

// starfieldRenderer draws the fixed background point cloud, unlit.
type starfieldRenderer struct {
	program      uint32
	locMVP       int32
	locColor     int32
	locPointSize int32

	vao        uint32
	vbo        uint32
	pointCount int32
}

func newStarfieldRenderer() (*starfieldRenderer, error) {
	fr := &starfieldRenderer{}

	program, err := shader.CompileProgram(starVertexShader, starFragmentShader)
	if err != nil {
		return nil, err
	}
	fr.program = program
	fr.locMVP = shader.GetUniform(program, "uMVP")
	fr.locColor = shader.GetUniform(program, "uColor")
	fr.locPointSize = shader.GetUniform(program, "uPointSize")

	return fr, nil
}

// setPoints uploads the star positions, replacing any previous set.
func (fr *starfieldRenderer) setPoints(points []math.Vec3) {
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
		gl.DeleteBuffers(1, &fr.vbo)
		fr.vao, fr.vbo = 0, 0
	}
	fr.pointCount = int32(len(points))
	if len(points) == 0 {
		return
	}

	vertices := make([]float32, 0, len(points)*3)
	for _, p := range points {
		vertices = append(vertices, p.X, p.Y, p.Z)
	}

	gl.GenVertexArrays(1, &fr.vao)
	gl.BindVertexArray(fr.vao)

	gl.GenBuffers(1, &fr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
}

func (fr *starfieldRenderer) draw(viewProj math.Mat4) {
	if fr.pointCount == 0 {
		return
	}

	gl.UseProgram(fr.program)
	gl.UniformMatrix4fv(fr.locMVP, 1, false, &viewProj[0])
	gl.Uniform3f(fr.locColor, starColor[0], starColor[1], starColor[2])
	gl.Uniform1f(fr.locPointSize, starPointSize)

	gl.BindVertexArray(fr.vao)
	gl.DrawArrays(gl.POINTS, 0, fr.pointCount)
	gl.BindVertexArray(0)
}

func (fr *starfieldRenderer) destroy() {
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
	}
	if fr.vbo != 0 {
		gl.DeleteBuffers(1, &fr.vbo)
	}
	if fr.program != 0 {
		gl.DeleteProgram(fr.program)
	}
}
