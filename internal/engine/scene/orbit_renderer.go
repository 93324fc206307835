package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/orrery/internal/engine/shader"
	"github.com/Faultbox/orrery/pkg/math"
)

// orbitColor is the translucent blue of the orbit path loops.
var orbitColor = [4]float32{0.3, 0.3, 0.5, 0.3}

const orbitVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uMVP;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
}
`

const orbitFragmentShader = `
#version 410 core

uniform vec4 uColor;

out vec4 FragColor;

void main() {
	FragColor = uColor;
}
`

type orbitLoop struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// orbitRenderer draws closed line loops, unlit and alpha-blended.
type orbitRenderer struct {
	program  uint32
	locMVP   int32
	locColor int32

	loops []orbitLoop
}

func newOrbitRenderer() (*orbitRenderer, error) {
	or := &orbitRenderer{}

	program, err := shader.CompileProgram(orbitVertexShader, orbitFragmentShader)
	if err != nil {
		return nil, err
	}
	or.program = program
	or.locMVP = shader.GetUniform(program, "uMVP")
	or.locColor = shader.GetUniform(program, "uColor")

	return or, nil
}

// addLoop uploads one closed loop of points. GL_LINE_LOOP closes the loop,
// so the points must not repeat the first one at the end.
func (or *orbitRenderer) addLoop(points []math.Vec3) {
	if len(points) == 0 {
		return
	}

	vertices := make([]float32, 0, len(points)*3)
	for _, p := range points {
		vertices = append(vertices, p.X, p.Y, p.Z)
	}

	var loop orbitLoop
	gl.GenVertexArrays(1, &loop.vao)
	gl.BindVertexArray(loop.vao)

	gl.GenBuffers(1, &loop.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, loop.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	loop.vertexCount = int32(len(points))
	or.loops = append(or.loops, loop)
}

func (or *orbitRenderer) draw(viewProj math.Mat4) {
	if len(or.loops) == 0 {
		return
	}

	gl.UseProgram(or.program)
	gl.UniformMatrix4fv(or.locMVP, 1, false, &viewProj[0])
	gl.Uniform4f(or.locColor, orbitColor[0], orbitColor[1], orbitColor[2], orbitColor[3])

	gl.Enable(gl.BLEND)
	gl.DepthMask(false)

	for _, loop := range or.loops {
		gl.BindVertexArray(loop.vao)
		gl.DrawArrays(gl.LINE_LOOP, 0, loop.vertexCount)
	}

	gl.BindVertexArray(0)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

func (or *orbitRenderer) destroy() {
	for _, loop := range or.loops {
		if loop.vao != 0 {
			gl.DeleteVertexArrays(1, &loop.vao)
		}
		if loop.vbo != 0 {
			gl.DeleteBuffers(1, &loop.vbo)
		}
	}
	if or.program != 0 {
		gl.DeleteProgram(or.program)
	}
}
