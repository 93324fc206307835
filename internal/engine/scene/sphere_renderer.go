package scene

import (
	gomath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/orrery/internal/engine/lighting"
	"github.com/Faultbox/orrery/internal/engine/shader"
	"github.com/Faultbox/orrery/pkg/math"
)

// Sphere tessellation detail.
const (
	sphereStacks = 32
	sphereSlices = 32
)

const sphereVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 uMVP;
uniform mat4 uModel;

out vec3 vWorldPos;
out vec3 vNormal;
out vec2 vTexCoord;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
	vWorldPos = (uModel * vec4(aPos, 1.0)).xyz;
	vNormal = mat3(uModel) * aNormal;
	vTexCoord = aTexCoord;
}
`

const sphereFragmentShader = `
#version 410 core

in vec3 vWorldPos;
in vec3 vNormal;
in vec2 vTexCoord;

uniform sampler2D uTexture;
uniform int uUseTexture;
uniform vec3 uColor;
uniform int uEmissive;
uniform vec3 uLightPos;
uniform vec3 uAmbient;
uniform vec3 uDiffuse;
uniform vec3 uGlobalAmbient;

out vec4 FragColor;

void main() {
	vec3 base = uUseTexture == 1 ? texture(uTexture, vTexCoord).rgb : uColor;

	if (uEmissive == 1) {
		FragColor = vec4(base, 1.0);
		return;
	}

	vec3 n = normalize(vNormal);
	vec3 l = normalize(uLightPos - vWorldPos);
	float diff = max(dot(n, l), 0.0);
	vec3 lit = (uGlobalAmbient + uAmbient + uDiffuse * diff) * base;
	FragColor = vec4(min(lit, vec3(1.0)), 1.0);
}
`

// sphereRenderer draws a shared unit sphere mesh under per-draw transforms.
type sphereRenderer struct {
	program uint32

	locMVP           int32
	locModel         int32
	locTexture       int32
	locUseTexture    int32
	locColor         int32
	locEmissive      int32
	locLightPos      int32
	locAmbient       int32
	locDiffuse       int32
	locGlobalAmbient int32

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

func newSphereRenderer() (*sphereRenderer, error) {
	sr := &sphereRenderer{}

	program, err := shader.CompileProgram(sphereVertexShader, sphereFragmentShader)
	if err != nil {
		return nil, err
	}
	sr.program = program

	sr.locMVP = shader.GetUniform(program, "uMVP")
	sr.locModel = shader.GetUniform(program, "uModel")
	sr.locTexture = shader.GetUniform(program, "uTexture")
	sr.locUseTexture = shader.GetUniform(program, "uUseTexture")
	sr.locColor = shader.GetUniform(program, "uColor")
	sr.locEmissive = shader.GetUniform(program, "uEmissive")
	sr.locLightPos = shader.GetUniform(program, "uLightPos")
	sr.locAmbient = shader.GetUniform(program, "uAmbient")
	sr.locDiffuse = shader.GetUniform(program, "uDiffuse")
	sr.locGlobalAmbient = shader.GetUniform(program, "uGlobalAmbient")

	vertices, indices := buildUnitSphere(sphereStacks, sphereSlices)
	sr.uploadMesh(vertices, indices)

	return sr, nil
}

// buildUnitSphere tessellates a unit sphere into interleaved vertices
// (position, normal, texcoord) and triangle indices. On a unit sphere the
// normal equals the position.
func buildUnitSphere(stacks, slices int) ([]float32, []uint32) {
	var vertices []float32
	var indices []uint32

	for stack := 0; stack <= stacks; stack++ {
		phi := gomath.Pi * float64(stack) / float64(stacks)
		y := gomath.Cos(phi)
		ringRadius := gomath.Sin(phi)

		for slice := 0; slice <= slices; slice++ {
			theta := 2 * gomath.Pi * float64(slice) / float64(slices)
			x := ringRadius * gomath.Sin(theta)
			z := ringRadius * gomath.Cos(theta)

			u := float32(slice) / float32(slices)
			v := 1 - float32(stack)/float32(stacks)

			vertices = append(vertices,
				float32(x), float32(y), float32(z), // position
				float32(x), float32(y), float32(z), // normal
				u, v,
			)
		}
	}

	ringStride := uint32(slices + 1)
	for stack := 0; stack < stacks; stack++ {
		for slice := 0; slice < slices; slice++ {
			i0 := uint32(stack)*ringStride + uint32(slice)
			i1 := i0 + ringStride

			indices = append(indices,
				i0, i1, i0+1,
				i0+1, i1, i1+1,
			)
		}
	}

	return vertices, indices
}

func (sr *sphereRenderer) uploadMesh(vertices []float32, indices []uint32) {
	gl.GenVertexArrays(1, &sr.vao)
	gl.BindVertexArray(sr.vao)

	gl.GenBuffers(1, &sr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	stride := int32(8 * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &sr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, sr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	sr.indexCount = int32(len(indices))
	gl.BindVertexArray(0)
}

func (sr *sphereRenderer) draw(viewProj, model math.Mat4, surf Surface, emissive bool, light lighting.Light) {
	gl.UseProgram(sr.program)

	mvp := viewProj.Mul(model)
	gl.UniformMatrix4fv(sr.locMVP, 1, false, &mvp[0])
	gl.UniformMatrix4fv(sr.locModel, 1, false, &model[0])

	if surf.Kind == SurfaceTextured {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, surf.Texture)
		gl.Uniform1i(sr.locTexture, 0)
		gl.Uniform1i(sr.locUseTexture, 1)
	} else {
		gl.Uniform1i(sr.locUseTexture, 0)
		gl.Uniform3f(sr.locColor, surf.Color[0], surf.Color[1], surf.Color[2])
	}

	if emissive {
		gl.Uniform1i(sr.locEmissive, 1)
	} else {
		gl.Uniform1i(sr.locEmissive, 0)
	}

	gl.Uniform3f(sr.locLightPos, light.Position[0], light.Position[1], light.Position[2])
	gl.Uniform3f(sr.locAmbient, light.Ambient[0], light.Ambient[1], light.Ambient[2])
	gl.Uniform3f(sr.locDiffuse, light.Diffuse[0], light.Diffuse[1], light.Diffuse[2])
	ga := lighting.GlobalAmbient
	gl.Uniform3f(sr.locGlobalAmbient, ga[0], ga[1], ga[2])

	gl.BindVertexArray(sr.vao)
	gl.DrawElements(gl.TRIANGLES, sr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (sr *sphereRenderer) destroy() {
	if sr.vao != 0 {
		gl.DeleteVertexArrays(1, &sr.vao)
	}
	if sr.vbo != 0 {
		gl.DeleteBuffers(1, &sr.vbo)
	}
	if sr.ebo != 0 {
		gl.DeleteBuffers(1, &sr.ebo)
	}
	if sr.program != 0 {
		gl.DeleteProgram(sr.program)
	}
}
