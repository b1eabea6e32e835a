package graphics

import (
	"spin-cube/internal/mesh"

	"github.com/go-gl/mathgl/mgl32"
)

// Device is the subset of the GPU API the renderables need. All calls must
// happen on the thread that owns the GL context.
type Device interface {
	NewVertexBuffer(data []float32) uint32
	NewElementBuffer(indices []uint16) uint32
	NewProgram(vertexSrc, fragmentSrc string) (uint32, error)
	NewVertexArray(program, vbo, ebo uint32, layout []mesh.Attribute, stride int32) (uint32, error)
	NewTexture(img *Image) uint32

	EnableDepthTest()
	EnableBackFaceCulling()
	Viewport(width, height int)
	Clear(color mgl32.Vec4)

	UseProgram(program uint32)
	SetUniformInt(program uint32, name string, value int32)
	SetUniformMat4(program uint32, name string, value mgl32.Mat4)
	BindTexture(unit, texture uint32)
	DrawArrays(vao uint32, count int32)
	DrawElements(vao uint32, count int32)

	DeleteBuffer(id uint32)
	DeleteProgram(id uint32)
	DeleteVertexArray(id uint32)
	DeleteTexture(id uint32)

	// LiveHandles is the number of objects created and not yet deleted.
	LiveHandles() int
}
