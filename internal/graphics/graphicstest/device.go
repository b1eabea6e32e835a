// Package graphicstest provides an in-memory graphics.Device for tests that
// run without a GL context.
package graphicstest

import (
	"fmt"

	"spin-cube/internal/graphics"
	"spin-cube/internal/mesh"

	"github.com/go-gl/mathgl/mgl32"
)

// Draw records one draw call.
type Draw struct {
	VAO     uint32
	Count   int32
	Indexed bool
}

// Device tracks every handle it hands out. Set the Fail fields to make the
// matching constructor return an error.
type Device struct {
	FailProgram     error
	FailVertexArray error

	next         uint32
	live         map[uint32]string
	Deleted      []string
	Uniforms     map[string]any
	Draws        []Draw
	Bound        map[uint32]uint32 // texture unit -> texture
	Buffers      map[uint32][]float32
	Elements     map[uint32][]uint16
	Clears       int
	ViewportSize [2]int
	Depth        bool
	Culling      bool
}

var _ graphics.Device = (*Device)(nil)

func NewDevice() *Device {
	return &Device{
		live:     make(map[uint32]string),
		Uniforms: make(map[string]any),
		Bound:    make(map[uint32]uint32),
		Buffers:  make(map[uint32][]float32),
		Elements: make(map[uint32][]uint16),
	}
}

func (d *Device) alloc(kind string) uint32 {
	d.next++
	d.live[d.next] = kind
	return d.next
}

func (d *Device) release(id uint32, kind string) {
	if got, ok := d.live[id]; !ok || got != kind {
		panic(fmt.Sprintf("graphicstest: delete of unknown %s %d", kind, id))
	}
	delete(d.live, id)
	d.Deleted = append(d.Deleted, kind)
}

func (d *Device) NewVertexBuffer(data []float32) uint32 {
	id := d.alloc("buffer")
	d.Buffers[id] = append([]float32(nil), data...)
	return id
}

func (d *Device) NewElementBuffer(indices []uint16) uint32 {
	id := d.alloc("buffer")
	d.Elements[id] = append([]uint16(nil), indices...)
	return id
}

func (d *Device) NewProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	if d.FailProgram != nil {
		return 0, d.FailProgram
	}
	return d.alloc("program"), nil
}

func (d *Device) NewVertexArray(program, vbo, ebo uint32, layout []mesh.Attribute, stride int32) (uint32, error) {
	if d.FailVertexArray != nil {
		return 0, d.FailVertexArray
	}
	return d.alloc("vertexarray"), nil
}

func (d *Device) NewTexture(img *graphics.Image) uint32 {
	return d.alloc("texture")
}

func (d *Device) EnableDepthTest() { d.Depth = true }
func (d *Device) EnableBackFaceCulling() { d.Culling = true }
func (d *Device) Viewport(w, h int) { d.ViewportSize = [2]int{w, h} }
func (d *Device) Clear(mgl32.Vec4) { d.Clears++ }

func (d *Device) UseProgram(program uint32) {}

func (d *Device) SetUniformInt(program uint32, name string, value int32) {
	d.Uniforms[name] = value
}

func (d *Device) SetUniformMat4(program uint32, name string, value mgl32.Mat4) {
	d.Uniforms[name] = value
}

func (d *Device) BindTexture(unit, texture uint32) {
	d.Bound[unit] = texture
}

func (d *Device) DrawArrays(vao uint32, count int32) {
	d.Draws = append(d.Draws, Draw{VAO: vao, Count: count})
}

func (d *Device) DrawElements(vao uint32, count int32) {
	d.Draws = append(d.Draws, Draw{VAO: vao, Count: count, Indexed: true})
}

func (d *Device) DeleteBuffer(id uint32) { d.release(id, "buffer") }
func (d *Device) DeleteProgram(id uint32) { d.release(id, "program") }
func (d *Device) DeleteVertexArray(id uint32) { d.release(id, "vertexarray") }
func (d *Device) DeleteTexture(id uint32) { d.release(id, "texture") }

func (d *Device) LiveHandles() int {
	return len(d.live)
}

// Mat4 returns the last matrix written to the named uniform.
func (d *Device) Mat4(name string) (mgl32.Mat4, bool) {
	m, ok := d.Uniforms[name].(mgl32.Mat4)
	return m, ok
}
