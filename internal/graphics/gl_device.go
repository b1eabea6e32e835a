package graphics

import (
	"fmt"
	"strings"

	"spin-cube/internal/mesh"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// GLDevice implements Device on top of OpenGL 4.1 core. gl.Init must have
// been called on the current thread.
type GLDevice struct {
	live int
}

func NewGLDevice() *GLDevice {
	return &GLDevice{}
}

func (d *GLDevice) NewVertexBuffer(data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	d.live++
	return vbo
}

func (d *GLDevice) NewElementBuffer(indices []uint16) uint32 {
	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	d.live++
	return ebo
}

func (d *GLDevice) NewProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// shaders can be deleted after linking
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, &LinkError{Log: strings.TrimRight(log, "\x00")}
	}

	d.live++
	return program, nil
}

func (d *GLDevice) NewVertexArray(program, vbo, ebo uint32, layout []mesh.Attribute, stride int32) (uint32, error) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if ebo != 0 {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	}

	for _, attr := range layout {
		loc := gl.GetAttribLocation(program, gl.Str(attr.Name+"\x00"))
		if loc < 0 {
			gl.BindVertexArray(0)
			gl.DeleteVertexArrays(1, &vao)
			return 0, fmt.Errorf("vertex attribute %q is not active in program %d", attr.Name, program)
		}
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointerWithOffset(uint32(loc), attr.Size, gl.FLOAT, false, stride, uintptr(attr.Offset))
	}

	// unbind the VAO first so it keeps its element buffer binding
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	d.live++
	return vao, nil
}

func (d *GLDevice) NewTexture(img *Image) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// RGB rows are not necessarily 4-byte aligned
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGB8,
		int32(img.Width),
		int32(img.Height),
		0,
		gl.RGB,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	d.live++
	return texture
}

func (d *GLDevice) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
}

func (d *GLDevice) EnableBackFaceCulling() {
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
}

func (d *GLDevice) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *GLDevice) Clear(color mgl32.Vec4) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *GLDevice) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *GLDevice) SetUniformInt(program uint32, name string, value int32) {
	gl.UseProgram(program)
	gl.Uniform1i(gl.GetUniformLocation(program, gl.Str(name+"\x00")), value)
}

func (d *GLDevice) SetUniformMat4(program uint32, name string, value mgl32.Mat4) {
	gl.UseProgram(program)
	gl.UniformMatrix4fv(gl.GetUniformLocation(program, gl.Str(name+"\x00")), 1, false, &value[0])
}

func (d *GLDevice) BindTexture(unit, texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

func (d *GLDevice) DrawArrays(vao uint32, count int32) {
	gl.BindVertexArray(vao)
	gl.DrawArrays(gl.TRIANGLES, 0, count)
}

func (d *GLDevice) DrawElements(vao uint32, count int32) {
	gl.BindVertexArray(vao)
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_SHORT, gl.PtrOffset(0))
}

func (d *GLDevice) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
	d.live--
}

func (d *GLDevice) DeleteProgram(id uint32) {
	gl.DeleteProgram(id)
	d.live--
}

func (d *GLDevice) DeleteVertexArray(id uint32) {
	gl.DeleteVertexArrays(1, &id)
	d.live--
}

func (d *GLDevice) DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
	d.live--
}

func (d *GLDevice) LiveHandles() int {
	return d.live
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, &CompileError{Stage: stageName(shaderType), Log: strings.TrimRight(log, "\x00")}
	}
	return shader, nil
}

func stageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%x", shaderType)
}
