package cube

import (
	"spin-cube/internal/graphics"
	renderer "spin-cube/internal/graphics/renderer"
	"spin-cube/internal/mesh"
	"spin-cube/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const DefaultSpinSpeed = 0.5 // radians per second

// Options selects the cube's assets and draw mode.
type Options struct {
	ShaderDir   string
	ShaderName  string // loads <ShaderDir>/<ShaderName>.vert and .frag
	TexturePath string
	FlipY       bool
	SpinSpeed   float32
	Indexed     bool // draw 36 elements over de-duplicated vertices
}

// Cube is a textured cube spinning around the Y axis. It owns its vertex
// buffer, optional element buffer, shader program, vertex array and texture.
type Cube struct {
	dev  graphics.Device
	opts Options

	shader  *graphics.Shader
	vbo     uint32
	ebo     uint32
	vao     uint32
	texture uint32
	count   int32

	model   mgl32.Mat4
	proj    mgl32.Mat4
	hasProj bool
}

// New creates a cube renderable. GPU resources are acquired by Init.
// A zero SpinSpeed means DefaultSpinSpeed.
func New(dev graphics.Device, opts Options) *Cube {
	if opts.SpinSpeed == 0 {
		opts.SpinSpeed = DefaultSpinSpeed
	}
	return &Cube{
		dev:   dev,
		opts:  opts,
		model: mgl32.Ident4(),
	}
}

// ModelMatrix is the cube's model transform at the given elapsed time.
func ModelMatrix(elapsed float64, speed float32) mgl32.Mat4 {
	return mgl32.Ident4().Mul4(mgl32.HomogRotate3D(float32(elapsed)*speed, mgl32.Vec3{0, 1, 0}))
}

// Init acquires every GPU resource. On failure whatever was already
// acquired is released before the error is returned.
func (c *Cube) Init() (err error) {
	defer func() {
		if err != nil {
			c.Dispose()
		}
	}()

	if c.opts.Indexed {
		vertices, indices := mesh.BuildIndexed()
		c.vbo = c.dev.NewVertexBuffer(vertices)
		c.ebo = c.dev.NewElementBuffer(indices)
		c.count = int32(len(indices))
	} else {
		data := mesh.BuildVertexData()
		c.vbo = c.dev.NewVertexBuffer(data)
		c.count = int32(len(data) / mesh.VertexSize)
	}

	c.shader, err = graphics.NewShader(c.dev, c.opts.ShaderDir, c.opts.ShaderName)
	if err != nil {
		return err
	}

	c.vao, err = c.dev.NewVertexArray(c.shader.ID, c.vbo, c.ebo, mesh.Layout, mesh.Stride)
	if err != nil {
		return err
	}

	img, err := graphics.DecodeTexture(c.opts.TexturePath, c.opts.FlipY)
	if err != nil {
		return err
	}
	c.texture = c.dev.NewTexture(img)

	c.shader.SetInt("u_texture_0", 0)
	c.dev.BindTexture(0, c.texture)
	c.model = mgl32.Ident4()
	c.shader.SetMatrix4("m_model", c.model)

	return nil
}

// Render rotates the cube to ctx.Time and draws it with ctx's view.
// The projection is uploaded on the first frame and whenever it changes.
// Before Init or after Dispose it draws nothing.
func (c *Cube) Render(ctx renderer.RenderContext) {
	if c.shader == nil {
		return
	}
	defer profiling.Track("cube.Render")()

	if !c.hasProj || ctx.Proj != c.proj {
		c.shader.SetMatrix4("m_proj", ctx.Proj)
		c.proj = ctx.Proj
		c.hasProj = true
	}

	c.model = ModelMatrix(ctx.Time, c.opts.SpinSpeed)
	c.shader.SetMatrix4("m_model", c.model)
	c.shader.SetMatrix4("m_view", ctx.View)

	c.shader.Use()
	c.dev.BindTexture(0, c.texture)
	if c.ebo != 0 {
		c.dev.DrawElements(c.vao, c.count)
	} else {
		c.dev.DrawArrays(c.vao, c.count)
	}
}

// Model returns the model matrix used by the last Render.
func (c *Cube) Model() mgl32.Mat4 {
	return c.model
}

// SetViewport is a no-op; the projection arrives through the render context.
func (c *Cube) SetViewport(width, height int) {}

// Dispose releases all GPU resources. Calling it again does nothing.
func (c *Cube) Dispose() {
	if c.texture != 0 {
		c.dev.DeleteTexture(c.texture)
		c.texture = 0
	}
	if c.vao != 0 {
		c.dev.DeleteVertexArray(c.vao)
		c.vao = 0
	}
	if c.shader != nil {
		c.shader.Delete()
		c.shader = nil
	}
	if c.ebo != 0 {
		c.dev.DeleteBuffer(c.ebo)
		c.ebo = 0
	}
	if c.vbo != 0 {
		c.dev.DeleteBuffer(c.vbo)
		c.vbo = 0
	}
	c.hasProj = false
}
