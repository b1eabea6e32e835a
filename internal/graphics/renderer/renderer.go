package renderer

import (
	"spin-cube/internal/camera"
	"spin-cube/internal/graphics"
	"spin-cube/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	dev         graphics.Device
	renderables []Renderable
	camera      *camera.Camera
	clearColor  mgl32.Vec4
}

// NewRenderer configures the fixed GL state and initializes every renderable
// in order. If one fails, the ones already initialized are disposed.
func NewRenderer(dev graphics.Device, cam *camera.Camera, clearColor mgl32.Vec4, rs ...Renderable) (*Renderer, error) {
	dev.EnableDepthTest()
	dev.EnableBackFaceCulling()

	for i, r := range rs {
		if err := r.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
	}

	return &Renderer{
		dev:         dev,
		renderables: rs,
		camera:      cam,
		clearColor:  clearColor,
	}, nil
}

// Render draws one frame at the given elapsed time.
func (r *Renderer) Render(elapsed, dt float64) {
	defer profiling.Track("renderer.Render")()

	r.dev.Clear(r.clearColor)

	ctx := RenderContext{
		Camera: r.camera,
		View:   r.camera.View,
		Proj:   r.camera.Proj,
		Time:   elapsed,
		DT:     dt,
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// UpdateViewport resizes the GL viewport and, if the aspect ratio changed,
// the camera projection seen by every renderable.
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.dev.Viewport(width, height)
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
