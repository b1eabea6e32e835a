package renderer

import (
	"spin-cube/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext carries everything a renderable needs for one frame.
// Time is the application's elapsed time in seconds.
type RenderContext struct {
	Camera *camera.Camera
	View   mgl32.Mat4
	Proj   mgl32.Mat4
	Time   float64
	DT     float64
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
