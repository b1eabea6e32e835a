package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultFOV  = 50.0 // degrees
	DefaultNear = 0.1
	DefaultFar  = 100.0
)

// Camera holds a fixed eye looking at the origin and the matrices derived
// from it.
type Camera struct {
	Position    mgl32.Vec3
	Target      mgl32.Vec3
	Up          mgl32.Vec3
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32

	View mgl32.Mat4
	Proj mgl32.Mat4
}

// Option tweaks a camera before its matrices are computed.
type Option func(*Camera)

func WithPosition(pos mgl32.Vec3) Option {
	return func(c *Camera) { c.Position = pos }
}

func WithFOV(degrees float32) Option {
	return func(c *Camera) { c.FOV = degrees }
}

func WithClipPlanes(near, far float32) Option {
	return func(c *Camera) {
		c.NearPlane = near
		c.FarPlane = far
	}
}

// New creates a camera for a width x height viewport. A non-positive size
// gives a square aspect ratio.
func New(width, height int, opts ...Option) *Camera {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	c := &Camera{
		Position:    mgl32.Vec3{2, 3, 3},
		Up:          mgl32.Vec3{0, 1, 0},
		AspectRatio: aspect,
		FOV:         DefaultFOV,
		NearPlane:   DefaultNear,
		FarPlane:    DefaultFar,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.View = c.ComputeView()
	c.Proj = c.ComputeProjection()
	return c
}

// ComputeView returns the look-at matrix. Up must not be parallel to the
// view direction.
func (c *Camera) ComputeView() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) ComputeProjection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// SetViewport recomputes the projection if the aspect ratio changed.
// It reports whether it did.
func (c *Camera) SetViewport(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	aspect := float32(width) / float32(height)
	if aspect == c.AspectRatio {
		return false
	}
	c.AspectRatio = aspect
	c.Proj = c.ComputeProjection()
	return true
}
