package renderer_test

import (
	"errors"
	"testing"

	"spin-cube/internal/camera"
	"spin-cube/internal/graphics/graphicstest"
	renderer "spin-cube/internal/graphics/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

type recorder struct {
	name    string
	log     *[]string
	initErr error
	last    renderer.RenderContext
	size    [2]int
}

func (r *recorder) Init() error {
	*r.log = append(*r.log, "init "+r.name)
	return r.initErr
}

func (r *recorder) Render(ctx renderer.RenderContext) {
	*r.log = append(*r.log, "render "+r.name)
	r.last = ctx
}

func (r *recorder) Dispose() {
	*r.log = append(*r.log, "dispose "+r.name)
}

func (r *recorder) SetViewport(width, height int) {
	r.size = [2]int{width, height}
}

func TestRendererLifecycleOrder(t *testing.T) {
	var log []string
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}

	dev := graphicstest.NewDevice()
	cam := camera.New(800, 600)
	r, err := renderer.NewRenderer(dev, cam, mgl32.Vec4{0, 0, 0, 1}, a, b)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	if !dev.Depth || !dev.Culling {
		t.Errorf("Expected depth test and culling to be enabled")
	}

	r.Render(1.25, 0.016)
	r.Dispose()

	want := []string{"init a", "init b", "render a", "render b", "dispose b", "dispose a"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, log)
		}
	}

	if dev.Clears != 1 {
		t.Errorf("Expected one clear per frame, got %d", dev.Clears)
	}
	if b.last.Time != 1.25 || b.last.View != cam.View || b.last.Proj != cam.Proj {
		t.Errorf("Render context not populated: %+v", b.last)
	}
}

func TestRendererInitFailureRollsBack(t *testing.T) {
	var log []string
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log, initErr: errors.New("boom")}
	c := &recorder{name: "c", log: &log}

	_, err := renderer.NewRenderer(graphicstest.NewDevice(), camera.New(800, 600), mgl32.Vec4{}, a, b, c)
	if err == nil {
		t.Fatalf("Expected init error")
	}

	want := []string{"init a", "init b", "dispose a"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, log)
		}
	}
}

func TestUpdateViewport(t *testing.T) {
	var log []string
	a := &recorder{name: "a", log: &log}
	dev := graphicstest.NewDevice()
	cam := camera.New(800, 600)

	r, err := renderer.NewRenderer(dev, cam, mgl32.Vec4{}, a)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	defer r.Dispose()

	r.UpdateViewport(1200, 600)
	if dev.ViewportSize != [2]int{1200, 600} || a.size != [2]int{1200, 600} {
		t.Errorf("Viewport not forwarded: device %v, renderable %v", dev.ViewportSize, a.size)
	}
	if cam.AspectRatio != 2 {
		t.Errorf("Expected aspect 2, got %f", cam.AspectRatio)
	}

	r.UpdateViewport(0, 0)
	if dev.ViewportSize != [2]int{1200, 600} {
		t.Errorf("Minimized window must not change the viewport")
	}
}
