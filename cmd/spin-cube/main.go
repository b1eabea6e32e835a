package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"spin-cube/internal/camera"
	"spin-cube/internal/config"
	"spin-cube/internal/graphics"
	"spin-cube/internal/graphics/renderables/cube"
	renderer "spin-cube/internal/graphics/renderer"
	"spin-cube/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "spin-cube.yaml", "YAML config file; defaults are used if it does not exist")
	flag.Parse()

	closer.Bind(func() {
		log.Printf("Shutdown: %s", profiling.Summary())
	})

	cfg, err := config.Load(*configPath)
	if err != nil {
		closer.Fatalln(err)
	}

	if err := run(cfg); err != nil {
		closer.Fatalln(err)
	}
	closer.Close()
}

func run(cfg config.Config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	dev := graphics.NewGLDevice()
	cam := camera.New(cfg.Window.Width, cfg.Window.Height,
		camera.WithPosition(cfg.Camera.EyePosition()),
		camera.WithFOV(cfg.Camera.FOV),
		camera.WithClipPlanes(cfg.Camera.Near, cfg.Camera.Far),
	)

	cubeRenderer := cube.New(dev, cube.Options{
		ShaderDir:   cfg.Cube.ShaderDir,
		ShaderName:  cfg.Cube.Shader,
		TexturePath: cfg.Cube.Texture,
		FlipY:       cfg.Cube.FlipY,
		SpinSpeed:   cfg.Cube.SpinSpeed,
		Indexed:     cfg.Cube.Indexed,
	})

	r, err := renderer.NewRenderer(dev, cam, cfg.ClearColorVec(), cubeRenderer)
	if err != nil {
		return err
	}
	defer func() {
		r.Dispose()
		if n := dev.LiveHandles(); n != 0 {
			log.Printf("Warning: %d GPU objects still alive after dispose", n)
		} else {
			log.Printf("Released all GPU objects")
		}
	}()

	setupInputHandlers(window, r)
	r.UpdateViewport(window.GetFramebufferSize())

	runRenderLoop(window, r)
	return nil
}
