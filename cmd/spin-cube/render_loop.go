package main

import (
	"fmt"
	"time"

	renderer "spin-cube/internal/graphics/renderer"
	"spin-cube/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func runRenderLoop(window *glfw.Window, r *renderer.Renderer) {
	frames := 0
	lastFPSCheckTime := time.Now()
	lastTime := glfw.GetTime()

	for !window.ShouldClose() {
		profiling.ResetFrame()
		frameStart := time.Now()

		// elapsed time drives the cube's rotation
		now := glfw.GetTime()
		dt := now - lastTime
		lastTime = now

		r.Render(now, dt)

		func() { defer profiling.Track("glfw.SwapBuffers")(); window.SwapBuffers() }()
		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

		profiling.FrameDone(time.Since(frameStart))
		frames++

		if time.Since(lastFPSCheckTime) >= time.Second {
			fmt.Printf("FPS: %d (%s)\n", frames, profiling.TopN(3))
			frames = 0
			lastFPSCheckTime = time.Now()
		}
	}
}
