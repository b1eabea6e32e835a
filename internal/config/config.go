package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// WindowConfig describes the GLFW window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// CameraConfig holds the fixed camera parameters.
type CameraConfig struct {
	FOV      float32    `yaml:"fov"` // degrees
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position"`
}

// CubeConfig selects the cube's assets.
type CubeConfig struct {
	ShaderDir string  `yaml:"shader_dir"`
	Shader    string  `yaml:"shader"`
	Texture   string  `yaml:"texture"`
	FlipY     bool    `yaml:"flip_y"`
	SpinSpeed float32 `yaml:"spin_speed"` // radians per second
	Indexed   bool    `yaml:"indexed"`
}

// Config is the whole application configuration.
type Config struct {
	Window     WindowConfig `yaml:"window"`
	Camera     CameraConfig `yaml:"camera"`
	Cube       CubeConfig   `yaml:"cube"`
	ClearColor [4]float32   `yaml:"clear_color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "spin-cube",
			VSync:  true,
		},
		Camera: CameraConfig{
			FOV:      50,
			Near:     0.1,
			Far:      100,
			Position: [3]float32{2, 3, 3},
		},
		Cube: CubeConfig{
			ShaderDir: "assets/shaders",
			Shader:    "default",
			Texture:   "assets/textures/test.png",
			FlipY:     true,
			SpinSpeed: 0.5,
		},
		ClearColor: [4]float32{0.08, 0.16, 0.18, 1},
	}
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("could not read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values the renderer cannot work with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180), got %v", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera planes must satisfy 0 < near < far, got %v/%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Cube.Shader == "" {
		return errors.New("cube shader name is empty")
	}
	return nil
}

// EyePosition returns the camera position as a vector.
func (c CameraConfig) EyePosition() mgl32.Vec3 {
	return mgl32.Vec3(c.Position)
}

// ClearColorVec returns the clear color as a vector.
func (c Config) ClearColorVec() mgl32.Vec4 {
	return mgl32.Vec4(c.ClearColor)
}
