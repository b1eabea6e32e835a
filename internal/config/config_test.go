package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("Expected 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Camera.FOV != 50 || cfg.Camera.Near != 0.1 || cfg.Camera.Far != 100 {
		t.Errorf("Unexpected camera defaults: %+v", cfg.Camera)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.yaml")
	data := `
window:
  width: 1024
  height: 512
cube:
  indexed: true
  spin_speed: 1.5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 512 {
		t.Errorf("Window not overridden: %+v", cfg.Window)
	}
	if !cfg.Cube.Indexed || cfg.Cube.SpinSpeed != 1.5 {
		t.Errorf("Cube not overridden: %+v", cfg.Cube)
	}
	// untouched keys keep their defaults
	if cfg.Cube.Shader != "default" || cfg.Window.Title != "spin-cube" {
		t.Errorf("Defaults lost: %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"syntax": "window: [",
		"size":   "window:\n  height: 0\n",
		"planes": "camera:\n  near: 10\n  far: 1\n",
		"fov":    "camera:\n  fov: 180\n",
	}
	for name, data := range cases {
		path := filepath.Join(dir, name+".yaml")
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
