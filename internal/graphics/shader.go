package graphics

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
)

// Shader is a linked program bound to the device that owns it.
type Shader struct {
	ID  uint32
	dev Device
}

// LoadShaderSources reads <dir>/<name>.vert and <dir>/<name>.frag.
func LoadShaderSources(dir, name string) (vertex, fragment string, err error) {
	vertex, err = readSource(filepath.Join(dir, name+".vert"))
	if err != nil {
		return "", "", err
	}
	fragment, err = readSource(filepath.Join(dir, name+".frag"))
	if err != nil {
		return "", "", err
	}
	return vertex, fragment, nil
}

// NewShader compiles and links the shader pair called name in dir.
func NewShader(dev Device, dir, name string) (*Shader, error) {
	vertexSource, fragmentSource, err := LoadShaderSources(dir, name)
	if err != nil {
		return nil, err
	}

	program, err := dev.NewProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", name, err)
	}

	return &Shader{ID: program, dev: dev}, nil
}

// Use activates the shader program
func (s *Shader) Use() {
	s.dev.UseProgram(s.ID)
}

// SetInt sets an integer uniform
func (s *Shader) SetInt(name string, value int32) {
	s.dev.SetUniformInt(s.ID, name, value)
}

// SetMatrix4 sets a 4x4 matrix uniform
func (s *Shader) SetMatrix4(name string, value mgl32.Mat4) {
	s.dev.SetUniformMat4(s.ID, name, value)
}

// Delete releases the program. The shader must not be used afterwards.
func (s *Shader) Delete() {
	s.dev.DeleteProgram(s.ID)
	s.ID = 0
}

func readSource(path string) (string, error) {
	src, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("could not read shader file %s: %w", path, ErrResourceNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("could not read shader file %s: %v", path, err)
	}
	return string(src), nil
}
