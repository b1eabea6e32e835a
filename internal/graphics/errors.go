package graphics

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceNotFound is returned when a shader or texture file is missing.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrDecode is returned when a texture file cannot be decoded.
	ErrDecode = errors.New("unsupported or corrupt image")
)

// CompileError reports a shader stage that failed to compile.
type CompileError struct {
	Stage string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError reports a program that failed to link, usually because the
// stages disagree on their interface variables.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}
