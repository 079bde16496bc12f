package glcube

import (
	"fmt"
	"strconv"
	"strings"
)

// GLVersion is an OpenGL context version, written "major.minor" in configuration files.
type GLVersion struct {
	Major, Minor int
}

func (v GLVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseGLVersion parses a "major.minor" version string.
func ParseGLVersion(s string) (GLVersion, error) {

	major, minor, found := strings.Cut(strings.TrimSpace(s), ".")
	if !found {
		return GLVersion{}, fmt.Errorf("invalid GL version %q: want major.minor", s)
	}

	var v GLVersion
	var err error

	if v.Major, err = strconv.Atoi(major); err != nil {
		return GLVersion{}, fmt.Errorf("invalid GL version %q: %w", s, err)
	}
	if v.Minor, err = strconv.Atoi(minor); err != nil {
		return GLVersion{}, fmt.Errorf("invalid GL version %q: %w", s, err)
	}

	// Core profiles start at 3.2; the renderer needs 3.3 for layout-qualified attributes and uniform blocks.
	if v.Major < 3 || (v.Major == 3 && v.Minor < 3) {
		return GLVersion{}, fmt.Errorf("GL version %s is too old, 3.3 is the minimum", v)
	}

	return v, nil

}

// MarshalText implements encoding.TextMarshaler.
func (v GLVersion) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *GLVersion) UnmarshalText(text []byte) error {
	parsed, err := ParseGLVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// WindowConfig describes the window a host opens.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// FitMonitor sizes the window to the primary monitor's video mode instead of Width x Height.
	FitMonitor bool `yaml:"fit_monitor"`
	VSync      bool `yaml:"vsync"`
	// ContextVersions are tried in order until the driver creates a core profile context for one of them.
	ContextVersions []GLVersion `yaml:"context_versions"`
}

// DefaultWindowConfig returns a vsynced 640x480 window that asks for a 4.1 core context, then 3.3.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:           "glcube",
		Width:           640,
		Height:          480,
		VSync:           true,
		ContextVersions: []GLVersion{{4, 1}, {3, 3}},
	}
}

// Validate reports settings a host couldn't open a window with.
func (cfg WindowConfig) Validate() error {
	if !cfg.FitMonitor && (cfg.Width <= 0 || cfg.Height <= 0) {
		return fmt.Errorf("window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	if len(cfg.ContextVersions) == 0 {
		return fmt.Errorf("window needs at least one context version")
	}
	return nil
}
