package demo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/solarlune/glcube"
	"github.com/solarlune/glcube/colors"
)

// Config holds everything the demo programs can be configured with. Files only need to set the fields they want
// to change; the rest keep the values of DefaultConfig.
type Config struct {
	Window     glcube.WindowConfig `yaml:"window"`
	FPS        int                 `yaml:"fps"`
	ClearColor ClearColor          `yaml:"clear_color"`
	Scene      Scene               `yaml:"scene"`
	// Dialect and Uniforms take the names accepted by glcube.ParseDialect and glcube.ParseUniformMode.
	Dialect  string `yaml:"dialect"`
	Uniforms string `yaml:"uniforms"`
	// MinifyShaders strips comments and whitespace from shader sources before compiling them.
	MinifyShaders bool `yaml:"minify_shaders"`
	// Texture is an image file for the textured scenes; a checkerboard is generated when it's empty.
	Texture string `yaml:"texture"`
	// Model is a glTF file whose first mesh replaces the cube in the cube scenes.
	Model    string     `yaml:"model"`
	LogLevel slog.Level `yaml:"log_level"`

	// SpinSpeed is how fast the cubes turn, in radians per second.
	SpinSpeed float32 `yaml:"spin_speed"`
	// CameraSpeed is how fast the arrow keys move the camera, in units per second.
	CameraSpeed float32 `yaml:"camera_speed"`
	// BobHeight and BobSeconds shape the up-and-down motion of the bobbing cube.
	BobHeight  float32 `yaml:"bob_height"`
	BobSeconds float32 `yaml:"bob_seconds"`
}

// DefaultConfig returns the configuration used when no file is given: the textured cube scene at 60 FPS on a
// cornflower blue background.
func DefaultConfig() Config {
	return Config{
		Window:      glcube.DefaultWindowConfig(),
		FPS:         glcube.DefaultFPS,
		ClearColor:  ClearColor(colors.CornflowerBlue()),
		Scene:       SceneTexturedCube,
		Dialect:     glcube.DialectGLSL330.String(),
		Uniforms:    glcube.UniformCalls.String(),
		LogLevel:    slog.LevelInfo,
		SpinSpeed:   1,
		CameraSpeed: 4,
		BobHeight:   0.75,
		BobSeconds:  1.5,
	}
}

// LoadConfig reads a YAML configuration file over the defaults and validates it.
func LoadConfig(path string) (Config, error) {
	return LoadConfigOver(DefaultConfig(), path)
}

// LoadConfigOver reads a YAML configuration file over base and validates it.
func LoadConfigOver(base Config, path string) (Config, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("demo: reading config: %w", err)
	}

	cfg, err := ParseConfigOver(base, data)
	if err != nil {
		return Config{}, fmt.Errorf("demo: config %s: %w", path, err)
	}

	return cfg, nil

}

// ParseConfig decodes YAML configuration data over the defaults and validates the result. Unknown fields are an error.
func ParseConfig(data []byte) (Config, error) {
	return ParseConfigOver(DefaultConfig(), data)
}

// ParseConfigOver decodes YAML configuration data over base; fields the data leaves out keep base's values.
func ParseConfigOver(base Config, data []byte) (Config, error) {

	cfg := base
	cfg.Window.ContextVersions = slices.Clone(base.Window.ContextVersions)

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	// An empty document leaves the defaults as they are.
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil

}

// Validate checks that the configuration describes something the demo can run.
func (cfg Config) Validate() error {

	if cfg.FPS <= 0 {
		return fmt.Errorf("fps must be positive, not %d", cfg.FPS)
	}

	if err := cfg.Window.Validate(); err != nil {
		return err
	}

	if !cfg.Scene.Valid() {
		return fmt.Errorf("unknown scene %q (want one of %s)", cfg.Scene, strings.Join(sceneNames(), ", "))
	}

	dialect, err := glcube.ParseDialect(cfg.Dialect)
	if err != nil {
		return err
	}

	uniforms, err := glcube.ParseUniformMode(cfg.Uniforms)
	if err != nil {
		return err
	}

	if cfg.Scene == SceneUniformBlock {
		uniforms = glcube.UniformBlock
	}

	if uniforms == glcube.UniformBlock {
		if dialect == glcube.DialectGLSL100 {
			return errors.New("uniform blocks need the glsl330 dialect")
		}
		if cfg.Scene == SceneTriangle || cfg.Scene == SceneColorCube {
			return fmt.Errorf("scene %q has no uniform block variant", cfg.Scene)
		}
	}

	if cfg.BobSeconds <= 0 {
		return fmt.Errorf("bob_seconds must be positive, not %g", cfg.BobSeconds)
	}

	return nil

}

// ShaderDialect returns the parsed Dialect. Only call it on a validated Config.
func (cfg Config) ShaderDialect() glcube.Dialect {
	d, _ := glcube.ParseDialect(cfg.Dialect)
	return d
}

// UniformMode returns the parsed UniformMode; the uniform block scene always uses UniformBlock. Only call it on a
// validated Config.
func (cfg Config) UniformMode() glcube.UniformMode {
	if cfg.Scene == SceneUniformBlock {
		return glcube.UniformBlock
	}
	m, _ := glcube.ParseUniformMode(cfg.Uniforms)
	return m
}

// ClearColor is a glcube.Color that can be written in YAML either as a color name ("cornflowerblue") or as a
// list of 3 or 4 channel values ([0.39, 0.58, 0.92]).
type ClearColor glcube.Color

// Color returns the ClearColor as a glcube.Color.
func (c ClearColor) Color() glcube.Color {
	return glcube.Color(c)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ClearColor) UnmarshalYAML(value *yaml.Node) error {

	switch value.Kind {

	case yaml.ScalarNode:
		color, ok := colors.ByName(value.Value)
		if !ok {
			return fmt.Errorf("line %d: unknown color name %q", value.Line, value.Value)
		}
		*c = ClearColor(color)
		return nil

	case yaml.SequenceNode:
		var channels []float32
		if err := value.Decode(&channels); err != nil {
			return err
		}
		switch len(channels) {
		case 3:
			*c = ClearColor(glcube.NewColor(channels[0], channels[1], channels[2], 1))
		case 4:
			*c = ClearColor(glcube.NewColor(channels[0], channels[1], channels[2], channels[3]))
		default:
			return fmt.Errorf("line %d: a color needs 3 or 4 channels, not %d", value.Line, len(channels))
		}
		return nil

	}

	return fmt.Errorf("line %d: a color must be a name or a list of channels", value.Line)

}

// MarshalYAML implements yaml.Marshaler.
func (c ClearColor) MarshalYAML() (any, error) {
	return []float32{c.R, c.G, c.B, c.A}, nil
}
