package app

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"shaderquad/internal/core"
	"shaderquad/internal/shader"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Title        string          `yaml:"title"`
	Width        int             `yaml:"width"`
	Height       int             `yaml:"height"`
	TPS          int             `yaml:"tps"`
	VertexPath   string          `yaml:"vertex"`
	FragmentPath string          `yaml:"fragment"`
	Overlay      bool            `yaml:"overlay"`
	Debug        bool            `yaml:"debug"`
	Bindings     shader.Bindings `yaml:"bindings"`

	// File is a YAML config file; explicit flags override its values.
	File string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Title:    "shaderquad",
		Width:    1024,
		Height:   768,
		TPS:      60,
		Bindings: shader.DefaultBindings(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.Width, "width", c.Width, "initial surface width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial surface height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.VertexPath, "vert", c.VertexPath, "vertex shader file (default: bundled)")
	fs.StringVar(&c.FragmentPath, "frag", c.FragmentPath, "fragment shader file (default: bundled)")
	fs.BoolVar(&c.Overlay, "overlay", c.Overlay, "show the debug overlay at startup")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
	fs.StringVar(&c.Bindings.Position, "attr-position", c.Bindings.Position, "vertex position attribute name")
	fs.StringVar(&c.Bindings.Pointer, "uniform-pointer", c.Bindings.Pointer, "pointer position uniform name")
	fs.StringVar(&c.Bindings.Size, "uniform-size", c.Bindings.Size, "surface size uniform name")
	fs.StringVar(&c.Bindings.Time, "uniform-time", c.Bindings.Time, "elapsed time uniform name")
	fs.StringVar(&c.File, "config", c.File, "YAML config file")
}

// Load applies the config file named by File, if any, then re-applies the
// flags that were set explicitly on fs so they take precedence. fs must
// already be parsed.
func (c *Config) Load(fs *flag.FlagSet) error {
	if c.File == "" {
		return c.Validate()
	}
	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := c.decodeYAML(data); err != nil {
		return fmt.Errorf("config %s: %w", c.File, err)
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("flag -%s: %w", name, err)
		}
	}
	return c.Validate()
}

func (c *Config) decodeYAML(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks the configuration for values the driver cannot use.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid surface size %dx%d", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("invalid tps %d", c.TPS)
	}
	if c.Bindings.Position == "" {
		return errors.New("position attribute name is empty")
	}
	return nil
}

// Size returns the initial surface size.
func (c *Config) Size() core.Size {
	return core.Size{W: c.Width, H: c.Height}
}

// Sources returns the shader sources, reading the configured files and
// falling back to the given defaults for stages without one.
func (c *Config) Sources(vertex, fragment string) (Sources, error) {
	src := Sources{Vertex: vertex, Fragment: fragment}
	if c.VertexPath != "" {
		b, err := os.ReadFile(c.VertexPath)
		if err != nil {
			return Sources{}, fmt.Errorf("vertex shader: %w", err)
		}
		src.Vertex = string(b)
	}
	if c.FragmentPath != "" {
		b, err := os.ReadFile(c.FragmentPath)
		if err != nil {
			return Sources{}, fmt.Errorf("fragment shader: %w", err)
		}
		src.Fragment = string(b)
	}
	return src, nil
}
