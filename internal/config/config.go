// Package config loads the optional project file that supplies defaults
// for the labtone commands. Command-line flags override its values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// DefaultFile is looked up in the working directory when no project file
// is given explicitly.
const DefaultFile = "labtone.hcl"

// Config is the decoded project file.
type Config struct {
	Generate Generate
	Image    Image
}

// Generate holds defaults for the generate command.
type Generate struct {
	Palette   string   `hcl:"palette,optional"`
	Templates string   `hcl:"templates,optional"`
	Out       string   `hcl:"out,optional"`
	Apps      []string `hcl:"apps,optional"`
}

// Image holds defaults for the image and adjust commands.
type Image struct {
	Contrast float64 `hcl:"contrast,optional"`
	Expose   float64 `hcl:"expose,optional"`
	Workers  int     `hcl:"workers,optional"`
}

type file struct {
	Generate *Generate `hcl:"generate,block"`
	Image    *Image    `hcl:"image,block"`
}

// Load reads the project file at path. An empty path means DefaultFile,
// which may be absent; an explicitly named file must exist.
// Relative paths inside the file are resolved against its directory.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	src, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(src, path)
	if err != nil {
		return nil, err
	}
	cfg.resolvePaths(filepath.Dir(path))
	return cfg, nil
}

// Parse decodes project file content without touching the filesystem.
func Parse(src []byte, filename string) (*Config, error) {
	f, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config: %s", diags.Error())
	}

	var raw file
	if diags := gohcl.DecodeBody(f.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config: %s", diags.Error())
	}

	cfg := &Config{}
	if raw.Generate != nil {
		cfg.Generate = *raw.Generate
	}
	if raw.Image != nil {
		cfg.Image = *raw.Image
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Image.Contrast < -1 || c.Image.Contrast > 1 {
		return fmt.Errorf("image.contrast must be between -1 and 1, got %g", c.Image.Contrast)
	}
	if c.Image.Expose < -1 || c.Image.Expose > 1 {
		return fmt.Errorf("image.expose must be between -1 and 1, got %g", c.Image.Expose)
	}
	if c.Image.Workers < 0 {
		return fmt.Errorf("image.workers must not be negative, got %d", c.Image.Workers)
	}
	return nil
}

func (c *Config) resolvePaths(dir string) {
	for _, p := range []*string{&c.Generate.Palette, &c.Generate.Templates, &c.Generate.Out} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}
