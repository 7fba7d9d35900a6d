// Package labtone turns a single HCL palette file into application themes
// and adjusts colors and images in a perceptual Lab space.
package labtone

import (
	"fmt"

	"github.com/jsvensson/labtone/internal/engine"
	"github.com/jsvensson/labtone/internal/parser"
)

// Palette is a fully-resolved palette file, ready for template rendering.
type Palette = parser.Result

// Meta holds palette metadata.
type Meta = parser.Meta

// Engine renders templates against a Palette.
type Engine = engine.Engine

// Load parses an HCL palette file and returns the resolved Palette.
func Load(path string) (*Palette, error) {
	p, err := parser.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("loading palette: %w", err)
	}
	return p, nil
}

// Generate loads the palette at path and renders it with e.
func Generate(path string, e *Engine) error {
	p, err := Load(path)
	if err != nil {
		return err
	}
	if err := e.Run(p); err != nil {
		return fmt.Errorf("generating: %w", err)
	}
	return nil
}
