// Package parser loads palette files: a meta block, a palette of possibly
// nested colors, and a flat theme block mapping roles to palette colors.
package parser

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/labtone/internal/color"
	"github.com/jsvensson/labtone/internal/theme"
)

// Result holds the fully-resolved contents of a palette file.
type Result struct {
	Meta    Meta
	Palette *color.Node
	Theme   map[string]color.Color
}

// Meta holds palette metadata.
type Meta struct {
	Name       string `hcl:"name,optional"`
	Author     string `hcl:"author,optional"`
	Appearance string `hcl:"appearance,optional"`
	URL        string `hcl:"url,optional"`
}

// ColorBlock wraps a block with arbitrary color attributes for gohcl decoding.
type ColorBlock struct {
	Entries hcl.Body `hcl:",remain"`
}

// File is the top-level schema of a palette file.
type File struct {
	Meta    *Meta       `hcl:"meta,block"`
	Palette *ColorBlock `hcl:"palette,block"`
	Theme   *ColorBlock `hcl:"theme,block"`
}

// Parse reads and parses the palette file at path.
func Parse(path string) (*Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	return ParseSource(src, path)
}

// ParseSource parses palette file content. filename is only used in
// error messages.
func ParseSource(src []byte, filename string) (*Result, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	// Meta holds literals only, so no evaluation context is needed. The
	// palette and theme bodies are kept raw and evaluated below.
	var raw File
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding: %s", diags.Error())
	}

	if raw.Palette == nil {
		return nil, fmt.Errorf("no palette block found")
	}
	paletteBody, ok := raw.Palette.Entries.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("palette block is not an hclsyntax.Body")
	}

	var failed firstError
	palette := EvalPalette(paletteBody, &failed)
	if failed.err != nil {
		return nil, fmt.Errorf("parsing palette: %w", failed.err)
	}

	var err error
	themeColors := make(map[string]color.Color)
	if raw.Theme != nil {
		themeColors, err = decodeColorBlock(raw.Theme.Entries, theme.BuildEvalContext(palette))
		if err != nil {
			return nil, fmt.Errorf("parsing theme: %w", err)
		}
	}

	meta := Meta{}
	if raw.Meta != nil {
		meta = *raw.Meta
	}

	return &Result{
		Meta:    meta,
		Palette: palette,
		Theme:   themeColors,
	}, nil
}

// decodeColorBlock evaluates every attribute of a flat block to a color.
// Attributes are visited by name so the reported error is deterministic.
func decodeColorBlock(body hcl.Body, ctx *hcl.EvalContext) (map[string]color.Color, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("getting attributes: %s", diags.Error())
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make(map[string]color.Color, len(attrs))
	for _, name := range names {
		val, diags := attrs[name].Expr.Value(ctx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating %s: %s", name, diags.Error())
		}
		c, err := theme.ParseValue(val)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		result[name] = c
	}
	return result, nil
}
