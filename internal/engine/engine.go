// Package engine renders text templates against a loaded palette.
package engine

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/jsvensson/labtone/internal/color"
	"github.com/jsvensson/labtone/internal/parser"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("labtone.engine")

// Engine loads and executes Go templates against a resolved palette.
type Engine struct {
	TemplatesDir string
	OutputDir    string
	Apps         []string // if non-empty, only render these template basenames
}

// Run loads all .tmpl files from the templates directory, executes them
// with the given palette, and writes output files.
func (e *Engine) Run(p *parser.Result) error {
	pattern := filepath.Join(e.TemplatesDir, "*.tmpl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no .tmpl files found in %s", e.TemplatesDir)
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data := buildTemplateData(p)

	for _, tmplPath := range matches {
		baseName := strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")

		if !e.shouldRender(baseName) {
			log.Debugf("skipping %s", baseName)
			continue
		}

		if err := e.renderTemplate(tmplPath, baseName, data); err != nil {
			return err
		}
	}

	return nil
}

func (e *Engine) shouldRender(name string) bool {
	if len(e.Apps) == 0 {
		return true
	}
	return slices.Contains(e.Apps, name)
}

func (e *Engine) renderTemplate(tmplPath, outputName string, data templateData) error {
	tmpl, err := template.New(filepath.Base(tmplPath)).
		Option("missingkey=error").
		Funcs(data.FuncMap).
		ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	outPath := filepath.Join(e.OutputDir, outputName)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplPath, err)
	}

	log.Infof("wrote %s", outPath)
	return nil
}

// templateData is the data passed to templates.
type templateData struct {
	Meta    parser.Meta
	Palette *color.Node
	Theme   map[string]color.Color
	FuncMap template.FuncMap
}

// resolveColorPath resolves a dot-notation path such as "palette.base",
// "palette.highlight.low" or "theme.background" to a Color.
func resolveColorPath(path string, data templateData) (color.Color, error) {
	parts := strings.Split(path, ".")
	if len(parts) < 2 {
		return color.Color{}, fmt.Errorf("invalid path %q: must be block.name format", path)
	}

	block := parts[0]
	rest := parts[1:]

	switch block {
	case "palette":
		if data.Palette == nil {
			return color.Color{}, fmt.Errorf("palette path not found: %s", path)
		}
		c, err := data.Palette.Lookup(rest)
		if err != nil {
			return color.Color{}, fmt.Errorf("%s: %w", path, err)
		}
		return c, nil

	case "theme":
		if len(rest) != 1 {
			return color.Color{}, fmt.Errorf("theme paths must be single-level: %s", path)
		}
		c, ok := data.Theme[rest[0]]
		if !ok {
			return color.Color{}, fmt.Errorf("theme color not found: %s", rest[0])
		}
		return c, nil

	default:
		return color.Color{}, fmt.Errorf("unknown block %q (valid: palette, theme)", block)
	}
}

// toColor accepts either a Color or a dot path naming one.
func toColor(v any, data templateData) (color.Color, error) {
	switch v := v.(type) {
	case color.Color:
		return v, nil
	case *color.Color:
		if v == nil {
			return color.Color{}, fmt.Errorf("nil color")
		}
		return *v, nil
	case string:
		if strings.HasPrefix(v, "#") {
			return color.ParseHex(v)
		}
		return resolveColorPath(v, data)
	default:
		return color.Color{}, fmt.Errorf("expected color or path, got %T", v)
	}
}

// toFloat accepts the numeric kinds text/template produces for literals.
func toFloat(v any) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}

// span bounds a numeric template argument. Template functions accept the
// same ranges as the palette functions of the same name.
type span struct {
	lo, hi float64
}

var (
	unchecked = span{math.Inf(-1), math.Inf(1)}
	strength  = span{-1, 1}
	weight    = span{0, 1}
)

func (r span) number(fn string, v any) (float64, error) {
	x, err := toFloat(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", fn, err)
	}
	if x < r.lo || x > r.hi {
		return 0, fmt.Errorf("%s: must be between %g and %g, got %g", fn, r.lo, r.hi, x)
	}
	return x, nil
}

func buildTemplateData(p *parser.Result) templateData {
	data := templateData{
		Meta:    p.Meta,
		Palette: p.Palette,
		Theme:   p.Theme,
	}

	format := func(f func(color.Color) string) func(any) (string, error) {
		return func(v any) (string, error) {
			c, err := toColor(v, data)
			if err != nil {
				return "", err
			}
			return f(c), nil
		}
	}
	adjust := func(name string, r span, f func(color.Color, float64) color.Color) func(any, any) (color.Color, error) {
		return func(v, amount any) (color.Color, error) {
			c, err := toColor(v, data)
			if err != nil {
				return color.Color{}, err
			}
			x, err := r.number(name, amount)
			if err != nil {
				return color.Color{}, err
			}
			return f(c, x), nil
		}
	}

	data.FuncMap = template.FuncMap{
		"hex":     format(color.Color.Hex),
		"hexBare": format(color.Color.HexBare),
		"rgb":     format(color.Color.RGB),
		"hsl":     format(color.Color.HSL),
		"hsv":     format(color.Color.HSV),
		"lab":     format(color.Color.LabString),
		"palette": func(path string) (color.Color, error) {
			return resolveColorPath("palette."+path, data)
		},
		"brighten":   adjust("brighten", unchecked, color.Brighten),
		"darken":     adjust("darken", unchecked, color.Darken),
		"saturate":   adjust("saturate", unchecked, color.Saturate),
		"desaturate": adjust("desaturate", unchecked, color.Desaturate),
		"rotate":     adjust("rotate", unchecked, color.Rotate),
		"contrast":   adjust("contrast", strength, color.Contrast),
		"expose":     adjust("expose", strength, color.Expose),
		"mix": func(a, b, t any) (color.Color, error) {
			ca, err := toColor(a, data)
			if err != nil {
				return color.Color{}, err
			}
			cb, err := toColor(b, data)
			if err != nil {
				return color.Color{}, err
			}
			x, err := weight.number("mix", t)
			if err != nil {
				return color.Color{}, err
			}
			return color.Mix(ca, cb, x), nil
		},
	}

	return data
}
