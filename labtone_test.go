package labtone

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testPalette = `
meta {
  name       = "Test Palette"
  appearance = "dark"
}

palette {
  base = "#191724"
  love = "#eb6f92"

  highlight {
    low  = darken(palette.love, 0.2)
    high = mix(palette.base, palette.love, 0.5)
  }
}

theme {
  background = palette.base
  accent     = contrast(palette.love, 0.3)
}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "palette.hcl", testPalette)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.Meta.Name != "Test Palette" {
		t.Errorf("Meta.Name = %q", p.Meta.Name)
	}
	if got := p.Theme["background"].Hex(); got != "#191724" {
		t.Errorf("theme.background = %s, want #191724", got)
	}
	if _, err := p.Palette.Lookup([]string{"highlight", "high"}); err != nil {
		t.Errorf("Lookup(highlight.high): %v", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: got %v, want fs.ErrNotExist", err)
	}
	if err == nil || !strings.HasPrefix(err.Error(), "loading palette:") {
		t.Errorf("error should be prefixed, got %v", err)
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "palette.hcl", testPalette)

	tmplDir := filepath.Join(dir, "templates")
	if err := os.Mkdir(tmplDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, tmplDir, "app.conf.tmpl", `name={{ .Meta.Name }}
bg={{ hex .Theme.background }}
love={{ hex "palette.love" }}
low={{ palette "highlight.low" | hex }}
`)
	writeFile(t, tmplDir, "other.tmpl", `{{ hexBare "palette.base" }}`)

	outDir := filepath.Join(dir, "out")
	e := &Engine{TemplatesDir: tmplDir, OutputDir: outDir, Apps: []string{"app.conf"}}
	if err := Generate(path, e); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(outDir, "app.conf"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"name=Test Palette", "bg=#191724", "love=#eb6f92", "low=#"} {
		if !strings.Contains(string(got), want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	if _, err := os.Stat(filepath.Join(outDir, "other")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("filtered template was rendered: %v", err)
	}
}
