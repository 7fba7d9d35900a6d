package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/jsvensson/labtone/internal/adjust"
	"github.com/jsvensson/labtone/internal/color"
)

// execute runs the root command in a scratch directory. Flags keep their
// values between runs, so every test passes the flags it relies on.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name:    "hsl only",
			args:    []string{"convert", "--to", "hsl", "#eb6f92"},
			want:    []string{"hsl(343, 76%, 68%)"},
			notWant: []string{"rgb(", "#eb6f92"},
		},
		{
			name: "all notations",
			args: []string{"convert", "--to", "all", "#ff0000"},
			want: []string{"#ff0000", "rgb(255, 0, 0)", "hsl(0, 100%, 50%)", "hsv(0, 100%, 100%)", "xyz(41.24, 21.26, 1.93)", "lab(53.23% 80.11 67.22)"},
		},
		{
			name: "several colors",
			args: []string{"convert", "--to", "hex", "#000000", "#ffffff"},
			want: []string{"#000000", "#ffffff"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute() error: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("output should not contain %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	if _, err := execute(t, "convert", "--to", "cmyk", "#000000"); err == nil {
		t.Error("expected error for unknown notation")
	}
	if _, err := execute(t, "convert", "--to", "hex", "nope"); err == nil {
		t.Error("expected error for invalid color")
	}
}

func TestAdjust(t *testing.T) {
	tests := []struct {
		name     string
		contrast string
		expose   string
		in       color.Color
	}{
		{"identity", "0", "0", color.Color{R: 235, G: 111, B: 146}},
		{"both", "0.5", "0.5", color.Color{R: 128, G: 128, B: 128}},
		{"darker", "-0.3", "-0.6", color.Color{R: 49, G: 116, B: 143}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "adjust", "--contrast", tt.contrast, "--expose", tt.expose, tt.in.Hex())
			if err != nil {
				t.Fatalf("execute() error: %v", err)
			}

			var o adjust.Options
			o.Contrast, _ = strconv.ParseFloat(tt.contrast, 64)
			o.Expose, _ = strconv.ParseFloat(tt.expose, 64)
			want := adjust.Color(tt.in, o).Hex()
			if !strings.Contains(out, tt.in.Hex()+" -> ") || !strings.HasSuffix(strings.TrimSpace(out), want) {
				t.Errorf("output %q, want %s -> ... %s", out, tt.in.Hex(), want)
			}
		})
	}

	if _, err := execute(t, "adjust", "--contrast", "2", "--expose", "0", "#808080"); err == nil {
		t.Error("expected error for contrast out of range")
	}
}

func TestFmt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.hcl")
	if err := os.WriteFile(path, []byte(`palette{base="#191724"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "fmt", "--check", path)
	if err == nil {
		t.Error("--check should fail for an unformatted file")
	}
	if !strings.Contains(out, path) {
		t.Errorf("--check should list the file, got %q", out)
	}

	if _, err := execute(t, "fmt", "--check=false", path); err != nil {
		t.Fatalf("fmt error: %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != `palette { base = "#191724" }` {
		t.Errorf("formatted content = %q", got)
	}

	if _, err := execute(t, "fmt", "--check", path); err != nil {
		t.Errorf("--check after formatting: %v", err)
	}
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	palette := filepath.Join(dir, "palette.hcl")
	if err := os.WriteFile(palette, []byte("palette {\n  base = \"#191724\"\n}\n\ntheme {\n  background = palette.base\n}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tmplDir := filepath.Join(dir, "templates")
	if err := os.Mkdir(tmplDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmplDir, "bg.tmpl"), []byte(`{{ hex .Theme.background }}`), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "out")

	if _, err := execute(t, "generate", "--palette", palette, "--templates", tmplDir, "--out", outDir); err != nil {
		t.Fatalf("generate error: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(outDir, "bg"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "#191724" {
		t.Errorf("rendered %q, want #191724", got)
	}
}
