package adjust

import (
	"context"
	"errors"
	"image"
	imgcolor "image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsvensson/labtone/internal/color"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 9))
	for y := range 9 {
		for x := range 16 {
			img.SetNRGBA(x, y, imgcolor.NRGBA{
				R: uint8(x * 16),
				G: uint8(y * 28),
				B: uint8((x + y) * 10),
				A: 255,
			})
		}
	}
	img.SetNRGBA(0, 0, imgcolor.NRGBA{R: 200, G: 100, B: 50, A: 0})
	img.SetNRGBA(1, 0, imgcolor.NRGBA{R: 200, G: 100, B: 50, A: 128})
	return img
}

func opaqueImage() *image.NRGBA {
	img := testImage()
	img.SetNRGBA(0, 0, imgcolor.NRGBA{R: 200, G: 100, B: 50, A: 255})
	img.SetNRGBA(1, 0, imgcolor.NRGBA{R: 200, G: 100, B: 50, A: 255})
	return img
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestImageIdentity(t *testing.T) {
	src := testImage()
	got, err := Image(context.Background(), src, Options{})
	if err != nil {
		t.Fatalf("Image() error: %v", err)
	}
	if string(got.Pix) != string(src.Pix) {
		t.Error("identity options changed pixels")
	}
	if &got.Pix[0] == &src.Pix[0] {
		t.Error("Image() must not alias the source")
	}
}

func TestImageMatchesColor(t *testing.T) {
	src := testImage()
	opts := Options{Contrast: 0.4, Expose: -0.2, Workers: 3}

	got, err := Image(context.Background(), src, opts)
	if err != nil {
		t.Fatalf("Image() error: %v", err)
	}

	for y := range 9 {
		for x := range 16 {
			in := src.NRGBAAt(x, y)
			out := got.NRGBAAt(x, y)
			if out.A != in.A {
				t.Fatalf("(%d, %d): alpha %d, want %d", x, y, out.A, in.A)
			}
			if in.A == 0 {
				if out != in {
					t.Errorf("(%d, %d): transparent pixel changed to %v", x, y, out)
				}
				continue
			}
			want := Color(color.Color{R: in.R, G: in.G, B: in.B}, opts)
			// Pixels are computed in single precision.
			if absDiff(out.R, want.R) > 1 || absDiff(out.G, want.G) > 1 || absDiff(out.B, want.B) > 1 {
				t.Errorf("(%d, %d): got %v, want about %v", x, y, out, want)
			}
		}
	}
}

func TestImageWorkerCountIrrelevant(t *testing.T) {
	src := testImage()
	one, err := Image(context.Background(), src, Options{Contrast: 0.7, Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	many, err := Image(context.Background(), src, Options{Contrast: 0.7, Workers: 8})
	if err != nil {
		t.Fatal(err)
	}
	if string(one.Pix) != string(many.Pix) {
		t.Error("results differ between worker counts")
	}
}

func TestImageCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Image(ctx, testImage(), Options{Expose: 0.5}); !errors.Is(err, context.Canceled) {
		t.Errorf("Image() error = %v, want context.Canceled", err)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"zero", Options{}, false},
		{"limits", Options{Contrast: -1, Expose: 1}, false},
		{"contrast high", Options{Contrast: 1.01}, true},
		{"expose low", Options{Expose: -3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if _, err := Image(context.Background(), testImage(), Options{Contrast: 2}); err == nil {
		t.Error("Image() accepted out-of-range contrast")
	}
}

func TestColor(t *testing.T) {
	love := color.Color{R: 235, G: 111, B: 146}
	if got := Color(love, Options{}); got != love {
		t.Errorf("Color(identity) = %v, want %v", got, love)
	}
	if got, want := Color(love, Options{Contrast: 0.5}), color.Contrast(love, 0.5); got != want {
		t.Errorf("Color(contrast) = %v, want %v", got, want)
	}
	if got, want := Color(love, Options{Expose: -0.5}), color.Expose(love, -0.5); got != want {
		t.Errorf("Color(expose) = %v, want %v", got, want)
	}
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFile(t *testing.T) {
	in := writePNG(t, opaqueImage())
	opts := Options{Contrast: 0.3, Expose: 0.1}

	for _, ext := range []string{".png", ".bmp", ".tiff", ".jpg", ".gif"} {
		t.Run(ext, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "out"+ext)
			if err := File(context.Background(), in, out, opts); err != nil {
				t.Fatalf("File() error: %v", err)
			}

			f, err := os.Open(out)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			img, _, err := image.Decode(f)
			if err != nil {
				t.Fatalf("decoding output: %v", err)
			}
			if img.Bounds() != image.Rect(0, 0, 16, 9) {
				t.Errorf("bounds = %v", img.Bounds())
			}

			entries, _ := os.ReadDir(filepath.Dir(out))
			if len(entries) != 1 {
				t.Errorf("output directory holds %d entries, want only the output", len(entries))
			}
		})
	}
}

func TestFileLosslessMatchesImage(t *testing.T) {
	src := testImage()
	in := writePNG(t, src)
	out := filepath.Join(t.TempDir(), "out.png")
	opts := Options{Contrast: -0.5}

	if err := File(context.Background(), in, out, opts); err != nil {
		t.Fatalf("File() error: %v", err)
	}
	want, err := Image(context.Background(), src, opts)
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	for y := range 9 {
		for x := 1; x < 16; x++ {
			if g := imgcolor.NRGBAModel.Convert(got.At(x, y)); g != want.NRGBAAt(x, y) {
				t.Fatalf("(%d, %d) = %v, want %v", x, y, g, want.NRGBAAt(x, y))
			}
		}
	}
}

func TestFileErrors(t *testing.T) {
	in := writePNG(t, testImage())
	dir := t.TempDir()

	err := File(context.Background(), in, filepath.Join(dir, "out.xcf"), Options{})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("unsupported extension: error = %v, want ErrUnsupportedFormat", err)
	}

	if err := File(context.Background(), filepath.Join(dir, "missing.png"), filepath.Join(dir, "out.png"), Options{}); err == nil {
		t.Error("expected error for missing input")
	}

	notImage := filepath.Join(dir, "text.png")
	if err := os.WriteFile(notImage, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := File(context.Background(), notImage, filepath.Join(dir, "out.png"), Options{}); err == nil {
		t.Error("expected decode error")
	}
	if _, err := os.Stat(filepath.Join(dir, "out.png")); err == nil {
		t.Error("failed run left an output file")
	}
}
