package adjust

import (
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Encoders by lower-case file extension.
var encoders = map[string]func(io.Writer, image.Image) error{
	".png": func(w io.Writer, img image.Image) error {
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	},
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".gif": func(w io.Writer, img image.Image) error {
		return gif.Encode(w, img, nil)
	},
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// Encoder returns the encoder for path's extension.
func Encoder(path string) (func(io.Writer, image.Image) error, error) {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return enc, nil
}

// File decodes the image at in (png, jpeg, gif, bmp, tiff or webp), adjusts
// it and writes it to out in the format named by out's extension. The
// output is written to a temporary file in the same directory first and
// renamed into place, so a failed run never leaves a partial file behind.
func File(ctx context.Context, in, out string, o Options) (err error) {
	enc, err := Encoder(out)
	if err != nil {
		return err
	}

	src, format, err := decodeFile(in)
	if err != nil {
		return err
	}
	log.Infof("decoded %s (%s, %dx%d)", in, format, src.Bounds().Dx(), src.Bounds().Dy())

	img, err := Image(ctx, src, o)
	if err != nil {
		return fmt.Errorf("adjusting %s: %w", in, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(out), "."+filepath.Base(out)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary output: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = enc(tmp, img); err != nil {
		return fmt.Errorf("encoding %s: %w", out, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), out); err != nil {
		return fmt.Errorf("renaming output: %w", err)
	}

	log.Infof("wrote %s", out)
	return nil
}

func decodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, format, nil
}
