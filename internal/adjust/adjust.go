// Package adjust applies the Lab contrast and exposure curves to whole
// images.
package adjust

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/jsvensson/labtone/colorspace"
	"github.com/jsvensson/labtone/internal/color"
	"github.com/jsvensson/labtone/internal/parallel"
	"github.com/tliron/commonlog"
	"golang.org/x/image/draw"
)

var log = commonlog.GetLogger("labtone.adjust")

// ErrUnsupportedFormat is returned for file extensions with no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Options selects the adjustment strengths, each in [-1, 1], and the
// number of workers; Workers below 1 means one per CPU.
type Options struct {
	Contrast float64
	Expose   float64
	Workers  int
}

// Validate checks the strength ranges.
func (o Options) Validate() error {
	if o.Contrast < -1 || o.Contrast > 1 {
		return fmt.Errorf("contrast must be between -1 and 1, got %g", o.Contrast)
	}
	if o.Expose < -1 || o.Expose > 1 {
		return fmt.Errorf("expose must be between -1 and 1, got %g", o.Expose)
	}
	return nil
}

// IsIdentity reports whether the options leave colors unchanged apart
// from conversion error.
func (o Options) IsIdentity() bool {
	return o.Contrast == 0 && o.Expose == 0
}

// Color adjusts a single color.
func Color(c color.Color, o Options) color.Color {
	return color.FromVec(colorspace.AdjustRGB(c.Vec(), o.Contrast, o.Expose))
}

// Image returns a copy of src with every pixel run through the contrast and
// exposure curves. Alpha is kept as is. Rows are spread over a worker pool;
// a cancelled context stops scheduling further rows and is returned as the
// error.
func Image(ctx context.Context, src image.Image, o Options) (*image.NRGBA, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	dst := toNRGBA(src)
	b := dst.Bounds()
	if o.IsIdentity() {
		return dst, nil
	}

	contrast, expose := float32(o.Contrast), float32(o.Expose)
	pool := parallel.Start(o.Workers)
	log.Debugf("adjusting %dx%d image on %d workers", b.Dx(), b.Dy(), pool.Workers())

	for y := range b.Dy() {
		if ctx.Err() != nil {
			break
		}
		row := dst.Pix[y*dst.Stride : y*dst.Stride+b.Dx()*4]
		pool.Do(func() { adjustRow(row, contrast, expose) })
	}
	pool.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return dst, nil
}

// toNRGBA copies src into a new non-premultiplied image. NRGBA sources are
// copied byte for byte so the color of translucent pixels survives.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	s, ok := src.(*image.NRGBA)
	if !ok {
		draw.Draw(dst, b, src, b.Min, draw.Src)
		return dst
	}
	for y := range b.Dy() {
		off := s.PixOffset(b.Min.X, b.Min.Y+y)
		copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], s.Pix[off:off+b.Dx()*4])
	}
	return dst
}

// adjustRow rewrites one row of non-premultiplied RGBA pixels in place.
func adjustRow(row []uint8, contrast, expose float32) {
	for i := 0; i+3 < len(row); i += 4 {
		if row[i+3] == 0 {
			continue
		}
		in := colorspace.V3(float32(row[i])/255, float32(row[i+1])/255, float32(row[i+2])/255)
		out := colorspace.AdjustRGB(in, contrast, expose)
		row[i] = toByte(out.X)
		row[i+1] = toByte(out.Y)
		row[i+2] = toByte(out.Z)
	}
}

func toByte(v float32) uint8 {
	return uint8(colorspace.Saturate(v)*255 + 0.5)
}
