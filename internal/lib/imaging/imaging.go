// Package imaging derives resized and circular variants of uploaded images.
//
// Processed variants are produced with disintegration/imaging. When the
// backend is unusable, Describe* return style-only variants that point at
// the original file.
package imaging

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// Size is one entry of the variant size table. Variants are square.
type Size struct {
	Name  string
	Width int
}

// Sizes is ordered smallest first.
var Sizes = []Size{
	{Name: "thumbnail", Width: 150},
	{Name: "small", Width: 300},
	{Name: "medium", Width: 600},
	{Name: "large", Width: 1200},
}

const (
	RoundedSize = 300
	JPEGQuality = 85
)

// Processor writes derived images next to the source.
type Processor interface {
	Resize(ctx context.Context, src, dst string, width int) error
	Round(ctx context.Context, src, dst string, size int) error
}

// VariantName is the file name of a resized variant.
func VariantName(size, filename string) string {
	return size + "_" + filename
}

// RoundedName is the file name of the circular PNG for filename.
func RoundedName(filename string) string {
	return "rounded_" + strings.TrimSuffix(filename, filepath.Ext(filename)) + ".png"
}

// Imaging is the pixel-processing Processor.
type Imaging struct{}

func New() *Imaging {
	return &Imaging{}
}

// Resize centre-crops src to a width x width square and writes it as JPEG.
func (p *Imaging) Resize(ctx context.Context, src, dst string, width int) error {
	img, err := open(ctx, src)
	if err != nil {
		return err
	}

	resized := imaging.Fill(img, width, width, imaging.Center, imaging.Lanczos)
	if err := ctx.Err(); err != nil {
		return err
	}

	return encodeFile(dst, resized, imaging.JPEG, imaging.JPEGQuality(JPEGQuality))
}

// Round crops src to a size x size square, masks it with a circle and
// writes a PNG with transparent corners.
func (p *Imaging) Round(ctx context.Context, src, dst string, size int) error {
	img, err := open(ctx, src)
	if err != nil {
		return err
	}

	square := imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)

	out := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.DrawMask(out, out.Bounds(), square, image.Point{}, &circle{r: size / 2, c: image.Pt(size/2, size/2)}, image.Point{}, draw.Over)
	if err := ctx.Err(); err != nil {
		return err
	}

	return encodeFile(dst, out, imaging.PNG)
}

// Probe checks the backend can encode an image and write into dir.
func Probe(dir string) error {
	f, err := os.CreateTemp(dir, ".probe-*.png")
	if err != nil {
		return fmt.Errorf("upload dir not writable: %w", err)
	}
	name := f.Name()
	defer os.Remove(name)

	err = imaging.Encode(f, imaging.New(1, 1, color.White), imaging.PNG)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("image encoder unavailable: %w", err)
	}

	if _, err := imaging.Open(name); err != nil {
		return fmt.Errorf("image decoder unavailable: %w", err)
	}
	return nil
}

func open(ctx context.Context, src string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filepath.Base(src), err)
	}
	return img, nil
}

func encodeFile(dst string, img image.Image, format imaging.Format, opts ...imaging.EncodeOption) error {
	f, err := os.Create(dst)
	if err != nil {
		return err
	}

	err = imaging.Encode(f, img, format, opts...)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(dst)
		return fmt.Errorf("failed to write %s: %w", filepath.Base(dst), err)
	}
	return nil
}

// circle is an alpha mask, opaque inside radius r around c.
type circle struct {
	r int
	c image.Point
}

func (m *circle) ColorModel() color.Model { return color.AlphaModel }

func (m *circle) Bounds() image.Rectangle {
	return image.Rect(m.c.X-m.r, m.c.Y-m.r, m.c.X+m.r, m.c.Y+m.r)
}

func (m *circle) At(x, y int) color.Color {
	xx, yy, rr := float64(x-m.c.X)+0.5, float64(y-m.c.Y)+0.5, float64(m.r)
	if xx*xx+yy*yy < rr*rr {
		return color.Alpha{A: 255}
	}
	return color.Alpha{A: 0}
}
