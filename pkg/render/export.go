package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	xdraw "golang.org/x/image/draw"
)

// ErrUnsupportedFormat is returned for image extensions with no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format is an output image encoding.
type Format int

const (
	FormatPNG Format = iota
	FormatTGA
	FormatWebP
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatTGA:
		return "tga"
	case FormatWebP:
		return "webp"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return FormatPNG, nil
	case ".tga":
		return FormatTGA, nil
	case ".webp":
		return FormatWebP, nil
	default:
		return 0, fmt.Errorf("%w: %q (use .png, .tga or .webp)", ErrUnsupportedFormat, ext)
	}
}

// Encode writes img to w in the given format. WebP output is lossless.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatTGA:
		return tga.Encode(w, img)
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}

// SaveImage encodes img into path, choosing the format from the extension
// and creating parent directories as needed.
func SaveImage(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(out, img, f); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return out.Close()
}

// Downsample reduces a device-resolution canvas to logical resolution,
// dividing both dimensions by scale with Catmull-Rom filtering. A scale of 1
// or less returns the canvas image unchanged.
func (c *Canvas) Downsample(scale int) *image.RGBA {
	src := c.ToImage()
	if scale <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, max(c.Stride/scale, 1), max(c.Height/scale, 1)))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
