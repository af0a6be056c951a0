// Package texture decodes images into RGBA textures ready for GPU upload.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp" // BMP decoder registration
	"golang.org/x/image/draw"
)

var (
	// ErrUnsupportedFormat is returned for image formats no decoder handles.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrCorrupt is returned when image data is truncated or malformed.
	ErrCorrupt = errors.New("corrupt image data")
)

// Handle is a GPU-side resource attached to a texture by the renderer.
type Handle interface {
	Release()
}

// Texture is a decoded RGBA image plus the GPU handle once uploaded.
type Texture struct {
	Path  string
	Image *image.RGBA

	handle Handle
}

// New wraps an image as a texture, converting it to RGBA if needed.
func New(path string, img image.Image) *Texture {
	return &Texture{Path: path, Image: ToRGBA(img)}
}

// Decode decodes image data. The file extension selects the TGA decoder;
// everything else goes through the registered image decoders
// (PNG, JPEG, BMP).
func Decode(path string, data []byte) (*Texture, error) {
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err := DecodeTGA(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return &Texture{Path: path, Image: img}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("decode %s: %w", path, ErrUnsupportedFormat)
		}
		return nil, fmt.Errorf("decode %s: %w: %v", path, ErrCorrupt, err)
	}
	return New(path, img), nil
}

// ToRGBA converts any image to *image.RGBA with its origin at (0,0).
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// Resize returns a copy of the texture scaled so that neither side exceeds
// maxSize. Textures already within bounds are returned as is.
func (t *Texture) Resize(maxSize int) *Texture {
	w, h := t.Size()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return t
	}
	if w >= h {
		h = max(1, h*maxSize/w)
		w = maxSize
	} else {
		w = max(1, w*maxSize/h)
		h = maxSize
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), t.Image, t.Image.Bounds(), draw.Src, nil)
	return &Texture{Path: t.Path, Image: dst}
}

// Size returns the texture width and height in pixels.
func (t *Texture) Size() (int, int) {
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Attach stores the GPU handle. A previously attached handle is released.
func (t *Texture) Attach(h Handle) {
	if t.handle != nil && t.handle != h {
		t.handle.Release()
	}
	t.handle = h
}

// Handle returns the attached GPU handle, or nil if not uploaded.
func (t *Texture) Handle() Handle {
	return t.handle
}

// Cleanup releases the GPU handle. Safe to call more than once.
func (t *Texture) Cleanup() {
	if t == nil || t.handle == nil {
		return
	}
	t.handle.Release()
	t.handle = nil
}
