// Package screenshot saves rendered frames as PNG files.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Capture writes frames into a directory with timestamped names.
type Capture struct {
	outputDir string
	prefix    string

	now func() time.Time
}

// New creates a capture handler. An empty dir means the working directory.
func New(outputDir, prefix string) *Capture {
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// FromPixels builds an image from bottom-up RGBA rows as returned by
// glReadPixels, flipping it so row 0 is the top of the frame.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// SavePixels flips and saves raw GL pixels. Returns the file written.
func (c *Capture) SavePixels(pixels []byte, width, height int) (string, error) {
	img, err := FromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	return c.Save(img)
}

// Save encodes img as PNG under a fresh name. Returns the file written.
func (c *Capture) Save(img image.Image) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename, file, err := c.create()
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}

// create opens a new file, adding a counter when several shots land in the
// same second.
func (c *Capture) create() (string, *os.File, error) {
	stamp := c.now().Format("2006-01-02_15-04-05")
	for n := 0; n < 100; n++ {
		name := fmt.Sprintf("%s_%s.png", c.prefix, stamp)
		if n > 0 {
			name = fmt.Sprintf("%s_%s_%d.png", c.prefix, stamp, n)
		}
		path := filepath.Join(c.outputDir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return path, f, nil
		}
		if !os.IsExist(err) {
			return "", nil, fmt.Errorf("creating file: %w", err)
		}
	}
	return "", nil, fmt.Errorf("too many screenshots for %s", stamp)
}
