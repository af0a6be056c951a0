package screenshot

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC) }
}

func TestFromPixelsFlipsRows(t *testing.T) {
	// 1x2, bottom row red then top row blue
	pixels := []byte{255, 0, 0, 255, 0, 0, 255, 255}

	img, err := FromPixels(pixels, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(0, 1))
}

func TestFromPixelsSizeMismatch(t *testing.T) {
	_, err := FromPixels(make([]byte, 7), 1, 2)
	assert.Error(t, err)
}

func TestSavePixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	c := New(dir, "sunlit")
	c.now = fixedClock()

	path, err := c.SavePixels(make([]byte, 2*2*4), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sunlit_2024-03-01_12-30-45.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
}

func TestSaveSameSecondGetsCounter(t *testing.T) {
	dir := t.TempDir()
	c := New(dir, "sunlit")
	c.now = fixedClock()

	first, err := c.SavePixels(make([]byte, 4), 1, 1)
	require.NoError(t, err)
	second, err := c.SavePixels(make([]byte, 4), 1, 1)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, "sunlit_2024-03-01_12-30-45_1.png", filepath.Base(second))
}
