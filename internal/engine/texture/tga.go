package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	tgaTypeUncompressed = 2
	tgaTypeRLE          = 10
	tgaHeaderSize       = 18
)

// DecodeTGA decodes a TGA image.
// Supports uncompressed (type 2) and RLE compressed (type 10) true-color
// images at 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("tga: header too short: %w", ErrCorrupt)
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("tga: color-mapped image: %w", ErrUnsupportedFormat)
	}
	if imageType != tgaTypeUncompressed && imageType != tgaTypeRLE {
		return nil, fmt.Errorf("tga: image type %d: %w", imageType, ErrUnsupportedFormat)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: bit depth %d: %w", bpp, ErrUnsupportedFormat)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("tga: id field truncated: %w", ErrCorrupt)
	}

	d := tgaDecoder{
		img:           image.NewRGBA(image.Rect(0, 0, width, height)),
		data:          data[offset:],
		width:         width,
		height:        height,
		bytesPerPixel: bpp / 8,
		topToBottom:   descriptor&0x20 != 0,
	}

	if imageType == tgaTypeUncompressed {
		if len(d.data) < width*height*d.bytesPerPixel {
			return nil, fmt.Errorf("tga: pixel data truncated: %w", ErrCorrupt)
		}
		for i := 0; i < width*height; i++ {
			d.put(i, d.next())
		}
		return d.img, nil
	}

	d.decodeRLE()
	return d.img, nil
}

type tgaDecoder struct {
	img           *image.RGBA
	data          []byte
	pos           int
	width         int
	height        int
	bytesPerPixel int
	topToBottom   bool
}

// next reads one BGR(A) pixel.
func (d *tgaDecoder) next() color.RGBA {
	p := d.data[d.pos : d.pos+d.bytesPerPixel]
	d.pos += d.bytesPerPixel
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.bytesPerPixel == 4 {
		c.A = p[3]
	}
	return c
}

func (d *tgaDecoder) hasPixel() bool {
	return d.pos+d.bytesPerPixel <= len(d.data)
}

// put stores the pixel with linear index i, honouring the origin flag.
func (d *tgaDecoder) put(i int, c color.RGBA) {
	x := i % d.width
	y := i / d.width
	if !d.topToBottom {
		y = d.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
}

// decodeRLE fills the image from RLE packets. A truncated stream leaves the
// remaining pixels transparent.
func (d *tgaDecoder) decodeRLE() {
	total := d.width * d.height
	idx := 0

	for idx < total && d.pos < len(d.data) {
		packet := d.data[d.pos]
		d.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			if !d.hasPixel() {
				return
			}
			c := d.next()
			for i := 0; i < count && idx < total; i++ {
				d.put(idx, c)
				idx++
			}
			continue
		}

		for i := 0; i < count && idx < total; i++ {
			if !d.hasPixel() {
				return
			}
			d.put(idx, d.next())
			idx++
		}
	}
}
