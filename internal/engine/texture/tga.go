package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	tgaTypeUncompressed = 2  // Uncompressed true-color
	tgaTypeRLE          = 10 // RLE compressed true-color
)

// DecodeTGA decodes a TGA image. Baked deformation maps are commonly
// authored as uncompressed (type 2) or RLE (type 10) true-color TGA,
// which are the only variants supported here.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != tgaTypeUncompressed && imageType != tgaTypeRLE {
		return nil, fmt.Errorf("unsupported TGA type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d", bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA data truncated")
	}
	pixelData := data[offset:]

	dec := tgaDecoder{
		img:           image.NewRGBA(image.Rect(0, 0, width, height)),
		width:         width,
		height:        height,
		bytesPerPixel: bpp / 8,
		// Bit 5 of the descriptor means rows are stored top-to-bottom.
		topToBottom: (descriptor & 0x20) != 0,
	}

	if imageType == tgaTypeUncompressed {
		if err := dec.decodeRaw(pixelData); err != nil {
			return nil, err
		}
	} else {
		if err := dec.decodeRLE(pixelData); err != nil {
			return nil, err
		}
	}
	return dec.img, nil
}

type tgaDecoder struct {
	img           *image.RGBA
	width         int
	height        int
	bytesPerPixel int
	topToBottom   bool
}

// readPixel decodes one BGR(A) pixel starting at data[i].
func (d *tgaDecoder) readPixel(data []byte, i int) color.RGBA {
	c := color.RGBA{B: data[i], G: data[i+1], R: data[i+2], A: 255}
	if d.bytesPerPixel == 4 {
		c.A = data[i+3]
	}
	return c
}

// setPixel writes pixel n (row-major storage order) honoring row direction.
func (d *tgaDecoder) setPixel(n int, c color.RGBA) {
	x := n % d.width
	y := n / d.width
	if !d.topToBottom {
		y = d.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
}

func (d *tgaDecoder) decodeRaw(pixelData []byte) error {
	expected := d.width * d.height * d.bytesPerPixel
	if len(pixelData) < expected {
		return fmt.Errorf("TGA pixel data truncated")
	}
	count := d.width * d.height
	for n := 0; n < count; n++ {
		d.setPixel(n, d.readPixel(pixelData, n*d.bytesPerPixel))
	}
	return nil
}

func (d *tgaDecoder) decodeRLE(pixelData []byte) error {
	pixelCount := d.width * d.height
	n := 0
	i := 0

	for n < pixelCount && i < len(pixelData) {
		packet := pixelData[i]
		i++
		run := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// RLE packet: one pixel repeated run times.
			if i+d.bytesPerPixel > len(pixelData) {
				break
			}
			c := d.readPixel(pixelData, i)
			i += d.bytesPerPixel
			for k := 0; k < run && n < pixelCount; k++ {
				d.setPixel(n, c)
				n++
			}
		} else {
			// Raw packet: run literal pixels.
			for k := 0; k < run && n < pixelCount; k++ {
				if i+d.bytesPerPixel > len(pixelData) {
					return nil
				}
				d.setPixel(n, d.readPixel(pixelData, i))
				i += d.bytesPerPixel
				n++
			}
		}
	}
	return nil
}
