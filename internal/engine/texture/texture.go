// Package texture provides CPU-side texture decoding and sampling for
// baked wave deformation maps.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	smath "github.com/Faultbox/seaswell/pkg/math"
)

// Texture is a CPU-resident RGBA texture with normalized float channels.
// Pixels are stored row-major, four floats per texel.
type Texture struct {
	Width  int
	Height int
	Pix    []float32
}

// FromImage converts a decoded image into a float Texture.
func FromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	t := &Texture{
		Width:  w,
		Height: h,
		Pix:    make([]float32, w*h*4),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r16, g16, b16, a16 := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*w + x) * 4
			t.Pix[i] = float32(r16) / 65535.0
			t.Pix[i+1] = float32(g16) / 65535.0
			t.Pix[i+2] = float32(b16) / 65535.0
			t.Pix[i+3] = float32(a16) / 65535.0
		}
	}
	return t
}

// Load reads and decodes a texture file. PNG and TGA are supported,
// selected by file extension.
func Load(path string) (*Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading texture %s: %w", path, err)
	}

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tga":
		img, err = DecodeTGA(data)
	case ".png":
		img, err = png.Decode(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported texture format %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding texture %s: %w", path, err)
	}
	return FromImage(img), nil
}

// TexelSize returns the normalized width of one texel. Animation phases are
// scaled by (1 - TexelSize) so sampling never lands on the wraparound seam.
func (t *Texture) TexelSize() float32 {
	if t.Width == 0 {
		return 0
	}
	return 1.0 / float32(t.Width)
}

// texel returns the RGBA value at integer coordinates with wrap addressing.
func (t *Texture) texel(x, y int) mgl32.Vec4 {
	x %= t.Width
	if x < 0 {
		x += t.Width
	}
	y %= t.Height
	if y < 0 {
		y += t.Height
	}
	i := (y*t.Width + x) * 4
	return mgl32.Vec4{t.Pix[i], t.Pix[i+1], t.Pix[i+2], t.Pix[i+3]}
}

// Sample performs a bilinear-filtered, wrap-addressed lookup at normalized
// coordinates (u, v). Coordinates outside [0, 1) wrap.
func (t *Texture) Sample(u, v float32) mgl32.Vec4 {
	u = smath.Fract(u)
	v = smath.Fract(v)

	fx := u*float32(t.Width) - 0.5
	fy := v*float32(t.Height) - 0.5

	x0 := int(floorf(fx))
	y0 := int(floorf(fy))
	tx := fx - floorf(fx)
	ty := fy - floorf(fy)

	c00 := t.texel(x0, y0)
	c10 := t.texel(x0+1, y0)
	c01 := t.texel(x0, y0+1)
	c11 := t.texel(x0+1, y0+1)

	// Lerp form a + (b-a)*t keeps lookups into uniform regions exact.
	top := mix(c00, c10, tx)
	bottom := mix(c01, c11, tx)
	return mix(top, bottom, ty)
}

func mix(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return a.Add(b.Sub(a).Mul(t))
}

func floorf(v float32) float32 {
	iv := float32(int(v))
	if v < 0 && v != iv {
		return iv - 1
	}
	return iv
}

// Set bundles the baked deformation maps driving one water surface.
// Offset is optional; a nil Offset means no horizontal advection.
type Set struct {
	// Displacement holds wave height in R and foam intensity in G.
	Displacement *Texture
	// DerivU and DerivV hold signed partial derivatives of the height
	// field, encoded around 0.5.
	DerivU *Texture
	DerivV *Texture
	// Offset holds an RG-encoded signed UV delta for pattern drift.
	Offset *Texture
}

// LoadSet loads a deformation texture set from file paths. derivU, derivV
// and offset may be empty; the matching maps stay nil and the pipeline
// degrades gracefully.
func LoadSet(displacement, derivU, derivV, offset string) (*Set, error) {
	disp, err := Load(displacement)
	if err != nil {
		return nil, err
	}
	set := &Set{Displacement: disp}

	if derivU != "" {
		if set.DerivU, err = Load(derivU); err != nil {
			return nil, err
		}
	}
	if derivV != "" {
		if set.DerivV, err = Load(derivV); err != nil {
			return nil, err
		}
	}
	if offset != "" {
		if set.Offset, err = Load(offset); err != nil {
			return nil, err
		}
	}
	return set, nil
}
