package texture

import (
	"github.com/aquilax/go-perlin"

	smath "github.com/Faultbox/seaswell/pkg/math"
)

// OffsetZeroByte is the byte value decoding to a zero UV offset.
const OffsetZeroByte = 188

const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinDepth = 3
)

// GenerateSet builds a complete deformation texture set from seeded Perlin
// noise. Useful as a stand-in when no authored maps are available, and as a
// deterministic fixture: identical size and seed always produce identical
// textures.
func GenerateSet(size int, seed int64) *Set {
	if size < 4 {
		size = 4
	}

	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinDepth, seed)
	drift := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinDepth, seed+1)

	// Height field first; derivatives and foam come from it.
	height := make([]float32, size*size)
	const freq = 4.0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := p.Noise2D(float64(x)/float64(size)*freq, float64(y)/float64(size)*freq)
			height[y*size+x] = smath.Clamp01(float32(n)*0.5 + 0.5)
		}
	}

	at := func(x, y int) float32 {
		x = (x + size) % size
		y = (y + size) % size
		return height[y*size+x]
	}

	disp := newTexture(size, size)
	derivU := newTexture(size, size)
	derivV := newTexture(size, size)
	offset := newTexture(size, size)

	zero := float32(OffsetZeroByte) / 255.0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			h := at(x, y)

			// Central differences across the wrapped height field.
			du := (at(x+1, y) - at(x-1, y)) * 0.5 * float32(size)
			dv := (at(x, y+1) - at(x, y-1)) * 0.5 * float32(size)

			// Steep slopes foam more.
			foam := smath.Clamp01((smath.Abs(du) + smath.Abs(dv)) * 0.05)

			disp.set(x, y, h, foam, 0, 1)
			derivU.set(x, y, encodeSigned(du*0.02), 0, 0, 1)
			derivV.set(x, y, encodeSigned(dv*0.02), 0, 0, 1)

			ox := float32(drift.Noise2D(float64(x)/float64(size)*freq, float64(y)/float64(size)*freq))
			oy := float32(drift.Noise2D(float64(y)/float64(size)*freq, float64(x)/float64(size)*freq))
			offset.set(x, y, smath.Clamp01(zero+ox*0.1), smath.Clamp01(zero+oy*0.1), 0, 1)
		}
	}

	return &Set{
		Displacement: disp,
		DerivU:       derivU,
		DerivV:       derivV,
		Offset:       offset,
	}
}

func newTexture(w, h int) *Texture {
	return &Texture{Width: w, Height: h, Pix: make([]float32, w*h*4)}
}

func (t *Texture) set(x, y int, r, g, b, a float32) {
	i := (y*t.Width + x) * 4
	t.Pix[i] = r
	t.Pix[i+1] = g
	t.Pix[i+2] = b
	t.Pix[i+3] = a
}

// encodeSigned maps a signed value in [-1, 1] to the unsigned [0, 1]
// encoding used by the derivative maps.
func encodeSigned(v float32) float32 {
	return smath.Clamp01(v*0.5 + 0.5)
}
