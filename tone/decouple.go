// seehuhn.de/go/stringart - thread paths for string art
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tone

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// Primaries are the colours of the three coloured threads.
type Primaries struct {
	Red, Green, Blue colorful.Color
}

// DefaultPrimaries returns pure sRGB red, green and blue.
func DefaultPrimaries() Primaries {
	return Primaries{
		Red:   colorful.Color{R: 1},
		Green: colorful.Color{G: 1},
		Blue:  colorful.Color{B: 1},
	}
}

// Planes holds the tonal planes of a colour image.  In every plane 255
// means "no thread needed" and 0 means "fully covered".
type Planes struct {
	Gray, Red, Green, Blue *image.Gray
}

// lab is a colour in OKLab coordinates.
type lab struct {
	l, a, b float64
}

func toLab(c colorful.Color) lab {
	l, a, b := c.OkLab()
	return lab{l, a, b}
}

// basis inverts the chroma plane spanned by two primaries.
type basis [2][2]float64

func newBasis(p, q lab) basis {
	det := p.a*q.b - q.a*p.b
	return basis{
		{q.b / det, -q.a / det},
		{-p.b / det, p.a / det},
	}
}

// factors expresses the chroma of c as a combination of the two primaries.
func (m *basis) factors(c lab) (float64, float64) {
	return c.a*m[0][0] + c.b*m[0][1], c.a*m[1][0] + c.b*m[1][1]
}

type decoupler struct {
	blueRed, redGreen, greenBlue basis
}

func newDecoupler(p Primaries) *decoupler {
	r, g, b := toLab(p.Red), toLab(p.Green), toLab(p.Blue)
	return &decoupler{
		blueRed:   newBasis(b, r),
		redGreen:  newBasis(r, g),
		greenBlue: newBasis(g, b),
	}
}

// weights are the thread amounts for one pixel, in the order gray, red,
// green, blue.
type weights [4]float64

// pixel splits a colour into a gray share and the two primaries of the
// sector its chroma lies in.
func (d *decoupler) pixel(c lab) weights {
	if x, y := d.blueRed.factors(c); inCone(x, y) {
		return sector(c.l, x, y, 3, 1)
	}
	if x, y := d.redGreen.factors(c); inCone(x, y) {
		return sector(c.l, x, y, 1, 2)
	}
	if x, y := d.greenBlue.factors(c); inCone(x, y) {
		return sector(c.l, x, y, 2, 3)
	}
	return weights{c.l}
}

// inCone reports whether both factors are non-negative.  The primaries
// themselves lie on the cone boundaries, so rounding errors are ignored.
func inCone(x, y float64) bool {
	const eps = 1e-9
	return x >= -eps && y >= -eps
}

func sector(l, x, y float64, i, j int) weights {
	x = clamp01(x)
	y = clamp01(y)
	chroma := min(x+y, 1)

	w := weights{(1 - chroma) * l}
	// below this the hue is numerical noise
	if chroma > 0.01 {
		w[i] = x / chroma
		w[j] = y / chroma
	}
	return w
}

func clamp01(x float64) float64 {
	return max(0, min(1, x))
}

// Decouple splits img into a gray plane and one plane per primary.
func Decouple(img image.Image, p Primaries) *Planes {
	b := img.Bounds()
	rect := image.Rect(0, 0, b.Dx(), b.Dy())
	planes := &Planes{
		Gray:  image.NewGray(rect),
		Red:   image.NewGray(rect),
		Green: image.NewGray(rect),
		Blue:  image.NewGray(rect),
	}

	d := newDecoupler(p)
	white := colorful.Color{R: 1, G: 1, B: 1}
	for y := range rect.Dy() {
		for x := range rect.Dx() {
			c, ok := colorful.MakeColor(img.At(b.Min.X+x, b.Min.Y+y))
			if !ok {
				c = white
			}
			w := d.pixel(toLab(c))

			i := planes.Gray.PixOffset(x, y)
			planes.Gray.Pix[i] = Encode(clamp01(w[0]))
			planes.Red.Pix[i] = Encode(1 - clamp01(w[1]))
			planes.Green.Pix[i] = Encode(1 - clamp01(w[2]))
			planes.Blue.Pix[i] = Encode(1 - clamp01(w[3]))
		}
	}
	return planes
}
