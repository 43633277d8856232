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

// Package testcases provides small planning scenarios: a window together
// with a synthetic target image.
package testcases

import (
	"image"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stringart/layout"
)

// TestCase defines a single planning scenario.
type TestCase struct {
	Name   string         // lowercase a-z and _ only
	Window *layout.Window // pins in normalized coordinates
	Width  int            // image width in pixels
	Height int            // image height in pixels
	Tone   ToneFunc       // target gray value of each pixel
}

// ToneFunc gives the target gray value at the pixel centre (x,y), with both
// coordinates normalized to [-1,1].
type ToneFunc func(x, y float64) uint8

// Image renders the target image of the test case.
func (tc *TestCase) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	for py := range tc.Height {
		y := (float64(py)+0.5)/float64(tc.Height)*2 - 1
		for px := range tc.Width {
			x := (float64(px)+0.5)/float64(tc.Width)*2 - 1
			img.Pix[py*img.Stride+px] = tc.Tone(x, y)
		}
	}
	return img
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// uniform is a constant target.
func uniform(v uint8) ToneFunc {
	return func(x, y float64) uint8 { return v }
}

// gradient darkens from left (light) to right (dark).
func gradient(light, dark uint8) ToneFunc {
	return func(x, y float64) uint8 {
		f := (x + 1) / 2
		return uint8(math.Round(float64(light) + (float64(dark)-float64(light))*f))
	}
}

// spot is dark in the middle and light at the rim.
func spot(r float64) ToneFunc {
	return func(x, y float64) uint8 {
		d := math.Hypot(x, y) / r
		return uint8(math.Round(255 * min(1, d*d)))
	}
}

// stripes alternates dark and light vertical bands.
func stripes(n int) ToneFunc {
	return func(x, y float64) uint8 {
		if int(math.Floor((x+1)/2*float64(n)))%2 == 0 {
			return 40
		}
		return 230
	}
}
