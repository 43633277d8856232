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

// Package tone converts between 8-bit gray values and linear light, and
// splits colour images into the tonal planes which are threaded separately.
package tone

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Gamma is the exponent of the display transfer curve.
const Gamma = 2.4

var linear [256]float64

func init() {
	for v := range linear {
		linear[v] = math.Pow(float64(v)/255, Gamma)
	}
}

// Linear maps an encoded 8-bit gray value to linear light in [0,1].
func Linear(v uint8) float64 {
	return linear[v]
}

// Encode maps linear light to an 8-bit gray value.  Values outside [0,1]
// are clamped.
func Encode(l float64) uint8 {
	if !(l > 0) {
		return 0
	}
	if l >= 1 {
		return 255
	}
	return uint8(math.Pow(l, 1/Gamma)*255 + encodeSlack)
}

// encodeSlack absorbs the rounding error of colour conversions, which
// would otherwise turn white into 254.
const encodeSlack = 1e-6

// Gray converts img to an 8-bit gray image with bounds starting at (0,0).
func Gray(img image.Image) *image.Gray {
	b := img.Bounds()
	if g, ok := img.(*image.Gray); ok && b.Min == (image.Point{}) {
		return g
	}
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(g, g.Bounds(), img, b.Min, draw.Src)
	return g
}

// Downscale shrinks img so that neither side exceeds maxSide pixels.
// Images which are small enough, and maxSide <= 0, leave img unchanged.
func Downscale(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return img
	}

	scale := float64(maxSide) / float64(max(w, h))
	nw := max(1, int(math.Round(float64(w)*scale)))
	nh := max(1, int(math.Round(float64(h)*scale)))
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
