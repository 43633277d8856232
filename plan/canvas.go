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

package plan

import (
	"image"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stringart/raster"
)

// Dark is the canvas value of a pixel which receives no light at all.
const Dark = 0

// PixelFunc is called for every pixel touched by a thread segment.
type PixelFunc func(x, y int, before, after float32)

// Canvas simulates the brightness of a region as threads are added.
// Values are encoded brightness: 1 for an unlit pixel, Dark for black.
type Canvas struct {
	Width, Height int
	Pix           []float32

	pins []vec.Vec2
	rast *raster.Rasterizer
}

// NewCanvas returns a blank canvas for the region r.  Threads are
// threadWidth pixels wide.
func NewCanvas(r *Region, threadWidth float64) *Canvas {
	w, h := r.Width(), r.Height()
	c := &Canvas{
		Width:  w,
		Height: h,
		Pix:    make([]float32, w*h),
		pins:   r.Pins,
		rast:   raster.NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)}),
	}
	c.rast.Width = threadWidth
	for i := range c.Pix {
		c.Pix[i] = 1
	}
	return c
}

// darken applies one pass of a thread with coverage w to a pixel of
// brightness p.  Each pass lets through half of the light, and partial
// coverage lets through proportionally more.
func darken(p, w float32) float32 {
	return Dark + (p-Dark)*float32(math.Exp2(-float64(w)))
}

// Draw adds a thread from pin a to pin b to the canvas.  If fn is not nil,
// it is called for every changed pixel.
func (c *Canvas) Draw(a, b Pin, fn PixelFunc) {
	c.rast.Line(c.pins[a], c.pins[b], func(y, xMin int, coverage []float32) {
		row := c.Pix[y*c.Width+xMin:]
		for i, w := range coverage {
			if w <= 0 {
				continue
			}
			old := row[i]
			row[i] = darken(old, w)
			if fn != nil {
				fn(xMin+i, y, old, row[i])
			}
		}
	})
}

// Trial reports the pixel values a thread from a to b would produce,
// without changing the canvas.
func (c *Canvas) Trial(a, b Pin, fn PixelFunc) {
	c.rast.Line(c.pins[a], c.pins[b], func(y, xMin int, coverage []float32) {
		row := c.Pix[y*c.Width+xMin:]
		for i, w := range coverage {
			if w <= 0 {
				continue
			}
			fn(xMin+i, y, row[i], darken(row[i], w))
		}
	})
}

// Image converts the canvas to an 8-bit gray image.
func (c *Canvas) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, c.Width, c.Height))
	for y := range c.Height {
		row := img.Pix[y*img.Stride:]
		for x, v := range c.Pix[y*c.Width : (y+1)*c.Width] {
			row[x] = uint8(math.Round(float64(max(0, min(1, v))) * 255))
		}
	}
	return img
}
