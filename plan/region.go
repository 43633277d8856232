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
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stringart/layout"
	"seehuhn.de/go/stringart/raster"
)

// ErrOutOfBounds is returned if a window extends beyond the image.
var ErrOutOfBounds = errors.New("window outside of the image")

// Region is the part of a target image covered by one window.
type Region struct {
	Window *layout.Window

	// Bounds is the bounding box of the pins, in the coordinates of the
	// full image.
	Bounds image.Rectangle

	// Target is the crop of the image to Bounds.  The origin of Target is
	// at (0,0).
	Target *image.Gray

	// Mask is 0xFF for pixels inside the window and 0 outside.
	Mask *image.Gray

	// Pins are the pin positions in the pixel coordinates of Target.
	Pins []vec.Vec2
}

// NewRegion crops img to the window w.  The pins of w are mapped to pixel
// coordinates using the size of img.
func NewRegion(img *image.Gray, w *layout.Window) (*Region, error) {
	b := img.Bounds()
	px := w.Pixels(b.Dx(), b.Dy())
	if len(px) == 0 {
		return nil, fmt.Errorf("window %d: %w", w.Index, ErrTooFewPins)
	}

	xMin, yMin := math.Inf(1), math.Inf(1)
	xMax, yMax := math.Inf(-1), math.Inf(-1)
	for _, p := range px {
		xMin = min(xMin, p.X)
		xMax = max(xMax, p.X)
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}
	box := image.Rect(
		int(math.Floor(xMin)), int(math.Floor(yMin)),
		int(math.Ceil(xMax)), int(math.Ceil(yMax)),
	)
	bounds := box.Add(b.Min)
	if !bounds.In(b) {
		return nil, fmt.Errorf("window %d: %w: %v not in %v", w.Index, ErrOutOfBounds, bounds, b)
	}

	r := &Region{
		Window: w,
		Bounds: bounds,
		Target: image.NewGray(image.Rect(0, 0, box.Dx(), box.Dy())),
		Mask:   image.NewGray(image.Rect(0, 0, box.Dx(), box.Dy())),
		Pins:   make([]vec.Vec2, len(px)),
	}
	draw.Draw(r.Target, r.Target.Bounds(), img, bounds.Min, draw.Src)

	offset := vec.Vec2{X: float64(box.Min.X), Y: float64(box.Min.Y)}
	for i, p := range px {
		r.Pins[i] = p.Sub(offset)
	}

	rast := raster.NewRasterizer(rect.Rect{URx: float64(box.Dx()), URy: float64(box.Dy())})
	m := layout.PixelMatrix(b.Dx(), b.Dy())
	rast.CTM = matrix.Matrix{m[0], m[1], m[2], m[3], m[4] - offset.X, m[5] - offset.Y}
	rast.Fill(w.Outline(), func(y, xMin int, coverage []float32) {
		row := r.Mask.Pix[y*r.Mask.Stride+xMin:]
		for i, c := range coverage {
			if c >= 0.5 {
				row[i] = 0xFF
			}
		}
	})

	return r, nil
}

// Width returns the width of the region in pixels.
func (r *Region) Width() int {
	return r.Target.Rect.Dx()
}

// Height returns the height of the region in pixels.
func (r *Region) Height() int {
	return r.Target.Rect.Dy()
}

// Inside reports whether pixel (x,y) of the region belongs to the window.
func (r *Region) Inside(x, y int) bool {
	return r.Mask.Pix[y*r.Mask.Stride+x] != 0
}
