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


package output

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/stringart/layout"
	"seehuhn.de/go/stringart/plan"
	"seehuhn.de/go/stringart/raster"
	"seehuhn.de/go/stringart/tone"
)

// Preview simulates the finished picture on a white board.  Every pass of
// a thread moves the pixel colour half way towards the thread colour, the
// same way plan.Canvas darkens pixels.  The coloured threads are only used
// in RGB mode and are laid before the gray thread.
func Preview(p *layout.Plan, seqs []plan.RgbSequence, prim tone.Primaries, width, height int, rgb bool) *image.RGBA {
	buf := make([]colorful.Color, width*height)
	for i := range buf {
		buf[i] = colorful.Color{R: 1, G: 1, B: 1}
	}

	rast := raster.NewRasterizer(rect.Rect{URx: float64(width), URy: float64(height)})
	rast.CTM = layout.PixelMatrix(width, height)

	type thread struct {
		ch  plan.Channel
		col colorful.Color
	}
	var threads []thread
	if rgb {
		threads = append(threads,
			thread{plan.Blue, prim.Blue},
			thread{plan.Green, prim.Green},
			thread{plan.Red, prim.Red})
	}
	threads = append(threads, thread{plan.Gray, colorful.Color{}})

	for _, th := range threads {
		for i, win := range p.Windows[:min(len(p.Windows), len(seqs))] {
			pins := seqs[i].Channel(th.ch).Pins
			for k := 1; k < len(pins); k++ {
				a, b := win.Points[pins[k-1]], win.Points[pins[k]]
				rast.Line(a, b, func(y, xMin int, coverage []float32) {
					row := buf[y*width+xMin:]
					for j, w := range coverage {
						if w <= 0 {
							continue
						}
						keep := math.Exp2(-float64(w))
						row[j] = th.col.BlendRgb(row[j], keep)
					}
				})
			}
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, c := range buf {
		r, g, b := c.Clamped().RGB255()
		copy(img.Pix[4*i:], []uint8{r, g, b, 0xFF})
	}
	return img
}
