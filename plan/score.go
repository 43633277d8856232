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
	"fmt"
	"math"

	"seehuhn.de/go/stringart/tone"
)

// blockSize is the side length of the square blocks over which target and
// canvas are averaged.
const blockSize = 4

// linear maps a canvas value to linear light.
func linear(c float32) float64 {
	return math.Pow(float64(c), tone.Gamma)
}

// Score compares the canvas with the target of region r.  For every 4×4
// block which contains pixels inside the window, it adds the absolute
// difference between the mean linear light of target and canvas, taken
// over the pixels inside the window.  Lower is better.
func Score(r *Region, c *Canvas) float64 {
	w, h := r.Width(), r.Height()
	var total float64
	for bx := 0; bx < w; bx += blockSize {
		for by := 0; by < h; by += blockSize {
			var target, actual float64
			n := 0
			for x := bx; x < min(bx+blockSize, w); x++ {
				for y := by; y < min(by+blockSize, h); y++ {
					if !r.Inside(x, y) {
						continue
					}
					n++
					target += tone.Linear(r.Target.Pix[y*r.Target.Stride+x])
					actual += linear(c.Pix[y*c.Width+x])
				}
			}
			if n > 0 {
				total += math.Abs(target-actual) / float64(n)
			}
		}
	}
	mustBeFinite(total)
	return total
}

// Scorer evaluates Score incrementally.  It keeps per-block sums for the
// target and for one canvas, so that the effect of a thread segment can be
// found by looking only at the blocks the segment touches.
//
// A Scorer allocates all its buffers once, and can then evaluate any number
// of segments without allocating.
type Scorer struct {
	region *Region
	canvas *Canvas
	bw, bh int // number of block columns and rows

	count  []int     // pixels inside the window, per block
	target []float64 // sum of target linear light, per block
	actual []float64 // sum of canvas linear light, per block
	lin    []float64 // linear light of every canvas pixel

	delta   []float64 // scratch: change of actual, per block
	mark    []bool    // scratch: block is in touched
	touched []int     // scratch: blocks changed by the current segment
}

// NewScorer returns a Scorer comparing c with the target of r.
func NewScorer(r *Region, c *Canvas) *Scorer {
	w, h := r.Width(), r.Height()
	bw := (w + blockSize - 1) / blockSize
	bh := (h + blockSize - 1) / blockSize
	nb := bw * bh

	s := &Scorer{
		region: r,
		canvas: c,
		bw:     bw,
		bh:     bh,
		count:  make([]int, nb),
		target: make([]float64, nb),
		actual: make([]float64, nb),
		lin:    make([]float64, w*h),
		delta:  make([]float64, nb),
		mark:   make([]bool, nb),
	}
	for i, v := range c.Pix {
		s.lin[i] = linear(v)
	}
	for k := range nb {
		x0, y0 := s.origin(k)
		for x := x0; x < min(x0+blockSize, w); x++ {
			for y := y0; y < min(y0+blockSize, h); y++ {
				if !r.Inside(x, y) {
					continue
				}
				s.count[k]++
				s.target[k] += tone.Linear(r.Target.Pix[y*r.Target.Stride+x])
			}
		}
		s.actual[k] = s.canvasSum(k)
	}
	return s
}

// block returns the index of the block containing pixel (x,y).  Blocks are
// numbered column by column.
func (s *Scorer) block(x, y int) int {
	return (x/blockSize)*s.bh + y/blockSize
}

// origin returns the top left pixel of block k.
func (s *Scorer) origin(k int) (int, int) {
	return (k / s.bh) * blockSize, (k % s.bh) * blockSize
}

// canvasSum returns the linear light of the canvas, summed over the pixels
// of block k inside the window.
func (s *Scorer) canvasSum(k int) float64 {
	w, h := s.canvas.Width, s.canvas.Height
	x0, y0 := s.origin(k)
	var sum float64
	for x := x0; x < min(x0+blockSize, w); x++ {
		for y := y0; y < min(y0+blockSize, h); y++ {
			if s.region.Inside(x, y) {
				sum += s.lin[y*w+x]
			}
		}
	}
	return sum
}

// Score returns the current score of the canvas.
func (s *Scorer) Score() float64 {
	var total float64
	for b, n := range s.count {
		if n > 0 {
			total += math.Abs(s.target[b]-s.actual[b]) / float64(n)
		}
	}
	mustBeFinite(total)
	return total
}

// Delta returns the change of the score if a thread from a to b was added
// to the canvas.  Negative values are improvements.  The canvas is not
// modified.
func (s *Scorer) Delta(a, b Pin) float64 {
	s.canvas.Trial(a, b, s.collect)

	var d float64
	for _, k := range s.touched {
		before := math.Abs(s.target[k] - s.actual[k])
		after := math.Abs(s.target[k] - s.actual[k] - s.delta[k])
		d += (after - before) / float64(s.count[k])

		s.delta[k] = 0
		s.mark[k] = false
	}
	s.touched = s.touched[:0]

	mustBeFinite(d)
	return d
}

func (s *Scorer) collect(x, y int, before, after float32) {
	if !s.region.Inside(x, y) {
		return
	}
	k := s.block(x, y)
	s.delta[k] += linear(after) - s.lin[y*s.canvas.Width+x]
	if !s.mark[k] {
		s.mark[k] = true
		s.touched = append(s.touched, k)
	}
}

// Commit adds a thread from a to b to the canvas and updates the block
// sums.
func (s *Scorer) Commit(a, b Pin) {
	w := s.canvas.Width
	s.canvas.Draw(a, b, func(x, y int, before, after float32) {
		s.lin[y*w+x] = linear(after)
		if !s.region.Inside(x, y) {
			return
		}
		k := s.block(x, y)
		if !s.mark[k] {
			s.mark[k] = true
			s.touched = append(s.touched, k)
		}
	})

	// recompute the changed blocks from the pixel values
	for _, k := range s.touched {
		s.actual[k] = s.canvasSum(k)
		s.mark[k] = false
	}
	s.touched = s.touched[:0]
}

func mustBeFinite(x float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic(fmt.Sprintf("plan: score is not finite: %g", x))
	}
}
