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

// Package raster computes anti-aliased pixel coverage for polygons and for
// straight thread segments.
//
// Coverage is the fraction of a pixel's area inside the shape, from 0
// (outside) to 1 (inside). Results are delivered row by row through an emit
// callback, so that callers can composite coverage into whatever pixel
// format they use.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one pixel row.  Coverage[i] belongs to
// pixel (xMin+i, y).  The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a polygon edge in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasterizer converts polygons and thread segments into pixel coverage.
// Internal buffers grow as needed and are reused, so that a Rasterizer
// which is used for many shapes of similar size does not allocate.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output, in device coordinates.  The coordinates
	// must be integers.
	Clip rect.Rect

	// Width is the thread width used by Line, in device pixels.
	Width float64

	// Cap selects the end style used by Line.  LineCapButt ends the
	// thread exactly at the pins, every other style extends both ends by
	// half the width.
	Cap graphics.LineCapStyle

	cover  []float32 // signed vertical extent per column, reused as output
	area   []float32 // in-pixel area contribution per column
	edges  []edge
	active []int // indices into edges

	bboxEmpty    bool
	bxMin, bxMax float64
	byMin, byMax float64
	outline      [4]vec.Vec2
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, using
// the identity CTM and one pixel wide threads with butt ends.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:   matrix.Identity,
		Clip:  clip,
		Width: 1,
		Cap:   graphics.LineCapButt,
	}
}

// Reset restores the defaults of NewRasterizer for a new clip rectangle,
// keeping the capacity of the internal buffers.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Width = 1
	r.Cap = graphics.LineCapButt

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// Fill computes the coverage of a polygon, using the nonzero winding rule.
// The path is given in user space.  Only straight segments are supported:
// curve commands are replaced by the chord to their end point.
func (r *Rasterizer) Fill(p path.Path, emit EmitFunc) {
	r.startEdges()

	var current, start vec.Vec2
	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				r.addEdge(current, start)
			}
			current = pts[0]
			start = current
			open = true
		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
			end := pts[len(pts)-1]
			r.addEdge(current, end)
			current = end
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
			open = false
		}
	}
	if open && current != start {
		r.addEdge(current, start)
	}

	r.sweep(emit)
}

// Line computes the coverage of a straight thread from a to b, both given
// in user space.  The thread is Width device pixels wide.  Every pixel is
// reported at most once, so coverage can be composited without
// double-counting.
func (r *Rasterizer) Line(a, b vec.Vec2, emit EmitFunc) {
	a = r.toDevice(a)
	b = r.toDevice(b)

	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)         // unit tangent
	n := vec.Vec2{X: -t.Y, Y: t.X} // unit normal
	h := r.Width / 2
	if r.Cap != graphics.LineCapButt {
		a = a.Sub(t.Mul(h))
		b = b.Add(t.Mul(h))
	}
	off := n.Mul(h)

	r.outline = [4]vec.Vec2{a.Add(off), b.Add(off), b.Sub(off), a.Sub(off)}

	r.startEdges()
	for i := range r.outline {
		p0 := r.outline[i]
		p1 := r.outline[(i+1)%len(r.outline)]
		r.addDeviceEdge(p0.X, p0.Y, p1.X, p1.Y)
	}
	r.sweep(emit)
}

func (r *Rasterizer) toDevice(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

func (r *Rasterizer) startEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge adds the user-space edge p0→p1.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	d0 := r.toDevice(p0)
	d1 := r.toDevice(p1)
	r.addDeviceEdge(d0.X, d0.Y, d1.X, d1.Y)
}

func (r *Rasterizer) addDeviceEdge(x0, y0, x1, y1 float64) {
	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		// horizontal edges carry no cover
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.bxMin, r.bxMax = min(x0, x1), max(x0, x1)
		r.byMin, r.byMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bxMin = min(r.bxMin, x0, x1)
	r.bxMax = max(r.bxMax, x0, x1)
	r.byMin = min(r.byMin, y0, y1)
	r.byMax = max(r.byMax, y0, y1)
}

// Coverage accumulation:
//
// Each edge crossing scanline y deposits, per pixel column it passes
// through, a signed vertical extent ("cover", +1 for downward edges) and the
// part of that cover which lies inside the pixel itself ("area", weighted by
// the distance from the crossing to the pixel's right border).  Scanning a
// row from left to right, the coverage of pixel i is the running sum of the
// cover of all columns left of i plus area[i].  Clamping the absolute value
// to [0,1] gives the nonzero winding rule.

// sweep rasterizes the current edge list and emits the covered rows.
func (r *Rasterizer) sweep(emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := float64(y + 1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < bottom {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if max(e.y0, e.y1) <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the contribution of e within scanline y to the cover and
// area buffers, which hold the columns xMin ≤ x < xMax.  The return value
// reports whether anything was added.
func (r *Rasterizer) accumulate(e *edge, y, xMin, xMax int) bool {
	top := max(float64(y), min(e.y0, e.y1))
	bottom := min(float64(y+1), max(e.y0, e.y1))
	if bottom <= top {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBottom := e.x0 + e.dxdy*(bottom-e.y0)
	left := int(math.Floor(min(xTop, xBottom)))
	right := int(math.Floor(max(xTop, xBottom)))

	switch {
	case right < xMin:
		// everything right of the edge is covered
		c := sign * float32(bottom-top)
		r.cover[0] += c
		r.area[0] += c
		return true
	case left >= xMax:
		return false
	case left == right:
		r.deposit(left, sign*float32(bottom-top), (xTop+xBottom)/2, xMin, xMax)
		return true
	}

	// The edge crosses column borders inside this scanline.  Split it into
	// one piece per column.
	dydx := 1 / e.dxdy
	for col := left; col <= right && col < xMax; col++ {
		ya := e.y0 + dydx*(float64(col)-e.x0)
		yb := e.y0 + dydx*(float64(col+1)-e.x0)
		s0 := max(min(ya, yb), top)
		s1 := min(max(ya, yb), bottom)
		if s1 <= s0 {
			continue
		}
		xMid := e.x0 + e.dxdy*((s0+s1)/2-e.y0)
		r.deposit(col, sign*float32(s1-s0), xMid, xMin, xMax)
	}
	return true
}

// deposit records a piece of edge with vertical extent c, crossing column
// col at horizontal position xMid.
func (r *Rasterizer) deposit(col int, c float32, xMid float64, xMin, xMax int) {
	if col < xMin {
		r.cover[0] += c
		r.area[0] += c
		return
	}
	if col >= xMax {
		return
	}
	i := col - xMin
	r.cover[i] += c
	r.area[i] += c * float32(1-(xMid-float64(col)))
}

// integrateNonZero turns accumulated cover/area values into coverage, in
// place, using the nonzero winding rule.
func integrateNonZero(cover, area []float32) {
	var sum float32
	for i := range cover {
		raw := sum + area[i]
		sum += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the part of row between the first and the last non-zero
// entry, together with its offset.  It returns nil if row is all zero.
func trimZeros(row []float32) ([]float32, int) {
	lo := 0
	for lo < len(row) && row[lo] == 0 {
		lo++
	}
	if lo == len(row) {
		return nil, 0
	}
	hi := len(row)
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

// Numerical tolerances.
const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimum length of a thread segment, in
	// device pixels.  Shorter segments are not drawn.
	zeroLengthThreshold = 1e-10
)
