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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stringart/layout"
)

// ErrTooFewPins is returned for windows with less than four pins.
var ErrTooFewPins = errors.New("window has fewer than 4 pins")

// Line is a legal thread segment from some origin pin.
type Line struct {
	Target Pin
	Length float64 // in pixels of the full image
}

// Graph lists the legal lines of a window, grouped by origin pin.
// A Graph is read-only after construction and can be shared between runs.
type Graph struct {
	Lines  []Line
	Ranges [][2]int // Lines[Ranges[p][0]:Ranges[p][1]] start at pin p
}

// NewGraph finds the legal lines between the pins of w.  Line lengths are
// measured in the pixels of a width×height image.
//
// Lines between a pin and its direct neighbours are never legal.  A line
// from origin o to target t is legal if the neighbours of t along the
// boundary are on opposite sides of it, in the orientation of the window:
// this rejects lines which leave the polygon near t.
func NewGraph(w *layout.Window, width, height int) (*Graph, error) {
	n := len(w.Points)
	if n < 4 {
		return nil, fmt.Errorf("window %d: %w", w.Index, ErrTooFewPins)
	}
	px := w.Pixels(width, height)

	g := &Graph{
		Ranges: make([][2]int, n),
	}
	for o := range n {
		start := len(g.Lines)
		for k := 2; k <= n-2; k++ {
			t := (o + k) % n
			prior := (t + n - 1) % n
			post := (t + 1) % n
			if signedArea(w.Points, prior, o, t) > 0 || signedArea(w.Points, post, o, t) < 0 {
				continue
			}
			g.Lines = append(g.Lines, Line{
				Target: Pin(t),
				Length: px[t].Sub(px[o]).Length(),
			})
		}
		g.Ranges[o] = [2]int{start, len(g.Lines)}
	}
	return g, nil
}

// signedArea returns the cross product of a-mid and b-mid.
func signedArea(pts []vec.Vec2, a, mid, b int) float64 {
	sa := pts[a].Sub(pts[mid])
	sb := pts[b].Sub(pts[mid])
	return sa.X*sb.Y - sa.Y*sb.X
}

// From returns the lines starting at pin p.
func (g *Graph) From(p Pin) []Line {
	r := g.Ranges[p]
	return g.Lines[r[0]:r[1]]
}

// Pins returns the number of pins of the window.
func (g *Graph) Pins() int {
	return len(g.Ranges)
}
