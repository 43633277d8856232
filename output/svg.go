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


// Package output writes planned threads in the forms needed to build a
// picture: SVG drawings for checking a plan, a JSON list of pins for every
// window, a printable PDF pin template and PNG images.
//
// All drawings use a coordinate system centred on the image, so that the
// normalized pin coordinates only need to be scaled by half the image size.
package output

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo/float"

	"seehuhn.de/go/stringart/layout"
	"seehuhn.de/go/stringart/plan"
	"seehuhn.de/go/stringart/tone"
)

// ErrMismatch is returned if the number of graphs or sequences differs from
// the number of windows.
var ErrMismatch = errors.New("wrong number of windows")

// errWriter keeps the first write error.  The SVG canvas does not report
// errors itself.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

type drawing struct {
	*svg.SVG
	out    *errWriter
	sx, sy float64
}

// newDrawing starts an SVG document for a width×height image, enlarged by
// the given scale factor.
func newDrawing(w io.Writer, width, height int, scale float64) *drawing {
	out := &errWriter{w: w}
	vw := float64(width) * scale
	vh := float64(height) * scale
	d := &drawing{
		SVG: svg.New(out),
		out: out,
		sx:  vw / 2,
		sy:  vh / 2,
	}
	d.Startview(vw, vh, -vw/2, -vh/2, vw, vh)
	return d
}

func (d *drawing) finish() error {
	d.End()
	return d.out.err
}

func (d *drawing) outline(win *layout.Window, style ...string) {
	x := make([]float64, len(win.Points))
	y := make([]float64, len(win.Points))
	for i, p := range win.Points {
		x[i] = p.X * d.sx
		y[i] = p.Y * d.sy
	}
	d.Polygon(x, y, style...)
}

func (d *drawing) segment(win *layout.Window, a, b plan.Pin) {
	p, q := win.Points[a], win.Points[b]
	d.Line(p.X*d.sx, p.Y*d.sy, q.X*d.sx, q.Y*d.sy)
}

// threads draws every n-th segment of s, starting with the first one.
func (d *drawing) threads(win *layout.Window, s *plan.Sequence, n int, color, opacity string) {
	if len(s.Pins) < 2 {
		return
	}
	d.Group(`stroke="`+color+`"`, `stroke-opacity="`+opacity+`"`)
	for i := 0; i+1 < len(s.Pins); i += n {
		d.segment(win, s.Pins[i], s.Pins[i+1])
	}
	d.Gend()
}

// Template draws the windows of p together with all candidate lines.
// Graphs must hold one graph per window.
func Template(w io.Writer, p *layout.Plan, graphs []*plan.Graph, width, height int) error {
	if len(graphs) != len(p.Windows) {
		return fmt.Errorf("template: %d graphs for %d windows: %w",
			len(graphs), len(p.Windows), ErrMismatch)
	}

	d := newDrawing(w, width, height, 1)
	for i, win := range p.Windows {
		d.outline(win, `fill="none"`, `stroke="black"`)

		g := graphs[i]
		d.Group(`stroke="green"`, `stroke-opacity="40%"`)
		for o := range plan.Pin(g.Pins()) {
			for _, l := range g.From(o) {
				d.segment(win, o, l.Target)
			}
		}
		d.Gend()
	}
	return d.finish()
}

// Threads draws the planned threads of all windows.  Gray thread is drawn
// in black.  In RGB mode the coloured threads are drawn on top, followed by
// every fourth gray segment, so that the result resembles the finished
// picture where the threads cross each other.
func Threads(w io.Writer, p *layout.Plan, seqs []plan.RgbSequence, prim tone.Primaries, width, height int, rgb bool) error {
	if len(seqs) != len(p.Windows) {
		return fmt.Errorf("threads: %d sequences for %d windows: %w",
			len(seqs), len(p.Windows), ErrMismatch)
	}

	d := newDrawing(w, width, height, 1)
	for i, win := range p.Windows {
		seq := &seqs[i]
		d.outline(win, `fill="none"`, `stroke="green"`)
		d.threads(win, &seq.Gray, 1, "black", "40%")
		if !rgb {
			continue
		}
		d.threads(win, &seq.Blue, 1, prim.Blue.Hex(), "80%")
		d.threads(win, &seq.Green, 1, prim.Green.Hex(), "80%")
		d.threads(win, &seq.Red, 1, prim.Red.Hex(), "80%")
		d.threads(win, &seq.Gray, 4, "black", "40%")
	}
	return d.finish()
}

// Mask draws the window outlines at twice the image size, each labelled
// with its index.
func Mask(w io.Writer, p *layout.Plan, width, height int) error {
	d := newDrawing(w, width, height, 2)
	for i, win := range p.Windows {
		d.outline(win, `fill="none"`, `stroke="black"`)
		if len(win.Points) == 0 {
			continue
		}
		c := win.Center()
		d.Text(c.X*d.sx, c.Y*d.sy, strconv.Itoa(i), `text-anchor="middle"`)
	}
	return d.finish()
}
