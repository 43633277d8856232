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

// Package layout places pins on concentric circles and groups them into
// windows.
//
// All coordinates are normalized: the image spans [-1,1] in both
// directions, with y pointing down.  A window is the polygon between two
// neighbouring circles and two straight boundaries, and each window is
// threaded independently.
package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stringart/tone"
)

// DefaultIterations is the iteration cap for circles which do not set one.
const DefaultIterations = 1000

// Role tells apart the windows around the centre from the annular ones.
type Role int

const (
	// RoleOuter marks windows between two circles of positive radius.
	RoleOuter Role = iota

	// RoleInner marks windows which touch the centre.  These share a
	// single pin at the centre instead of an inner arc.
	RoleInner
)

func (r Role) String() string {
	switch r {
	case RoleOuter:
		return "outer"
	case RoleInner:
		return "inner"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Circle describes one ring of pins and the windows between this ring and
// the previous one.
type Circle struct {
	Radius         float64 `json:"radius"`           // radius, in normalized units
	PointsOnCircle int     `json:"points_on_circle"` // number of pins on the ring
	Windows        int     `json:"windows"`          // number of windows inside the ring
	WindowSplit    int     `json:"window_split"`     // segments per radial boundary
	Offset         int     `json:"offset"`           // first pin of window 0 on this ring
	OffsetInner    int     `json:"offset_inner"`     // first pin of window 0 on the previous ring
	Iterations     int     `json:"iterations,omitempty"`
}

// Colors names the thread colours as hex strings, e.g. "#ff0000".
type Colors struct {
	Red   string `json:"red,omitempty"`
	Green string `json:"green,omitempty"`
	Blue  string `json:"blue,omitempty"`
}

// Definition is the on-disk form of a layout.
type Definition struct {
	Kind      string   `json:"kind"`
	Circles   []Circle `json:"circles"`
	Primaries *Colors  `json:"primaries,omitempty"`
}

// Window is one polygon which is threaded independently.
type Window struct {
	Points     []vec.Vec2 // pin positions, in order along the boundary
	Names      []string   // one name per pin, shared by windows which share the pin
	Iterations int        // maximal number of thread segments per channel
	Index      int        // position in Plan.Windows
	Ring       int        // index of the outer circle, starting at 1
	Role       Role
}

// Plan is the complete pin layout.
type Plan struct {
	Windows   []*Window
	Primaries tone.Primaries
}

// Errors returned when reading a layout.
var (
	ErrKind       = errors.New("unsupported layout kind")
	ErrNoCircles  = errors.New("no circles")
	ErrBadCircle  = errors.New("invalid circle")
	ErrBadPrimary = errors.New("invalid primary colour")
)

// Read decodes a JSON layout definition and builds the windows.
func Read(r io.Reader) (*Plan, error) {
	var def Definition
	if err := json.NewDecoder(r).Decode(&def); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return Build(&def)
}

// Build computes the windows for a layout definition.
func Build(def *Definition) (*Plan, error) {
	if def.Kind != "circles" {
		return nil, fmt.Errorf("layout: %w %q", ErrKind, def.Kind)
	}
	if len(def.Circles) == 0 {
		return nil, fmt.Errorf("layout: %w", ErrNoCircles)
	}

	prim, err := def.Primaries.parse()
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	plan := &Plan{Primaries: prim}

	pre := Circle{PointsOnCircle: 1}
	for i, post := range def.Circles {
		if err := post.check(pre); err != nil {
			return nil, fmt.Errorf("layout: circle %d: %w", i, err)
		}
		plan.appendWindows(i+1, &pre, &post)
		pre = post
	}
	return plan, nil
}

func (c *Circle) check(pre Circle) error {
	switch {
	case c.PointsOnCircle <= 0:
		return fmt.Errorf("%w: points_on_circle must be positive", ErrBadCircle)
	case c.Windows <= 0:
		return fmt.Errorf("%w: windows must be positive", ErrBadCircle)
	case c.PointsOnCircle < c.Windows:
		return fmt.Errorf("%w: fewer points than windows", ErrBadCircle)
	case !(c.Radius > pre.Radius):
		return fmt.Errorf("%w: radius %g does not exceed %g", ErrBadCircle, c.Radius, pre.Radius)
	case c.WindowSplit < 0 || c.Offset < 0 || c.OffsetInner < 0 || c.Iterations < 0:
		return fmt.Errorf("%w: negative value", ErrBadCircle)
	}
	return nil
}

// appendWindows adds the windows between the circles pre and post.  The
// outer circle post has index ring.
func (p *Plan) appendWindows(ring int, pre, post *Circle) {
	inner := pre.Radius == 0
	stepPre := pre.PointsOnCircle / post.Windows
	stepPost := post.PointsOnCircle / post.Windows

	iterations := post.Iterations
	if iterations == 0 {
		iterations = DefaultIterations
	}

	for idx := range post.Windows {
		w := &Window{
			Iterations: iterations,
			Index:      len(p.Windows),
			Ring:       ring,
			Role:       RoleOuter,
		}
		if inner {
			w.Role = RoleInner
		}
		add := func(pt vec.Vec2, name string) {
			w.Points = append(w.Points, pt)
			w.Names = append(w.Names, name)
		}

		outerStart := post.Offset + idx*stepPost
		outerEnd := outerStart + stepPost
		innerStart := post.OffsetInner + idx*stepPre
		innerEnd := innerStart + stepPre

		for o := outerStart; o <= outerEnd; o++ {
			add(post.point(o), pinName(ring, o%post.PointsOnCircle))
		}

		a, b := post.point(outerEnd), pre.point(innerEnd)
		boundary := (idx + 1) % post.Windows
		for k := 1; k < post.WindowSplit; k++ {
			f := float64(k) / float64(post.WindowSplit)
			add(lerp(a, b, f), splitName(ring, boundary, k))
		}

		if inner {
			add(vec.Vec2{}, pinName(0, 0))
		} else {
			for o := innerEnd; o >= innerStart; o-- {
				add(pre.point(o), pinName(ring-1, o%pre.PointsOnCircle))
			}
		}

		a, b = pre.point(innerStart), post.point(outerStart)
		for k := 1; k < post.WindowSplit; k++ {
			f := float64(k) / float64(post.WindowSplit)
			add(lerp(a, b, f), splitName(ring, idx, post.WindowSplit-k))
		}

		p.Windows = append(p.Windows, w)
	}
}

// point returns the position of pin o on the circle.
func (c *Circle) point(o int) vec.Vec2 {
	if c.PointsOnCircle == 0 || c.Radius == 0 {
		return vec.Vec2{}
	}
	phi := float64(o) * 2 * math.Pi / float64(c.PointsOnCircle)
	sin, cos := math.Sincos(phi)
	return vec.Vec2{X: sin * c.Radius, Y: cos * c.Radius}
}

func lerp(a, b vec.Vec2, f float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(f))
}

// pinName names pin o on a ring.
func pinName(ring, o int) string {
	return fmt.Sprintf("%d:%d", ring, o)
}

// splitName names the k-th pin, counted from the outside, on a radial
// boundary.
func splitName(ring, boundary, k int) string {
	return fmt.Sprintf("%d:s%d.%d", ring, boundary, k)
}

func (c *Colors) parse() (tone.Primaries, error) {
	prim := tone.DefaultPrimaries()
	if c == nil {
		return prim, nil
	}
	for _, x := range []struct {
		hex string
		col *colorful.Color
	}{
		{c.Red, &prim.Red},
		{c.Green, &prim.Green},
		{c.Blue, &prim.Blue},
	} {
		if x.hex == "" {
			continue
		}
		col, err := colorful.Hex(x.hex)
		if err != nil {
			return prim, fmt.Errorf("%w %q", ErrBadPrimary, x.hex)
		}
		*x.col = col
	}
	return prim, nil
}

// PixelMatrix maps normalized coordinates to the pixel coordinates of a
// width×height image.
func PixelMatrix(width, height int) matrix.Matrix {
	w := float64(width) / 2
	h := float64(height) / 2
	return matrix.Matrix{w, 0, 0, h, w, h}
}

// Pixels returns the pin positions in the pixel coordinates of a
// width×height image.
func (w *Window) Pixels(width, height int) []vec.Vec2 {
	m := PixelMatrix(width, height)
	res := make([]vec.Vec2, len(w.Points))
	for i, p := range w.Points {
		res[i] = vec.Vec2{X: m[0]*p.X + m[4], Y: m[3]*p.Y + m[5]}
	}
	return res
}

// Outline returns the window boundary as a closed path in normalized
// coordinates.
func (w *Window) Outline() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i := range w.Points {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, w.Points[i:i+1]) {
				return
			}
		}
		if len(w.Points) > 0 {
			yield(path.CmdClose, nil)
		}
	}
}

// Center returns the average of the pin positions.
func (w *Window) Center() vec.Vec2 {
	var c vec.Vec2
	if len(w.Points) == 0 {
		return c
	}
	for _, p := range w.Points {
		c = c.Add(p)
	}
	return c.Mul(1 / float64(len(w.Points)))
}
