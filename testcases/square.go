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

package testcases

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stringart/layout"
)

var squareCases = []TestCase{
	{
		Name:   "uniform_mid",
		Window: Square(100),
		Width:  32,
		Height: 32,
		Tone:   uniform(128),
	},
	{
		Name:   "white",
		Window: Square(100),
		Width:  32,
		Height: 32,
		Tone:   uniform(255),
	},
	{
		Name:   "near_white",
		Window: Square(100),
		Width:  32,
		Height: 32,
		Tone:   uniform(254),
	},
	{
		Name:   "gradient",
		Window: Square(100),
		Width:  48,
		Height: 48,
		Tone:   gradient(250, 30),
	},
}

var discCases = []TestCase{
	{
		Name:   "spot",
		Window: Disc(24, 0.9, 120),
		Width:  64,
		Height: 64,
		Tone:   spot(0.9),
	},
	{
		Name:   "stripes",
		Window: Disc(32, 0.95, 150),
		Width:  64,
		Height: 64,
		Tone:   stripes(4),
	},
	{
		Name:   "dark",
		Window: Disc(20, 0.9, 80),
		Width:  48,
		Height: 48,
		Tone:   uniform(60),
	},
	{
		Name:   "wide",
		Window: Disc(16, 0.9, 60),
		Width:  80,
		Height: 40,
		Tone:   gradient(200, 20),
	},
}

// Square returns the window with one pin at each corner of the image.
// Pins 0 and 2 and pins 1 and 3 are the only legal pairs.
func Square(iterations int) *layout.Window {
	return &layout.Window{
		Points:     []vec.Vec2{pt(-1, -1), pt(-1, 1), pt(1, 1), pt(1, -1)},
		Names:      []string{"a", "b", "c", "d"},
		Iterations: iterations,
		Role:       layout.RoleOuter,
	}
}

// Disc returns a convex window with n pins on a circle of radius r around
// the image centre.
func Disc(n int, r float64, iterations int) *layout.Window {
	w := &layout.Window{
		Iterations: iterations,
		Role:       layout.RoleOuter,
	}
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		w.Points = append(w.Points, pt(r*math.Sin(phi), r*math.Cos(phi)))
		w.Names = append(w.Names, fmt.Sprintf("1:%d", i))
	}
	return w
}
