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

import "seehuhn.de/go/stringart/layout"

// Rings is a small two-ring layout, with four windows around the centre
// and four annular windows.
var Rings = &layout.Definition{
	Kind: "circles",
	Circles: []layout.Circle{
		{Radius: 0.45, PointsOnCircle: 16, Windows: 4, WindowSplit: 3, Iterations: 60},
		{Radius: 0.95, PointsOnCircle: 32, Windows: 4, WindowSplit: 3, Iterations: 80},
	},
}

var windowCases = []TestCase{
	{
		Name:   "inner_spot",
		Window: ringWindow(0),
		Width:  64,
		Height: 64,
		Tone:   spot(0.5),
	},
	{
		Name:   "inner_stripes",
		Window: ringWindow(2),
		Width:  64,
		Height: 64,
		Tone:   stripes(6),
	},
	{
		Name:   "outer_gradient",
		Window: ringWindow(5),
		Width:  64,
		Height: 64,
		Tone:   gradient(240, 40),
	},
	{
		Name:   "outer_dark",
		Window: ringWindow(7),
		Width:  64,
		Height: 64,
		Tone:   uniform(70),
	},
}

// ringWindow returns window idx of the Rings layout.
func ringWindow(idx int) *layout.Window {
	plan, err := layout.Build(Rings)
	if err != nil {
		panic(err)
	}
	return plan.Windows[idx]
}
