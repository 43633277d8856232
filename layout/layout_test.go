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

package layout

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

const twoRings = `{
	"kind": "circles",
	"circles": [
		{"radius": 0.5, "points_on_circle": 8, "windows": 4, "window_split": 2, "offset": 0, "offset_inner": 0},
		{"radius": 1, "points_on_circle": 16, "windows": 4, "window_split": 1, "offset": 0, "offset_inner": 0, "iterations": 50}
	]
}`

func TestReadWindows(t *testing.T) {
	plan, err := Read(strings.NewReader(twoRings))
	require.NoError(t, err)
	require.Len(t, plan.Windows, 8)

	for i, w := range plan.Windows {
		assert.Equal(t, i, w.Index)
		assert.Len(t, w.Names, len(w.Points))
	}

	inner := plan.Windows[0]
	assert.Equal(t, RoleInner, inner.Role)
	assert.Equal(t, 1, inner.Ring)
	assert.Equal(t, DefaultIterations, inner.Iterations)
	assert.Equal(t, []string{"1:0", "1:1", "1:2", "1:s1.1", "0:0", "1:s0.1"}, inner.Names)
	assert.Equal(t, vec.Vec2{}, inner.Points[4])

	outer := plan.Windows[4]
	assert.Equal(t, RoleOuter, outer.Role)
	assert.Equal(t, 2, outer.Ring)
	assert.Equal(t, 50, outer.Iterations)
	assert.Equal(t, []string{"2:0", "2:1", "2:2", "2:3", "2:4", "1:2", "1:1", "1:0"}, outer.Names)
}

// TestSharedPins checks that pins with the same name have the same
// position, no matter which window they belong to.
func TestSharedPins(t *testing.T) {
	plan, err := Read(strings.NewReader(twoRings))
	require.NoError(t, err)

	seen := map[string]vec.Vec2{}
	shared := 0
	for _, w := range plan.Windows {
		for i, name := range w.Names {
			p := w.Points[i]
			if q, ok := seen[name]; ok {
				shared++
				assert.InDelta(t, q.X, p.X, 1e-12, name)
				assert.InDelta(t, q.Y, p.Y, 1e-12, name)
				continue
			}
			seen[name] = p
		}
	}
	assert.Greater(t, shared, 0)
}

func TestPinsOnCircle(t *testing.T) {
	plan, err := Read(strings.NewReader(twoRings))
	require.NoError(t, err)

	w := plan.Windows[5]
	for i := range 5 {
		assert.InDelta(t, 1, w.Points[i].Length(), 1e-12)
	}
	for i := 5; i < 8; i++ {
		assert.InDelta(t, 0.5, w.Points[i].Length(), 1e-12)
	}
}

func TestPrimaries(t *testing.T) {
	plan, err := Read(strings.NewReader(`{
		"kind": "circles",
		"circles": [{"radius": 1, "points_on_circle": 12, "windows": 3, "window_split": 2}],
		"primaries": {"red": "#00ffff"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, colorful.Color{G: 1, B: 1}, plan.Primaries.Red)
	assert.Equal(t, colorful.Color{G: 1}, plan.Primaries.Green)
	assert.Equal(t, colorful.Color{B: 1}, plan.Primaries.Blue)
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name string
		json string
		want error
	}{
		{
			name: "kind",
			json: `{"kind": "squares", "circles": []}`,
			want: ErrKind,
		},
		{
			name: "empty",
			json: `{"kind": "circles", "circles": []}`,
			want: ErrNoCircles,
		},
		{
			name: "radius",
			json: `{"kind": "circles", "circles": [
				{"radius": 0.5, "points_on_circle": 8, "windows": 2},
				{"radius": 0.4, "points_on_circle": 8, "windows": 2}
			]}`,
			want: ErrBadCircle,
		},
		{
			name: "windows",
			json: `{"kind": "circles", "circles": [{"radius": 1, "points_on_circle": 2, "windows": 4}]}`,
			want: ErrBadCircle,
		},
		{
			name: "primary",
			json: `{"kind": "circles", "circles": [{"radius": 1, "points_on_circle": 8, "windows": 2}],
				"primaries": {"blue": "blue"}}`,
			want: ErrBadPrimary,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.json))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := Read(strings.NewReader(`{"kind": "circles", "circles": [
		{"radius": 0.5, "points_on_circle": 8, "windows": 2},
		{"radius": 0.4, "points_on_circle": 8, "windows": 2}
	]}`))
	assert.ErrorContains(t, err, "circle 1")

	_, err = Read(strings.NewReader(`{"kind": `))
	assert.Error(t, err)
}

func TestPixels(t *testing.T) {
	w := &Window{Points: []vec.Vec2{{X: -1, Y: -1}, {X: 1, Y: 1}, {X: 0, Y: 0.5}}}
	got := w.Pixels(200, 100)
	assert.Equal(t, []vec.Vec2{{X: 0, Y: 0}, {X: 200, Y: 100}, {X: 100, Y: 75}}, got)
}

func TestOutline(t *testing.T) {
	w := &Window{Points: []vec.Vec2{{X: -1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1}}}
	var cmds []path.Command
	for cmd := range w.Outline() {
		cmds = append(cmds, cmd)
	}
	assert.Equal(t, []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}, cmds)
	assert.Equal(t, vec.Vec2{X: -1.0 / 3, Y: 1.0 / 3}, w.Center())
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "inner", RoleInner.String())
	assert.Equal(t, "outer", RoleOuter.String())
	assert.Equal(t, "Role(7)", Role(7).String())
}
