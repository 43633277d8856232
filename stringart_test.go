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


package stringart

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/stringart/layout"
	"seehuhn.de/go/stringart/plan"
	"seehuhn.de/go/stringart/testcases"
	"seehuhn.de/go/stringart/tone"
)

const size = 64

// portrait is a colour test image: a dark red disc on a light background,
// with a horizontal gray ramp.
func portrait() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			dx := float64(x) - size/2
			dy := float64(y) - size/2
			v := uint8(120 + x*2)
			c := color.RGBA{R: v, G: v, B: v, A: 255}
			if math.Hypot(dx, dy) < 12 {
				c = color.RGBA{R: 160, G: 20, B: 30, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func rings(t *testing.T) *layout.Plan {
	t.Helper()
	p, err := layout.Build(testcases.Rings)
	require.NoError(t, err)
	return p
}

func TestPlanes(t *testing.T) {
	img := portrait()
	prim := tone.DefaultPrimaries()

	mono := Planes(img, prim, false)
	require.Len(t, mono, 1)
	assert.Equal(t, plan.Gray, mono[0].Channel)
	assert.Equal(t, plan.Class{Count: 1}, mono[0].Class)
	assert.Equal(t, image.Rect(0, 0, size, size), mono[0].Image.Rect)

	rgb := Planes(img, prim, true)
	require.Len(t, rgb, 4)
	want := []plan.Channel{plan.Red, plan.Green, plan.Blue, plan.Gray}
	for i, pl := range rgb {
		assert.Equal(t, want[i], pl.Channel)
		assert.Equal(t, plan.ClassFor(want[i], 3), pl.Class)
	}
	assert.Equal(t, plan.Class{Count: 3, Index: 2}, rgb[2].Class)
	assert.Equal(t, plan.Class{Count: 1}, rgb[3].Class)

	// the red disc needs red thread, the gray ramp does not
	assert.Less(t, rgb[0].Image.GrayAt(size/2, size/2).Y, uint8(128))
	assert.Equal(t, uint8(255), rgb[0].Image.GrayAt(2, 2).Y)
}

func TestRun(t *testing.T) {
	p := rings(t)
	planes := Planes(portrait(), p.Primaries, true)

	res, err := Run(p, planes, &Options{Workers: 3})
	require.NoError(t, err)
	require.Len(t, res.Sequences, len(p.Windows))
	require.Len(t, res.Graphs, len(p.Windows))
	assert.Equal(t, len(p.Windows)*len(planes), res.Runs)

	total := 0.0
	unconverged := 0
	for i, rgb := range res.Sequences {
		for _, pl := range planes {
			seq := rgb.Channel(pl.Channel)
			require.NotEmpty(t, seq.Pins, "window %d, %s", i, pl.Channel)
			assert.Equal(t, plan.Pin(0), seq.Pins[0])
			assert.LessOrEqual(t, seq.Moves(), p.Windows[i].Iterations)
			total += seq.Length
			if seq.Reason == plan.EndOfIteration {
				unconverged++
			}
		}
		assert.Equal(t, rgb.Length(), rgb.Red.Length+rgb.Green.Length+rgb.Blue.Length+rgb.Gray.Length)
	}
	assert.InDelta(t, total, res.Length, 1e-9)
	assert.Greater(t, res.Length, 0.0)
	assert.Equal(t, unconverged, res.Unconverged)
}

// TestRunDeterministic checks that the result does not depend on the
// number of workers.
func TestRunDeterministic(t *testing.T) {
	p := rings(t)
	planes := Planes(portrait(), p.Primaries, false)

	a, err := Run(p, planes, &Options{Workers: 1})
	require.NoError(t, err)
	b, err := Run(p, planes, &Options{Workers: 8})
	require.NoError(t, err)

	assert.Equal(t, a.Sequences, b.Sequences)
	assert.Equal(t, a.Length, b.Length)
	assert.Equal(t, a.Unconverged, b.Unconverged)
}

func TestRunErrors(t *testing.T) {
	p := rings(t)

	_, err := Run(p, nil, nil)
	assert.ErrorIs(t, err, ErrNoPlanes)

	planes := []Plane{
		{Channel: plan.Red, Image: image.NewGray(image.Rect(0, 0, size, size))},
		{Channel: plan.Gray, Image: image.NewGray(image.Rect(0, 0, size, size+1))},
	}
	_, err = Run(p, planes, nil)
	assert.ErrorContains(t, err, "plane gray")

	wide, err := layout.Build(&layout.Definition{
		Kind:    "circles",
		Circles: []layout.Circle{{Radius: 1.5, PointsOnCircle: 12, Windows: 2}},
	})
	require.NoError(t, err)
	_, err = Run(wide, planes[:1], nil)
	assert.ErrorIs(t, err, plan.ErrOutOfBounds)
}

func TestRunLogging(t *testing.T) {
	p := rings(t)
	planes := Planes(portrait(), p.Primaries, false)

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	res, err := Run(p, planes, &Options{Logger: logger})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=planning")
	assert.Contains(t, out, "tasks=8")
	assert.Contains(t, out, `msg="run finished"`)
	if res.Unconverged > 0 {
		assert.Contains(t, out, "regions not covered")
	}
}

func TestDebugDir(t *testing.T) {
	p := rings(t)
	planes := Planes(portrait(), p.Primaries, false)
	dir := t.TempDir()

	res, err := Run(p, planes, &Options{DebugDir: dir})
	require.NoError(t, err)
	for n := range res.Runs {
		for _, suffix := range []string{"-mask.png", "-target.png", ".png"} {
			_, err := os.Stat(filepath.Join(dir, strconv.Itoa(n)+suffix))
			assert.NoError(t, err)
		}
	}

	_, err = Run(p, planes, &Options{DebugDir: filepath.Join(dir, "missing")})
	assert.Error(t, err)
}

func TestWarning(t *testing.T) {
	r := &Result{Runs: 8}
	assert.Equal(t, "", r.Warning())
	r.Unconverged = 2
	assert.Equal(t, "regions not covered: 2 / 8", r.Warning())
}
