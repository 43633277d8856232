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
	"image"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/stringart/layout"
	"seehuhn.de/go/stringart/testcases"
)

// TestDarkenBounded checks that repeated full passes make a pixel strictly
// darker every time, without ever reaching Dark.
func TestDarkenBounded(t *testing.T) {
	p := float32(1)
	for i := range 100 {
		next := darken(p, 1)
		require.Less(t, next, p, "pass %d", i)
		require.Greater(t, next, float32(Dark), "pass %d", i)
		p = next
	}
}

func TestDarkenCoverage(t *testing.T) {
	assert.Equal(t, float32(0.8), darken(0.8, 0))
	assert.InDelta(t, 0.4, darken(0.8, 1), 1e-7)

	// partial coverage darkens less than full coverage
	for _, w := range []float32{0.1, 0.25, 0.5, 0.9} {
		assert.Less(t, darken(0.8, w), float32(0.8))
		assert.Greater(t, darken(0.8, w), darken(0.8, 1))
	}
}

func squareRegion(t *testing.T, tone uint8) *Region {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 32, 32))
	for i := range img.Pix {
		img.Pix[i] = tone
	}
	r, err := NewRegion(img, testcases.Square(100))
	require.NoError(t, err)
	return r
}

func TestTrialLeavesCanvas(t *testing.T) {
	r := squareRegion(t, 128)
	c := NewCanvas(r, 1.5)
	c.Draw(1, 3, nil)
	before := slices.Clone(c.Pix)

	type change struct {
		x, y          int
		before, after float32
	}
	var trial, draw []change
	c.Trial(0, 2, func(x, y int, b, a float32) {
		trial = append(trial, change{x, y, b, a})
	})
	assert.Equal(t, before, c.Pix)
	require.NotEmpty(t, trial)

	c.Draw(0, 2, func(x, y int, b, a float32) {
		draw = append(draw, change{x, y, b, a})
	})
	assert.Equal(t, trial, draw)
	for _, ch := range draw {
		assert.Equal(t, ch.after, c.Pix[ch.y*c.Width+ch.x])
		assert.LessOrEqual(t, ch.after, ch.before)
	}
}

func TestCanvasImage(t *testing.T) {
	r := squareRegion(t, 128)
	c := NewCanvas(r, 1)

	img := c.Image()
	assert.Equal(t, r.Target.Rect, img.Rect)
	for _, v := range img.Pix {
		require.Equal(t, uint8(255), v)
	}

	c.Draw(0, 2, nil)
	img = c.Image()
	assert.Less(t, img.GrayAt(16, 16).Y, uint8(255))
	assert.Equal(t, uint8(255), img.GrayAt(30, 2).Y)
}

func TestRegionSquare(t *testing.T) {
	r := squareRegion(t, 77)
	assert.Equal(t, image.Rect(0, 0, 32, 32), r.Bounds)
	assert.Equal(t, 32, r.Width())
	assert.Equal(t, 32, r.Height())
	for y := range 32 {
		for x := range 32 {
			require.True(t, r.Inside(x, y), "(%d,%d)", x, y)
			require.Equal(t, uint8(77), r.Target.GrayAt(x, y).Y)
		}
	}
	assert.Equal(t, 32.0, r.Pins[2].X)
	assert.Equal(t, 32.0, r.Pins[2].Y)
}

func TestRegionCrop(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for y := range 64 {
		for x := range 64 {
			img.Pix[y*img.Stride+x] = uint8(x + 4*y)
		}
	}
	w := testcases.Disc(16, 0.5, 10)
	r, err := NewRegion(img, w)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(16, 16, 48, 48), r.Bounds)
	for y := range r.Height() {
		for x := range r.Width() {
			require.Equal(t, img.GrayAt(x+16, y+16), r.Target.GrayAt(x, y))
		}
	}

	assert.True(t, r.Inside(16, 16))
	assert.False(t, r.Inside(0, 0))
	assert.False(t, r.Inside(31, 31))
	assert.InDelta(t, 16.0, r.Pins[0].X, 1e-9)
	assert.InDelta(t, 32.0, r.Pins[0].Y, 1e-9)
}

func TestRegionOutOfBounds(t *testing.T) {
	w := testcases.Disc(8, 1.2, 10)
	_, err := NewRegion(image.NewGray(image.Rect(0, 0, 20, 20)), w)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = NewRegion(image.NewGray(image.Rect(0, 0, 20, 20)), &layout.Window{})
	assert.ErrorIs(t, err, ErrTooFewPins)
}
