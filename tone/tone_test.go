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


package tone

import (
	"image"
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearEncode(t *testing.T) {
	assert.Equal(t, 0.0, Linear(0))
	assert.Equal(t, 1.0, Linear(255))
	for v := range 256 {
		got := Encode(Linear(uint8(v)))
		assert.InDelta(t, v, int(got), 1, "v=%d", v)
		if v > 0 {
			assert.Greater(t, Linear(uint8(v)), Linear(uint8(v-1)))
		}
	}

	assert.Equal(t, uint8(0), Encode(-1))
	assert.Equal(t, uint8(255), Encode(2))
	assert.Equal(t, uint8(0), Encode(0))
}

func TestGray(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 15, 10))
	for y := 5; y < 10; y++ {
		for x := 5; x < 15; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	g := Gray(img)
	assert.Equal(t, image.Rect(0, 0, 10, 5), g.Rect)
	for _, v := range g.Pix {
		require.Equal(t, uint8(200), v)
	}

	// gray images at the origin are used as they are
	same := image.NewGray(image.Rect(0, 0, 3, 3))
	assert.Same(t, same, Gray(same))
}

func TestDownscale(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 400, 200))
	small := Downscale(img, 100)
	assert.Equal(t, image.Rect(0, 0, 100, 50), small.Bounds())

	assert.Same(t, img, Downscale(img, 0))
	assert.Same(t, img, Downscale(img, 400))
}

// TestDecoupleGray checks that colourless pixels only use the gray thread.
func TestDecoupleGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 1))
	copy(img.Pix, []uint8{0, 80, 160, 255})
	p := Decouple(img, DefaultPrimaries())

	for x := range 4 {
		assert.Equal(t, uint8(255), p.Red.GrayAt(x, 0).Y, "x=%d", x)
		assert.Equal(t, uint8(255), p.Green.GrayAt(x, 0).Y, "x=%d", x)
		assert.Equal(t, uint8(255), p.Blue.GrayAt(x, 0).Y, "x=%d", x)
	}
	assert.Equal(t, uint8(0), p.Gray.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(255), p.Gray.GrayAt(3, 0).Y)
	assert.Less(t, p.Gray.GrayAt(1, 0).Y, p.Gray.GrayAt(2, 0).Y)
}

// TestDecouplePrimary checks that a pure primary is drawn with its own
// thread only.
func TestDecouplePrimary(t *testing.T) {
	prim := DefaultPrimaries()
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})
	img.Set(2, 0, color.RGBA{B: 255, A: 255})
	p := Decouple(img, prim)

	planes := []*image.Gray{p.Red, p.Green, p.Blue}
	for x := range 3 {
		assert.Less(t, p.Gray.GrayAt(x, 0).Y, uint8(10), "x=%d", x)
		for i, pl := range planes {
			v := pl.GrayAt(x, 0).Y
			if i == x {
				assert.Less(t, v, uint8(10), "x=%d, plane %d", x, i)
			} else {
				assert.Greater(t, v, uint8(245), "x=%d, plane %d", x, i)
			}
		}
	}
}

// TestPixelSector checks that a mix of two primaries is split between
// exactly these two.
func TestPixelSector(t *testing.T) {
	prim := DefaultPrimaries()
	d := newDecoupler(prim)

	orange := toLab(colorful.Color{R: 1, G: 0.5})
	w := d.pixel(orange)
	assert.Greater(t, w[1], 0.0)
	assert.Greater(t, w[2], 0.0)
	assert.Equal(t, 0.0, w[3])
	assert.Greater(t, w[1], w[2])

	white := toLab(colorful.Color{R: 1, G: 1, B: 1})
	w = d.pixel(white)
	assert.InDelta(t, 1, w[0], 1e-6)
	assert.Equal(t, 0.0, w[1]+w[2]+w[3])
}
