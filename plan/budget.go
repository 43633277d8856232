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

import "seehuhn.de/go/stringart/tone"

// RequiredDarkness returns the amount of light the thread must remove from
// the window: the sum, over all pixels inside the window, of one minus the
// linear light of the target.
func RequiredDarkness(r *Region) float64 {
	var sum float64
	for y := range r.Height() {
		for x := range r.Width() {
			if !r.Inside(x, y) {
				continue
			}
			sum += max(0, 1-tone.Linear(r.Target.Pix[y*r.Target.Stride+x]))
		}
	}
	return sum
}

// Class assigns a preferred share of the lines to one channel, so that
// channels sharing a window spread over different routes.  A line from o
// to t belongs to class (o+t) mod Count.
type Class struct {
	Count int
	Index int
}

// Discourages reports whether the line from o to t lies outside the class.
// A class with Count <= 1 discourages nothing.
func (c Class) Discourages(o, t Pin) bool {
	if c.Count <= 1 {
		return false
	}
	return (int(o)+int(t))%c.Count != c.Index
}

// ClassFor returns the class of channel ch when count coloured channels
// share a window.  The gray channel always uses the trivial class.
func ClassFor(ch Channel, count int) Class {
	if ch == Gray || count <= 1 {
		return Class{Count: 1}
	}
	return Class{Count: count, Index: (int(ch) - int(Red)) % count}
}
