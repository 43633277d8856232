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

import "fmt"

// Pin is the index of a pin within its window.
type Pin int

// BreakReason tells why a run stopped.
type BreakReason int

const (
	// EndOfIteration means that the iteration cap was reached before the
	// window was covered.
	EndOfIteration BreakReason = iota

	// Covered means that the thread length reached the budget.
	Covered

	// LocalOptimum means that no line from the current pin improved the
	// canvas.
	LocalOptimum
)

func (r BreakReason) String() string {
	switch r {
	case EndOfIteration:
		return "end of iteration"
	case Covered:
		return "covered"
	case LocalOptimum:
		return "local optimum"
	default:
		return fmt.Sprintf("BreakReason(%d)", int(r))
	}
}

// Sequence is the result of one run.
type Sequence struct {
	Pins   []Pin   // visited pins, starting with pin 0
	Length float64 // total thread length, in pixels of the full image
	Reason BreakReason
}

// Moves returns the number of thread segments in the sequence.
func (s *Sequence) Moves() int {
	return max(len(s.Pins)-1, 0)
}

// Channel identifies one tonal plane.
type Channel int

// The tonal planes.
const (
	Gray Channel = iota
	Red
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Gray:
		return "gray"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// RgbSequence collects the sequences of all channels of one window.
// Channels which were not planned have an empty sequence.
type RgbSequence struct {
	Red, Green, Blue, Gray Sequence
}

// Channel returns the sequence for channel c.
func (s *RgbSequence) Channel(c Channel) *Sequence {
	switch c {
	case Red:
		return &s.Red
	case Green:
		return &s.Green
	case Blue:
		return &s.Blue
	default:
		return &s.Gray
	}
}

// Length returns the total thread length over all channels.
func (s *RgbSequence) Length() float64 {
	return s.Red.Length + s.Green.Length + s.Blue.Length + s.Gray.Length
}
