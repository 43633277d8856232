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


package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"seehuhn.de/go/stringart/layout"
	"seehuhn.de/go/stringart/plan"
)

// BoardHeight is the height of the finished picture, in metres.
const BoardHeight = 0.5

// YarnFactor converts lengths in pixels of an image with the given height
// into metres on the board.
func YarnFactor(height int) float64 {
	return BoardHeight / float64(height)
}

// Section is the threading instruction for one window.  The node lists give
// the pins in the order they are visited, by name.  The start pin is not
// listed.
type Section struct {
	RedLength   float64  `json:"red_length_in_m"`
	RedNodes    []string `json:"nodes_red"`
	GreenLength float64  `json:"green_length_in_m"`
	GreenNodes  []string `json:"nodes_green"`
	BlueLength  float64  `json:"blue_length_in_m"`
	BlueNodes   []string `json:"nodes_blue"`
	GrayLength  float64  `json:"gray_length_in_m"`
	GrayNodes   []string `json:"nodes_gray"`
}

// Nodes returns the node list for channel c.
func (s *Section) Nodes(c plan.Channel) []string {
	switch c {
	case plan.Red:
		return s.RedNodes
	case plan.Green:
		return s.GreenNodes
	case plan.Blue:
		return s.BlueNodes
	default:
		return s.GrayNodes
	}
}

// NewSection converts the sequences of window win.  Lengths are multiplied
// by factor.
func NewSection(win *layout.Window, seq *plan.RgbSequence, factor float64) *Section {
	names := func(s *plan.Sequence) []string {
		res := make([]string, 0, s.Moves())
		for _, p := range s.Pins[min(1, len(s.Pins)):] {
			res = append(res, win.Names[p])
		}
		return res
	}
	return &Section{
		RedLength:   seq.Red.Length * factor,
		RedNodes:    names(&seq.Red),
		GreenLength: seq.Green.Length * factor,
		GreenNodes:  names(&seq.Green),
		BlueLength:  seq.Blue.Length * factor,
		BlueNodes:   names(&seq.Blue),
		GrayLength:  seq.Gray.Length * factor,
		GrayNodes:   names(&seq.Gray),
	}
}

// Sections writes the sections of all windows as a JSON object, keyed by
// window index.
func Sections(w io.Writer, p *layout.Plan, seqs []plan.RgbSequence, factor float64) error {
	if len(seqs) != len(p.Windows) {
		return fmt.Errorf("sections: %d sequences for %d windows: %w",
			len(seqs), len(p.Windows), ErrMismatch)
	}

	all := make(map[string]*Section, len(p.Windows))
	for i, win := range p.Windows {
		all[strconv.Itoa(i)] = NewSection(win, &seqs[i], factor)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(all)
}
