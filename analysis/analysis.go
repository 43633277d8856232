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


// Package analysis reports how evenly the pins of a finished plan are used.
//
// Every visit of a pin costs one more loop of thread around it, so pins
// which are visited much more often than the others are a problem when
// building the picture.
package analysis

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"seehuhn.de/go/stringart/output"
	"seehuhn.de/go/stringart/plan"
)

// Sections maps window labels to the threading instructions of the window.
type Sections map[string]*output.Section

// Load reads a sections file, as written by output.Sections.
func Load(r io.Reader) (Sections, error) {
	var s Sections
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("sections: %w", err)
	}
	return s, nil
}

// Labels returns the window labels in numerical order.
func (s Sections) Labels() []string {
	return slices.SortedFunc(maps.Keys(s), func(a, b string) int {
		return cmp.Or(cmp.Compare(len(a), len(b)), strings.Compare(a, b))
	})
}

// Summary describes the pin visits for one channel.
type Summary struct {
	Channel plan.Channel

	// Visits holds the number of visits of every pin which is used at
	// least once.  Pins are counted separately in each window.
	Visits []float64

	Mean, StdDev float64
	Max          float64
	Length       float64 // total thread length, in metres

	// Dividers are the bin edges of Counts.  Bin i covers the visit
	// counts in [Dividers[i], Dividers[i+1]).
	Dividers []float64
	Counts   []float64
}

// Summarize computes the visit statistics for channel ch, using the given
// number of histogram bins.  The result is nil if the channel has no
// thread at all.
func Summarize(s Sections, ch plan.Channel, bins int) *Summary {
	res := &Summary{Channel: ch}
	for _, label := range s.Labels() {
		sec := s[label]
		if sec == nil {
			continue
		}
		visits := make(map[string]int)
		for _, name := range sec.Nodes(ch) {
			visits[name]++
		}
		for _, name := range slices.Sorted(maps.Keys(visits)) {
			res.Visits = append(res.Visits, float64(visits[name]))
		}
		res.Length += length(sec, ch)
	}
	if len(res.Visits) == 0 {
		return nil
	}

	slices.Sort(res.Visits)
	res.Mean, res.StdDev = stat.MeanStdDev(res.Visits, nil)
	res.Max = floats.Max(res.Visits)

	bins = max(bins, 1)
	res.Dividers = floats.Span(make([]float64, bins+1), res.Visits[0], res.Max+1)
	res.Counts = stat.Histogram(nil, res.Dividers, res.Visits, nil)
	return res
}

func length(sec *output.Section, ch plan.Channel) float64 {
	switch ch {
	case plan.Red:
		return sec.RedLength
	case plan.Green:
		return sec.GreenLength
	case plan.Blue:
		return sec.BlueLength
	default:
		return sec.GrayLength
	}
}

// Report writes the summaries of all channels which have thread.
func Report(w io.Writer, s Sections, bins int) error {
	for _, ch := range []plan.Channel{plan.Gray, plan.Red, plan.Green, plan.Blue} {
		sum := Summarize(s, ch, bins)
		if sum == nil {
			continue
		}
		if err := sum.write(w); err != nil {
			return err
		}
	}
	return nil
}

const barWidth = 40

func (s *Summary) write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s: %.2f m, %d pins, %.0f visits, mean %.2f, stddev %.2f, max %.0f\n",
		s.Channel, s.Length, len(s.Visits), floats.Sum(s.Visits), s.Mean, s.StdDev, s.Max)
	if err != nil {
		return err
	}

	top := floats.Max(s.Counts)
	for i, c := range s.Counts {
		bar := strings.Repeat("#", int(c/top*barWidth+0.5))
		_, err := fmt.Fprintf(w, "  %6.1f .. %6.1f %5.0f %s\n",
			s.Dividers[i], s.Dividers[i+1], c, bar)
		if err != nil {
			return err
		}
	}
	return nil
}
