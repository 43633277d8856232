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


package analysis

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/stringart/layout"
	"seehuhn.de/go/stringart/output"
	"seehuhn.de/go/stringart/plan"
	"seehuhn.de/go/stringart/testcases"
)

const sample = `{
  "0": {"gray_length_in_m": 1.5, "nodes_gray": ["a", "b", "a", "c", "a"],
        "red_length_in_m": 0, "nodes_red": []},
  "1": {"gray_length_in_m": 0.25, "nodes_gray": ["a", "b"]}
}`

func TestSummarize(t *testing.T) {
	s, err := Load(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, s, 2)

	sum := Summarize(s, plan.Gray, 2)
	require.NotNil(t, sum)
	assert.Equal(t, []float64{1, 1, 1, 1, 3}, sum.Visits)
	assert.InDelta(t, 1.4, sum.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(0.8), sum.StdDev, 1e-12)
	assert.Equal(t, 3.0, sum.Max)
	assert.InDelta(t, 1.75, sum.Length, 1e-12)
	assert.Equal(t, []float64{1, 2.5, 4}, sum.Dividers)
	assert.Equal(t, []float64{4, 1}, sum.Counts)

	assert.Nil(t, Summarize(s, plan.Red, 2))
	assert.Nil(t, Summarize(s, plan.Blue, 2))
}

func TestLabels(t *testing.T) {
	s := Sections{"10": {}, "2": {}, "1": {}, "0": nil}
	assert.Equal(t, []string{"0", "1", "2", "10"}, s.Labels())
	assert.Nil(t, Summarize(s, plan.Gray, 4))
}

func TestLoadError(t *testing.T) {
	_, err := Load(strings.NewReader(`{"0": [`))
	assert.ErrorContains(t, err, "sections:")
}

func TestReport(t *testing.T) {
	s, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, Report(buf, s, 3))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "gray: 1.75 m, 5 pins, 7 visits"))
	assert.NotContains(t, out, "red:")
	assert.Equal(t, 4, strings.Count(out, "\n"))
}

// TestWrittenSections reads a file as written by the output package.
func TestWrittenSections(t *testing.T) {
	p, err := layout.Build(testcases.Rings)
	require.NoError(t, err)
	seqs := make([]plan.RgbSequence, len(p.Windows))
	seqs[2].Green = plan.Sequence{Pins: []plan.Pin{0, 3, 6, 3}, Length: 64}

	buf := &bytes.Buffer{}
	require.NoError(t, output.Sections(buf, p, seqs, output.YarnFactor(64)))
	s, err := Load(buf)
	require.NoError(t, err)
	assert.Len(t, s, len(p.Windows))

	sum := Summarize(s, plan.Green, 5)
	require.NotNil(t, sum)
	assert.Equal(t, []float64{1, 2}, sum.Visits)
	assert.InDelta(t, 0.5, sum.Length, 1e-12)
	assert.Nil(t, Summarize(s, plan.Gray, 5))
}
