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
	"cmp"
	"math"
	"math/rand/v2"
	"slices"
)

// Options are the tunable parameters of the planner.
type Options struct {
	// CoverageFactor converts the required darkness of a window into a
	// thread length budget, in pixels.  A run stops as Covered once the
	// thread is longer than RequiredDarkness times CoverageFactor.
	CoverageFactor float64

	// Discouragement is the exponent used for the tie-break weight of
	// lines outside the class of the channel.  Lines inside the class use
	// exponent 1.
	Discouragement float64

	// ThreadWidth is the width of the thread, in pixels.
	ThreadWidth float64

	// Trace, if not nil, is called after every committed segment.
	Trace func(Step)
}

// DefaultOptions returns the standard planner settings.
func DefaultOptions() Options {
	return Options{
		CoverageFactor: 16,
		Discouragement: 4,
		ThreadWidth:    1,
	}
}

// Step describes one committed segment.
type Step struct {
	Iteration  int
	From, To   Pin
	Improve    float64 // reduction of the score by this segment
	Candidates int     // number of improving lines at this step
	Length     float64 // thread length after this step
	Score      float64 // score after this step
}

// Result is the outcome of one run.
type Result struct {
	Sequence

	Required float64 // required darkness of the region
	Score    float64 // final score
	Canvas   *Canvas // final state of the simulated canvas
}

// Planner plans thread sequences for one window.  A Planner can be used
// concurrently for different regions and channels of its window.
type Planner struct {
	graph *Graph
	opt   Options
}

// NewPlanner returns a planner using the lines of g.  If opt is nil,
// DefaultOptions are used.
func NewPlanner(g *Graph, opt *Options) *Planner {
	p := &Planner{graph: g, opt: DefaultOptions()}
	if opt != nil {
		p.opt = *opt
	}
	return p
}

// candidate is an improving line at the current pin.
type candidate struct {
	Line
	improve float64
	weight  float64
}

// Run plans the thread for one channel of a region.
func (p *Planner) Run(r *Region, class Class) *Result {
	required := RequiredDarkness(r)
	budget := required * p.opt.CoverageFactor
	seed := math.Float64bits(required)
	rng := rand.New(rand.NewPCG(seed, seed))

	canvas := NewCanvas(r, p.opt.ThreadWidth)
	scorer := NewScorer(r, canvas)
	hits := make([]int, p.graph.Pins())
	var cands []candidate

	res := &Result{
		Sequence: Sequence{
			Pins:   []Pin{0},
			Reason: EndOfIteration,
		},
		Required: required,
		Canvas:   canvas,
	}
	current := Pin(0)

	for iter := range r.Window.Iterations {
		if res.Length >= budget {
			res.Reason = Covered
			break
		}

		cands = cands[:0]
		for _, l := range p.graph.From(current) {
			if d := scorer.Delta(current, l.Target); d < 0 {
				cands = append(cands, candidate{Line: l, improve: -d})
			}
		}
		if len(cands) == 0 {
			res.Reason = LocalOptimum
			break
		}
		for i := range cands {
			e := 1.0
			if class.Discourages(current, cands[i].Target) {
				e = p.opt.Discouragement
			}
			cands[i].weight = tieWeight(rng.Float64(), e)
		}

		next := choose(cands, hits)
		scorer.Commit(current, next.Target)
		res.Length += next.Length
		hits[next.Target]++
		res.Pins = append(res.Pins, next.Target)

		if p.opt.Trace != nil {
			p.opt.Trace(Step{
				Iteration:  iter,
				From:       current,
				To:         next.Target,
				Improve:    next.improve,
				Candidates: len(cands),
				Length:     res.Length,
				Score:      scorer.Score(),
			})
		}
		current = next.Target
	}

	res.Score = scorer.Score()
	return res
}

// tieWeight maps a uniform random number u in [0,1) to a random weight.
// Larger exponents e make large weights rarer.
func tieWeight(u, e float64) float64 {
	return math.Pow(u, e/u)
}

// choose picks the next line among the improving candidates.  The line with
// the largest improvement is used unless some other candidate leads to a
// pin which was visited less often and has a larger random weight.  In this
// case the candidate with the largest weight among those pins wins.
func choose(cands []candidate, hits []int) candidate {
	slices.SortStableFunc(cands, func(a, b candidate) int {
		return cmp.Compare(a.improve, b.improve)
	})
	last := len(cands) - 1
	primary := cands[last]

	secondary := -1
	for i, c := range cands[:last] {
		if hits[c.Target] >= hits[primary.Target] {
			continue
		}
		if secondary < 0 || c.weight > cands[secondary].weight {
			secondary = i
		}
	}
	if secondary < 0 || primary.weight > cands[secondary].weight {
		return primary
	}
	return cands[secondary]
}
