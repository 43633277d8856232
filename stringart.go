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

// Package stringart plans the threads for all windows and channels of a
// string art picture.
//
// The work is split into one task per window and channel.  Tasks run in
// parallel and are independent of each other: the graph of every window is
// built before the tasks start, and every task writes its result into its
// own slot.  Totals are summed after all tasks have finished, in a fixed
// order, so that the result does not depend on scheduling.
package stringart

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/stringart/layout"
	"seehuhn.de/go/stringart/output"
	"seehuhn.de/go/stringart/plan"
	"seehuhn.de/go/stringart/tone"
)

// Plane is one tonal plane of the input image, together with the class
// used for its thread.
type Plane struct {
	Channel plan.Channel
	Image   *image.Gray
	Class   plan.Class
}

// Planes splits img into the planes to be threaded.  In RGB mode, these
// are one plane per primary followed by a gray plane.  Otherwise only the
// gray plane is used.
func Planes(img image.Image, prim tone.Primaries, rgb bool) []Plane {
	if !rgb {
		return []Plane{{
			Channel: plan.Gray,
			Image:   tone.Gray(img),
			Class:   plan.ClassFor(plan.Gray, 1),
		}}
	}

	p := tone.Decouple(img, prim)
	planes := []Plane{
		{Channel: plan.Red, Image: p.Red},
		{Channel: plan.Green, Image: p.Green},
		{Channel: plan.Blue, Image: p.Blue},
		{Channel: plan.Gray, Image: p.Gray},
	}
	for i := range planes {
		planes[i].Class = plan.ClassFor(planes[i].Channel, 3)
	}
	return planes
}

// Options control a batch run.
type Options struct {
	// Plan holds the planner settings.  If nil, plan.DefaultOptions are
	// used.
	Plan *plan.Options

	// Workers is the maximal number of tasks running at the same time.
	// If zero, runtime.GOMAXPROCS(0) is used.
	Workers int

	// Logger receives progress messages.  If nil, nothing is logged.
	Logger *slog.Logger

	// DebugDir, if not empty, is the directory where mask, target and
	// final canvas of every run are stored as PNG images.
	DebugDir string
}

// Result collects the sequences of all windows.
type Result struct {
	Sequences []plan.RgbSequence // indexed by window
	Graphs    []*plan.Graph      // indexed by window

	Length      float64 // total thread length, in pixels
	Runs        int     // number of planned (window, channel) pairs
	Unconverged int     // runs which ended at the iteration cap
}

// Warning describes runs which did not converge.  It returns the empty
// string if all runs converged.
func (r *Result) Warning() string {
	if r.Unconverged == 0 {
		return ""
	}
	return fmt.Sprintf("regions not covered: %d / %d", r.Unconverged, r.Runs)
}

// ErrNoPlanes is returned by Run if no image plane is given.
var ErrNoPlanes = errors.New("no image planes")

// task is one (window, channel) pair.
type task struct {
	window int
	plane  int
	region *plan.Region
}

// Run plans all windows of p for all given planes.  All planes must have
// the same size.  The first error aborts the batch.
func Run(p *layout.Plan, planes []Plane, opt *Options) (*Result, error) {
	if opt == nil {
		opt = &Options{}
	}
	logger := opt.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if len(planes) == 0 {
		return nil, ErrNoPlanes
	}
	size := planes[0].Image.Bounds().Size()
	for _, pl := range planes[1:] {
		if s := pl.Image.Bounds().Size(); s != size {
			return nil, fmt.Errorf("plane %s: size %v differs from %v", pl.Channel, s, size)
		}
	}

	res := &Result{
		Sequences: make([]plan.RgbSequence, len(p.Windows)),
		Graphs:    make([]*plan.Graph, len(p.Windows)),
	}
	planners := make([]*plan.Planner, len(p.Windows))
	for i, w := range p.Windows {
		g, err := plan.NewGraph(w, size.X, size.Y)
		if err != nil {
			return nil, err
		}
		res.Graphs[i] = g
		planners[i] = plan.NewPlanner(g, opt.Plan)
	}

	var tasks []task
	for j, pl := range planes {
		for i, w := range p.Windows {
			r, err := plan.NewRegion(pl.Image, w)
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, task{window: i, plane: j, region: r})
		}
	}
	logger.Info("planning",
		"windows", len(p.Windows),
		"planes", len(planes),
		"tasks", len(tasks))

	workers := opt.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var eg errgroup.Group
	eg.SetLimit(workers)

	slots := make([]plan.Sequence, len(tasks))
	var counter atomic.Int64
	for k, t := range tasks {
		eg.Go(func() error {
			pl := planes[t.plane]
			out := planners[t.window].Run(t.region, pl.Class)
			slots[k] = out.Sequence

			n := counter.Add(1) - 1
			logger.Debug("run finished",
				"run", n,
				"window", t.window,
				"channel", pl.Channel,
				"reason", out.Reason,
				"segments", out.Moves(),
				"length", out.Length)

			if opt.DebugDir != "" {
				if err := output.DumpRun(opt.DebugDir, int(n), t.region, out.Canvas); err != nil {
					return fmt.Errorf("window %d, %s: %w", t.window, pl.Channel, err)
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for k, t := range tasks {
		seq := slots[k]
		*res.Sequences[t.window].Channel(planes[t.plane].Channel) = seq
		res.Length += seq.Length
		res.Runs++
		if seq.Reason == plan.EndOfIteration {
			res.Unconverged++
		}
	}
	if msg := res.Warning(); msg != "" {
		logger.Warn(msg)
	}
	return res, nil
}
