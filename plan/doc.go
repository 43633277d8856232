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

// Package plan computes the order in which a thread visits the pins of one
// window.
//
// The planner works greedily.  Starting at pin 0, it evaluates every legal
// line from the current pin against a simulated canvas and keeps the lines
// which bring the canvas closer to the target image.  Usually the largest
// improvement wins.  A random weight lets a less visited pin win instead,
// and lines outside the class of the current channel get smaller weights.
//
// The simulated canvas models light: every pass of the thread removes half
// of the remaining light from fully covered pixels, so that repeated passes
// approach black without ever reaching it.  Canvas and target are compared
// in linear light, averaged over 4×4 blocks.
//
// A run ends when the thread is long enough to cover the darkness of the
// target (Covered), when no line improves the canvas (LocalOptimum), or
// when the iteration cap of the window is reached (EndOfIteration).  All
// random choices are seeded from the target image, so that runs are
// reproducible.
package plan
