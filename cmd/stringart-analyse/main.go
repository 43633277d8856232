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


// Command stringart-analyse prints statistics about how often the pins in
// a sections file are visited.
package main

import (
	"flag"
	"fmt"
	"os"

	"seehuhn.de/go/stringart/analysis"
)

func main() {
	bins := flag.Int("bins", 10, "number of histogram bins")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-bins n] [sections.json]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	fname := "sections.json"
	switch flag.NArg() {
	case 0:
	case 1:
		fname = flag.Arg(0)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err := run(fname, *bins); err != nil {
		fmt.Fprintf(os.Stderr, "stringart-analyse: %v\n", err)
		os.Exit(1)
	}
}

func run(fname string, bins int) error {
	f, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := analysis.Load(f)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return analysis.Report(os.Stdout, s, bins)
}
