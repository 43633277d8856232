// Command export writes the planning scenarios to testdata/, as target
// images and a JSON file with the window geometry.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/stringart/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc := toJSON(category, tc)
			writeImage(filepath.Join("testdata", jtc.Image), &tc)
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string      `json:"name"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Image      string      `json:"image"`
	Role       string      `json:"role"`
	Iterations int         `json:"iterations"`
	Pins       [][]float64 `json:"pins"`
	Names      []string    `json:"names"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	name := category + "_" + tc.Name
	jtc := jsonTestCase{
		Name:       name,
		Width:      tc.Width,
		Height:     tc.Height,
		Image:      name + ".png",
		Role:       tc.Window.Role.String(),
		Iterations: tc.Window.Iterations,
		Names:      tc.Window.Names,
	}
	for _, p := range tc.Window.Points {
		jtc.Pins = append(jtc.Pins, []float64{p.X, p.Y})
	}
	return jtc
}

func writeImage(fname string, tc *testcases.TestCase) {
	f, err := os.Create(fname)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := png.Encode(f, tc.Image()); err != nil {
		panic(err)
	}
}
