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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/stringart/layout"
)

// pinSize is the side length of a pin marker, in PDF points.
const pinSize = 2

// PDFTemplate writes a single page PDF file which shows the window
// outlines and marks every pin.  The page measures width×height points.
// Pins shared by several windows are marked once.
func PDFTemplate(fname string, p *layout.Plan, width, height int) error {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, pixel coordinates start top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	page.SetStrokeColor(color.DeviceGray(0.6))
	page.SetLineWidth(0.5)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	for _, win := range p.Windows {
		for i, pt := range win.Pixels(width, height) {
			if i == 0 {
				page.MoveTo(pt.X, pt.Y)
			} else {
				page.LineTo(pt.X, pt.Y)
			}
		}
		page.ClosePath()
	}
	page.Stroke()

	page.SetFillColor(color.DeviceGray(0))
	seen := make(map[string]bool)
	for _, win := range p.Windows {
		for i, pt := range win.Pixels(width, height) {
			if seen[win.Names[i]] {
				continue
			}
			seen[win.Names[i]] = true
			page.Rectangle(pt.X-pinSize/2, pt.Y-pinSize/2, pinSize, pinSize)
		}
	}
	page.Fill()

	return page.Close()
}
