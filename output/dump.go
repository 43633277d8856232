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
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"seehuhn.de/go/stringart/plan"
)

// DumpRun stores the mask, the target and the final canvas of run n as PNG
// images in dir.  The files are called n-mask.png, n-target.png and n.png.
func DumpRun(dir string, n int, r *plan.Region, c *plan.Canvas) error {
	files := []struct {
		name string
		img  image.Image
	}{
		{fmt.Sprintf("%d-mask.png", n), r.Mask},
		{fmt.Sprintf("%d-target.png", n), r.Target},
		{fmt.Sprintf("%d.png", n), c.Image()},
	}
	for _, f := range files {
		if err := WritePNG(filepath.Join(dir, f.name), f.img); err != nil {
			return err
		}
	}
	return nil
}

// WritePNG stores img in the file fname.
func WritePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
