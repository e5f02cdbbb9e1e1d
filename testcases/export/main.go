// seehuhn.de/go/spline - Catmull-Rom spline segments
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

// Command export renders the shared test cases to PNG figures.
// Each figure shows the curve at the case's alpha together with the
// uniform (alpha=0) curve through the same control points, and marks
// the control points with dots.
// Run from the spline module root directory.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/spline"
	"seehuhn.de/go/spline/preview"
	"seehuhn.de/go/spline/testcases"
)

const (
	width  = 320
	height = 240
	margin = 16
)

func main() {
	outDir := flag.String("o", filepath.Join("testdata", "figures"),
		"output directory for the PNG figures")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal(err)
	}

	r := preview.NewRenderer()
	for _, tc := range testcases.All {
		if err := export(r, tc, filepath.Join(*outDir, tc.Name+".png")); err != nil {
			log.Fatalf("%s: %v", tc.Name, err)
		}
	}
}

func export(r *preview.Renderer, tc testcases.TestCase, fname string) error {
	seg, err := spline.New(tc.Quad[:], tc.Alpha)
	if err != nil {
		return err
	}
	uniform := seg
	uniform.Alpha = spline.Uniform.Exponent()

	// Fit both curves and all control points into the canvas.
	bbox, err := seg.Bounds(tc.Resolution)
	if err != nil {
		return err
	}
	ubox, err := uniform.Bounds(tc.Resolution)
	if err != nil {
		return err
	}
	bbox = union(bbox, ubox)
	for _, pt := range tc.Quad {
		bbox.LLx = min(bbox.LLx, pt.X)
		bbox.URx = max(bbox.URx, pt.X)
		bbox.LLy = min(bbox.LLy, pt.Y)
		bbox.URy = max(bbox.URy, pt.Y)
	}
	r.CTM = fit(bbox)

	img := image.NewAlpha(image.Rect(0, 0, width, height))

	pts, err := seg.Sample(tc.Resolution)
	if err != nil {
		return err
	}
	upts, err := uniform.Sample(tc.Resolution)
	if err != nil {
		return err
	}

	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Polyline(img, upts)

	r.Width = 2
	r.Cap = graphics.LineCapRound
	r.Polyline(img, pts)

	for _, pt := range tc.Quad {
		r.Dot(img, pt, 3)
	}

	return writePNG(fname, img)
}

// fit maps bbox into the canvas with equal x and y scaling, a margin,
// and the y axis pointing up (plot convention).
func fit(bbox rect.Rect) matrix.Matrix {
	bw := bbox.URx - bbox.LLx
	bh := bbox.URy - bbox.LLy

	s := math.Inf(1)
	if bw > 0 {
		s = min(s, (width-2*margin)/bw)
	}
	if bh > 0 {
		s = min(s, (height-2*margin)/bh)
	}
	if math.IsInf(s, 1) {
		s = 1
	}

	cx := (bbox.LLx + bbox.URx) / 2
	cy := (bbox.LLy + bbox.URy) / 2
	return matrix.Matrix{s, 0, 0, -s, width/2 - s*cx, height/2 + s*cy}
}

func union(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}

// writePNG writes coverage as black ink on a white background.
func writePNG(fname string, img *image.Alpha) (err error) {
	gray := image.NewGray(img.Bounds())
	for i, a := range img.Pix {
		gray.Pix[i] = 0xff - a
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, gray)
}
