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

// Package testcases defines shared spline segments used by the unit
// tests and by the figure export command.
package testcases

import "seehuhn.de/go/geom/vec"

// TestCase defines one spline segment to evaluate.
type TestCase struct {
	Name       string // lowercase a-z and _ only
	Quad       [4]vec.Vec2
	Alpha      float64
	Resolution int
}

// All contains the shared test cases.  All cases have pairwise
// distinct consecutive control points.
var All = []TestCase{
	{
		// the zig-zag segment from the package documentation
		Name:       "zigzag",
		Quad:       quad(0, 0, 1, 2, 2, -1, 3, 1),
		Alpha:      0.5,
		Resolution: 5,
	},
	{
		Name:       "collinear_uniform",
		Quad:       quad(0, 0, 1, 0, 2, 0, 3, 0),
		Alpha:      0,
		Resolution: 16,
	},
	{
		Name:       "collinear_centripetal",
		Quad:       quad(0, 0, 1, 0, 2, 0, 3, 0),
		Alpha:      0.5,
		Resolution: 16,
	},
	{
		// uneven spacing where uniform knots tend to overshoot
		Name:       "uneven_spacing",
		Quad:       quad(0, 0, 0.1, 0.2, 2, 0.3, 2.1, 0),
		Alpha:      0.5,
		Resolution: 50,
	},
	{
		Name:       "sharp_turn",
		Quad:       quad(-1, 0, 0, 1, 0.2, -1, 1.5, 0.5),
		Alpha:      0.5,
		Resolution: 50,
	},
	{
		Name:       "chordal_wide",
		Quad:       quad(0, 1, 1, -1, 4, 2, 5, 0),
		Alpha:      1,
		Resolution: 50,
	},
	{
		// x = 0..3 with fixed "random" heights in [-1.5, 1.5],
		// matching the layout of the original demo figure
		Name:       "random_layout",
		Quad:       quad(0, 0.81, 1, -1.23, 2, 0.42, 3, -0.07),
		Alpha:      0.5,
		Resolution: 50,
	},
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// quad is a helper to create a control quad from eight coordinates.
func quad(x0, y0, x1, y1, x2, y2, x3, y3 float64) [4]vec.Vec2 {
	return [4]vec.Vec2{pt(x0, y0), pt(x1, y1), pt(x2, y2), pt(x3, y3)}
}
