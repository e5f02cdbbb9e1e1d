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

package spline

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// DegenerateSegmentError reports two coincident consecutive control
// points.  A zero-length chord makes the corresponding knot interval
// empty, so the curve is undefined.
type DegenerateSegmentError struct {
	I, J int      // indices of the coincident pair (0..3)
	At   vec.Vec2 // the shared position
}

func (e *DegenerateSegmentError) Error() string {
	return fmt.Sprintf("spline: control points %d and %d coincide at (%g, %g)",
		e.I, e.J, e.At.X, e.At.Y)
}

// InvalidResolutionError reports a non-positive sample count.
type InvalidResolutionError int

func (e InvalidResolutionError) Error() string {
	return fmt.Sprintf("spline: resolution must be positive, got %d", int(e))
}

// InvalidControlQuadError reports a control point sequence whose
// length is not exactly four.
type InvalidControlQuadError int

func (e InvalidControlQuadError) Error() string {
	return fmt.Sprintf("spline: need exactly 4 control points, got %d", int(e))
}
