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

// Package spline evaluates non-uniform Catmull-Rom spline segments.
//
// A Segment is defined by four control points p0..p3 and an exponent
// alpha which controls knot spacing.  The curve passes through the two
// interior points p1 and p2; the exterior points only shape the
// tangents.  Alpha selects the parameterization family: 0 gives
// uniform knots, 0.5 centripetal, 1 chordal.  Centripetal
// parameterization avoids self-intersections and cusps for typical
// point layouts and is usually the right choice.
package spline

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Parameterization selects a knot spacing family by name.
// It is a convenience for call sites; the underlying exponent is
// passed to [New] via the Exponent method.
type Parameterization int

const (
	// Uniform spaces knots evenly regardless of point distances.
	// Prone to loops and cusps when point spacing is uneven.
	Uniform Parameterization = iota

	// Centripetal spaces knots by the square root of chord length.
	Centripetal

	// Chordal spaces knots proportionally to chord length.
	// Follows arc length closely but can overshoot on sharp turns.
	Chordal
)

// Exponent returns the knot spacing exponent for the family.
func (p Parameterization) Exponent() float64 {
	switch p {
	case Centripetal:
		return 0.5
	case Chordal:
		return 1.0
	default:
		return 0.0
	}
}

func (p Parameterization) String() string {
	switch p {
	case Uniform:
		return "uniform"
	case Centripetal:
		return "centripetal"
	case Chordal:
		return "chordal"
	default:
		return "unknown"
	}
}

// Segment is a single Catmull-Rom spline segment.
//
// The zero value is degenerate (all control points coincide); use
// [New] or fill in all four points.  Segment is a value type and all
// methods are pure, so a Segment can be shared between goroutines
// without locking.
type Segment struct {
	// P0, P1, P2, P3 are the control points.  No two consecutive
	// points may coincide.
	P0, P1, P2, P3 vec.Vec2

	// Alpha is the knot spacing exponent, normally in [0, 1].
	// See [Parameterization] for named values.
	Alpha float64
}

// New constructs a Segment from a slice of exactly four control
// points.  It returns an [InvalidControlQuadError] for any other
// length.
func New(pts []vec.Vec2, alpha float64) (Segment, error) {
	if len(pts) != 4 {
		return Segment{}, InvalidControlQuadError(len(pts))
	}
	return Segment{
		P0:    pts[0],
		P1:    pts[1],
		P2:    pts[2],
		P3:    pts[3],
		Alpha: alpha,
	}, nil
}

// validate returns a DegenerateSegmentError for the first pair of
// coincident consecutive control points, or nil.
func (s Segment) validate() error {
	pts := [4]vec.Vec2{s.P0, s.P1, s.P2, s.P3}
	for i := range 3 {
		if pts[i] == pts[i+1] {
			return &DegenerateSegmentError{I: i, J: i + 1, At: pts[i]}
		}
	}
	return nil
}

// Knots returns the knot sequence t0 < t1 < t2 < t3 derived from the
// control points and Alpha.  The sequence starts at t0 = 0 and each
// interval is the chord length raised to the power Alpha.
func (s Segment) Knots() ([4]float64, error) {
	if err := s.validate(); err != nil {
		return [4]float64{}, err
	}
	return s.knots(), nil
}

// knots assumes a valid segment.
func (s Segment) knots() [4]float64 {
	var k [4]float64
	k[1] = nextKnot(k[0], s.P0, s.P1, s.Alpha)
	k[2] = nextKnot(k[1], s.P1, s.P2, s.Alpha)
	k[3] = nextKnot(k[2], s.P2, s.P3, s.Alpha)
	return k
}

// nextKnot advances the running knot value across the chord from pi
// to pj: tj = ti + |pj - pi|^alpha.
func nextKnot(ti float64, pi, pj vec.Vec2, alpha float64) float64 {
	return ti + math.Pow(pj.Sub(pi).Length(), alpha)
}

// Eval evaluates the segment at parameter t.  The parameter is
// normalized so that the curve runs from p1 at t=0 to p2 at t=1;
// internally t is remapped into the central knot interval [t1, t2].
// Values of t outside [0, 1] extrapolate.
//
// Eval returns a [DegenerateSegmentError] if two consecutive control
// points coincide.
func (s Segment) Eval(t float64) (vec.Vec2, error) {
	if err := s.validate(); err != nil {
		return vec.Vec2{}, err
	}
	return s.eval(s.knots(), t), nil
}

// eval assumes a valid segment and precomputed knots.
func (s Segment) eval(k [4]float64, t float64) vec.Vec2 {
	// Only the central interval [t1, t2] is guaranteed to lie
	// between p1 and p2.
	u := k[1] + t*(k[2]-k[1])
	return vec.Vec2{
		X: evalAxis(s.P0.X, s.P1.X, s.P2.X, s.P3.X, k, u),
		Y: evalAxis(s.P0.Y, s.P1.Y, s.P2.Y, s.P3.Y, k, u),
	}
}

// evalAxis runs the two-level blend pyramid on one coordinate axis.
// Both axes share the knots, which are derived from 2D distances.
func evalAxis(p0, p1, p2, p3 float64, k [4]float64, u float64) float64 {
	a1 := blend(p0, p1, k[0], k[1], u)
	a2 := blend(p1, p2, k[1], k[2], u)
	a3 := blend(p2, p3, k[2], k[3], u)
	b1 := blend(a1, a2, k[0], k[2], u)
	b2 := blend(a2, a3, k[1], k[3], u)
	return blend(b1, b2, k[1], k[2], u)
}

// blend is the affine combination of a and b over the knot interval
// [tlo, thi].  The caller guarantees thi > tlo.
func blend(a, b, tlo, thi, t float64) float64 {
	return (thi-t)/(thi-tlo)*a + (t-tlo)/(thi-tlo)*b
}
