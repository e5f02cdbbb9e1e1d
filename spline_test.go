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
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/spline/testcases"
)

const epsilon = 1e-9

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon*max(1, math.Abs(a), math.Abs(b))
}

func segment(tc testcases.TestCase) Segment {
	return Segment{
		P0:    tc.Quad[0],
		P1:    tc.Quad[1],
		P2:    tc.Quad[2],
		P3:    tc.Quad[3],
		Alpha: tc.Alpha,
	}
}

// TestInterpolation verifies that the curve passes through the two
// interior control points: t=0 gives p1 and t=1 gives p2.
func TestInterpolation(t *testing.T) {
	for _, tc := range testcases.All {
		t.Run(tc.Name, func(t *testing.T) {
			s := segment(tc)

			start, err := s.Eval(0)
			if err != nil {
				t.Fatal(err)
			}
			if !nearlyEqual(start.X, s.P1.X) || !nearlyEqual(start.Y, s.P1.Y) {
				t.Errorf("Eval(0) = %v, want %v", start, s.P1)
			}

			end, err := s.Eval(1)
			if err != nil {
				t.Fatal(err)
			}
			if !nearlyEqual(end.X, s.P2.X) || !nearlyEqual(end.Y, s.P2.Y) {
				t.Errorf("Eval(1) = %v, want %v", end, s.P2)
			}
		})
	}
}

// TestDeterminism verifies that repeated evaluation with identical
// inputs gives bit-identical results.
func TestDeterminism(t *testing.T) {
	for _, tc := range testcases.All {
		t.Run(tc.Name, func(t *testing.T) {
			s := segment(tc)
			for _, tt := range []float64{0, 0.1, 0.5, 0.9, 1} {
				a, err := s.Eval(tt)
				if err != nil {
					t.Fatal(err)
				}
				b, err := s.Eval(tt)
				if err != nil {
					t.Fatal(err)
				}
				if a != b {
					t.Errorf("Eval(%g) not deterministic: %v != %v", tt, a, b)
				}
			}
		})
	}
}

// TestKnotsMonotonic verifies t0 < t1 < t2 < t3 for distinct
// consecutive control points and alphas across the whole range.
func TestKnotsMonotonic(t *testing.T) {
	alphas := []float64{0, 0.25, 0.5, 0.75, 1}
	for _, tc := range testcases.All {
		t.Run(tc.Name, func(t *testing.T) {
			s := segment(tc)
			for _, alpha := range alphas {
				s.Alpha = alpha
				k, err := s.Knots()
				if err != nil {
					t.Fatal(err)
				}
				if k[0] != 0 {
					t.Errorf("alpha=%g: t0 = %g, want 0", alpha, k[0])
				}
				for i := range 3 {
					if !(k[i] < k[i+1]) {
						t.Errorf("alpha=%g: knots not increasing: %v", alpha, k)
					}
				}
			}
		})
	}
}

// TestDegenerate verifies that coincident consecutive control points
// are detected eagerly and reported with the offending pair.
func TestDegenerate(t *testing.T) {
	base := [4]vec.Vec2{
		{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: -1}, {X: 3, Y: 1},
	}
	for pair := range 3 {
		pts := base
		pts[pair+1] = pts[pair]
		s := Segment{P0: pts[0], P1: pts[1], P2: pts[2], P3: pts[3], Alpha: 0.5}

		_, err := s.Eval(0.5)
		var degErr *DegenerateSegmentError
		if !errors.As(err, &degErr) {
			t.Fatalf("pair %d: got %v, want DegenerateSegmentError", pair, err)
		}
		if degErr.I != pair || degErr.J != pair+1 {
			t.Errorf("pair %d: error reports pair (%d, %d)", pair, degErr.I, degErr.J)
		}
		if degErr.At != pts[pair] {
			t.Errorf("pair %d: error reports position %v, want %v", pair, degErr.At, pts[pair])
		}

		if _, err := s.Sample(10); !errors.As(err, &degErr) {
			t.Errorf("pair %d: Sample did not detect degenerate segment", pair)
		}
	}
}

// TestNew verifies the control quad length check.
func TestNew(t *testing.T) {
	pts := []vec.Vec2{
		{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: -1}, {X: 3, Y: 1}, {X: 4, Y: 0},
	}
	for _, n := range []int{0, 1, 3, 5} {
		_, err := New(pts[:n], 0.5)
		var quadErr InvalidControlQuadError
		if !errors.As(err, &quadErr) {
			t.Errorf("New with %d points: got %v, want InvalidControlQuadError", n, err)
		} else if int(quadErr) != n {
			t.Errorf("New with %d points: error reports %d", n, int(quadErr))
		}
	}

	s, err := New(pts[:4], 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if s.P0 != pts[0] || s.P3 != pts[3] || s.Alpha != 0.5 {
		t.Errorf("New did not copy control points: %+v", s)
	}
}

// TestCollinear verifies that evenly spaced collinear control points
// give a straight line for both uniform and centripetal knots.
func TestCollinear(t *testing.T) {
	for _, p := range []Parameterization{Uniform, Centripetal} {
		t.Run(p.String(), func(t *testing.T) {
			s := Segment{
				P0:    vec.Vec2{X: 0, Y: 0},
				P1:    vec.Vec2{X: 1, Y: 0},
				P2:    vec.Vec2{X: 2, Y: 0},
				P3:    vec.Vec2{X: 3, Y: 0},
				Alpha: p.Exponent(),
			}

			pts, err := s.Sample(20)
			if err != nil {
				t.Fatal(err)
			}
			for i, pt := range pts {
				if math.Abs(pt.Y) > epsilon {
					t.Errorf("sample %d: y = %g, want 0", i, pt.Y)
				}
				if i > 0 && !(pt.X > pts[i-1].X) {
					t.Errorf("sample %d: x not increasing: %g after %g",
						i, pt.X, pts[i-1].X)
				}
			}
		})
	}
}

// TestZigzag checks the zig-zag segment: five samples start at p1 and
// trend toward p2, with no NaN or infinity anywhere.
func TestZigzag(t *testing.T) {
	s := Segment{
		P0:    vec.Vec2{X: 0, Y: 0},
		P1:    vec.Vec2{X: 1, Y: 2},
		P2:    vec.Vec2{X: 2, Y: -1},
		P3:    vec.Vec2{X: 3, Y: 1},
		Alpha: 0.5,
	}

	pts, err := s.Sample(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 5 {
		t.Fatalf("got %d samples, want 5", len(pts))
	}

	for i, pt := range pts {
		if math.IsNaN(pt.X) || math.IsInf(pt.X, 0) ||
			math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0) {
			t.Fatalf("sample %d is not finite: %v", i, pt)
		}
	}

	if !nearlyEqual(pts[0].X, 1) || !nearlyEqual(pts[0].Y, 2) {
		t.Errorf("first sample = %v, want (1, 2)", pts[0])
	}

	distFirst := pts[0].Sub(s.P2).Length()
	distLast := pts[4].Sub(s.P2).Length()
	if !(distLast < distFirst) {
		t.Errorf("curve does not approach p2: dist %g -> %g", distFirst, distLast)
	}
}

func TestParameterization(t *testing.T) {
	cases := []struct {
		p        Parameterization
		exponent float64
		name     string
	}{
		{Uniform, 0, "uniform"},
		{Centripetal, 0.5, "centripetal"},
		{Chordal, 1, "chordal"},
	}
	for _, c := range cases {
		if got := c.p.Exponent(); got != c.exponent {
			t.Errorf("%s: Exponent() = %g, want %g", c.name, got, c.exponent)
		}
		if got := c.p.String(); got != c.name {
			t.Errorf("String() = %q, want %q", got, c.name)
		}
	}
}

func BenchmarkEval(b *testing.B) {
	s := Segment{
		P0:    vec.Vec2{X: 0, Y: 0},
		P1:    vec.Vec2{X: 1, Y: 2},
		P2:    vec.Vec2{X: 2, Y: -1},
		P3:    vec.Vec2{X: 3, Y: 1},
		Alpha: 0.5,
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := s.Eval(0.5); err != nil {
			b.Fatal(err)
		}
	}
}
