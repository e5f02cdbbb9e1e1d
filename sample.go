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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Sample evaluates the segment at resolution uniformly spaced
// parameter values covering the half-open range [0, 1).  The first
// point is p1; the endpoint p2 is never included, so consecutive
// segments of a chain can be sampled without duplicating shared
// points.
func (s Segment) Sample(resolution int) ([]vec.Vec2, error) {
	return s.AppendSample(nil, resolution)
}

// AppendSample appends the sample points to dst and returns the
// extended slice.  This allows callers to reuse buffers across
// evaluations.  On error dst is returned unchanged.
func (s Segment) AppendSample(dst []vec.Vec2, resolution int) ([]vec.Vec2, error) {
	if resolution <= 0 {
		return dst, InvalidResolutionError(resolution)
	}
	if err := s.validate(); err != nil {
		return dst, err
	}

	k := s.knots()
	for i := range resolution {
		t := float64(i) / float64(resolution)
		dst = append(dst, s.eval(k, t))
	}
	return dst, nil
}

// Path returns the sampled curve as a polyline path, for consumption
// by path-based rasterizers.  Like [Segment.Sample] the path stops
// one sample short of p2.
func (s Segment) Path(resolution int) (*path.Data, error) {
	pts, err := s.Sample(resolution)
	if err != nil {
		return nil, err
	}

	p := &path.Data{}
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	return p, nil
}

// Bounds returns the bounding rectangle of the sampled curve.  The
// endpoint p2 is included even though sampling stops short of it, so
// the rectangle covers everything a renderer of the curve will draw.
func (s Segment) Bounds(resolution int) (rect.Rect, error) {
	if resolution <= 0 {
		return rect.Rect{}, InvalidResolutionError(resolution)
	}
	if err := s.validate(); err != nil {
		return rect.Rect{}, err
	}

	k := s.knots()
	r := rect.Rect{LLx: s.P2.X, LLy: s.P2.Y, URx: s.P2.X, URy: s.P2.Y}
	for i := range resolution {
		t := float64(i) / float64(resolution)
		pt := s.eval(k, t)
		r.LLx = min(r.LLx, pt.X)
		r.URx = max(r.URx, pt.X)
		r.LLy = min(r.LLy, pt.Y)
		r.URy = max(r.URy, pt.Y)
	}
	return r, nil
}
