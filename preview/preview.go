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

// Package preview draws sampled spline curves into alpha coverage
// images.  It strokes polylines by building an offset outline and
// filling it with golang.org/x/image/vector; quality is sufficient
// for test references and demo figures, not for production stroking.
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Renderer strokes polylines and dots into *image.Alpha images.
// The caller creates one instance and reuses it; internal buffers
// grow as needed but never shrink.
type Renderer struct {
	// CTM maps curve coordinates to device pixels.
	// Must be a non-singular matrix.
	CTM matrix.Matrix

	// Width is the stroke line width in device pixels. Must be > 0.
	Width float64

	// Cap is the line cap style at polyline endpoints.
	Cap graphics.LineCapStyle

	// Internal buffers (reused across calls)
	ras     *vector.Rasterizer
	src     *image.Uniform
	devPts  []vec.Vec2      // transformed polyline points
	segs    []strokeSegment // per-segment tangent/normal geometry
	outline []vec.Vec2      // stroke outline vertices
}

// strokeSegment is one polyline segment in device coordinates.
type strokeSegment struct {
	a, b vec.Vec2 // endpoints
	t    vec.Vec2 // unit tangent (a→b direction)
	n    vec.Vec2 // unit normal (90° CCW from t)
}

// NewRenderer returns a Renderer with identity CTM, width 1 and
// butt caps.
func NewRenderer() *Renderer {
	return &Renderer{
		CTM:   matrix.Identity,
		Width: 1,
		Cap:   graphics.LineCapButt,
		src:   image.NewUniform(color.Alpha{A: 0xff}),
	}
}

// transform applies the CTM to a point.
func (r *Renderer) transform(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y + r.CTM[4],
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y + r.CTM[5],
	}
}

// Polyline strokes the open polyline through pts into dst, compositing
// over existing coverage.  Points are in curve coordinates and are
// transformed by the CTM.  Polylines with fewer than two distinct
// points produce a dot for round caps and nothing otherwise.
func (r *Renderer) Polyline(dst *image.Alpha, pts []vec.Vec2) {
	r.devPts = r.devPts[:0]
	for _, pt := range pts {
		r.devPts = append(r.devPts, r.transform(pt))
	}

	r.segs = r.segs[:0]
	for i := 1; i < len(r.devPts); i++ {
		r.addSegment(r.devPts[i-1], r.devPts[i])
	}

	if len(r.segs) == 0 {
		// No orientation; only a round cap produces visible output.
		if r.Cap == graphics.LineCapRound && len(r.devPts) > 0 {
			r.fillDot(dst, r.devPts[0], r.Width/2)
		}
		return
	}

	r.outline = r.outline[:0]
	d := r.Width / 2
	first := &r.segs[0]
	last := &r.segs[len(r.segs)-1]

	// Start cap (at first.a, outward direction = -t)
	r.addCap(first.a, first.t.Mul(-1), d)

	// Forward pass: +n side.  Corners get both offset points, which
	// amounts to a bevel join; adequate for densely sampled curves.
	for i := range r.segs {
		seg := &r.segs[i]
		r.outline = append(r.outline, seg.a.Add(seg.n.Mul(d)))
		r.outline = append(r.outline, seg.b.Add(seg.n.Mul(d)))
	}

	// End cap (at last.b, outward direction = t)
	r.addCap(last.b, last.t, d)

	// Backward pass: -n side
	for i := len(r.segs) - 1; i >= 0; i-- {
		seg := &r.segs[i]
		r.outline = append(r.outline, seg.b.Sub(seg.n.Mul(d)))
		r.outline = append(r.outline, seg.a.Sub(seg.n.Mul(d)))
	}

	r.fillOutline(dst)
}

// addSegment appends a segment with precomputed tangent and normal.
func (r *Renderer) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return // skip degenerate segment
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	r.segs = append(r.segs, strokeSegment{a: a, b: b, t: t, n: n})
}

// addCap adds a line cap to the outline at point p.
// t is the outward tangent direction, d half the stroke width.
func (r *Renderer) addCap(p, t vec.Vec2, d float64) {
	n := vec.Vec2{X: -t.Y, Y: t.X}

	switch r.Cap {
	case graphics.LineCapSquare:
		// extend by d along the tangent
		ext := p.Add(t.Mul(d))
		r.outline = append(r.outline, ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)))

	case graphics.LineCapRound:
		// semicircle curving outward through t
		r.addArc(p, d, n, -math.Pi)

	default:
		// butt cap: the two offset points connect directly
	}
}

// addArc appends arc vertices around center, starting at direction
// startDir from the center and sweeping by sweep radians (positive =
// CCW).  The segment count keeps the sagitta below flatness.
func (r *Renderer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	angleStep := 2 * math.Acos(1-flatness/radius)
	if angleStep <= 0 || math.IsNaN(angleStep) {
		angleStep = math.Pi / 4 // fallback for tiny radii
	}
	n := max(int(math.Ceil(math.Abs(sweep)/angleStep)), 1)

	dt := sweep / float64(n)
	for i := 0; i <= n; i++ {
		angle := float64(i) * dt
		cos, sin := math.Cos(angle), math.Sin(angle)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// Dot fills a disc of the given device-pixel radius at a point in
// curve coordinates.  The original figure marks control points this
// way.
func (r *Renderer) Dot(dst *image.Alpha, center vec.Vec2, radius float64) {
	r.fillDot(dst, r.transform(center), radius)
}

// fillDot fills a disc at a device-space center.
func (r *Renderer) fillDot(dst *image.Alpha, c vec.Vec2, radius float64) {
	ras := r.reset(dst)

	// circle from four cubic Bézier arcs
	kr := kappa * radius
	cx, cy := float32(c.X), float32(c.Y)
	rad := float32(radius)
	k := float32(kr)
	ras.MoveTo(cx, cy-rad)
	ras.CubeTo(cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	ras.CubeTo(cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
	ras.CubeTo(cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
	ras.CubeTo(cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
	ras.ClosePath()

	ras.Draw(dst, dst.Bounds(), r.src, image.Point{})
}

// fillOutline rasterizes r.outline as a closed polygon into dst.
func (r *Renderer) fillOutline(dst *image.Alpha) {
	if len(r.outline) < 3 {
		return
	}
	ras := r.reset(dst)

	ras.MoveTo(float32(r.outline[0].X), float32(r.outline[0].Y))
	for _, pt := range r.outline[1:] {
		ras.LineTo(float32(pt.X), float32(pt.Y))
	}
	ras.ClosePath()

	ras.Draw(dst, dst.Bounds(), r.src, image.Point{})
}

// reset prepares the shared rasterizer for the size of dst.
func (r *Renderer) reset(dst *image.Alpha) *vector.Rasterizer {
	b := dst.Bounds()
	if r.ras == nil {
		r.ras = vector.NewRasterizer(b.Dx(), b.Dy())
	} else {
		r.ras.Reset(b.Dx(), b.Dy())
	}
	r.ras.DrawOp = draw.Over
	if r.src == nil {
		r.src = image.NewUniform(color.Alpha{A: 0xff})
	}
	return r.ras
}

const (
	// flatness is the arc flattening tolerance in device pixels.
	flatness = 0.25

	// zeroLengthThreshold is the minimum length for a stroke segment.
	// Segments shorter than this are skipped.
	zeroLengthThreshold = 1e-10

	// kappa for cubic Bézier approximation of a quarter circle
	kappa = 0.5522847498307936
)
