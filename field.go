package metaball

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/metaball/internal/d3"
)

// minDistance2 is the smallest squared distance between a source and a
// sampled point. It keeps F finite when a point lands exactly on a source.
const minDistance2 = 1e-12

// Field is a scalar field formed by the superposition of metaball sources.
//
//	F(p) = Radius² * Σ 1/|source - p|² - 1
//
// The zero level set of F is the metaball surface. F is positive near the
// sources and tends to -1 far away from them.
//
// Source positions are read once per frame by Update. Between calls to Update
// the field is a pure function of position.
type Field struct {
	// Sources are queried for their position on every call to Update.
	Sources []PositionProvider
	// Radius scales the influence of every source uniformly. A single source
	// produces a sphere of this radius.
	Radius float32

	positions []ms3.Vec
}

// NewField returns a field with the given shared radius and sources. Call
// Update before evaluating the field.
func NewField(radius float32, sources ...PositionProvider) *Field {
	return &Field{
		Sources: sources,
		Radius:  radius,
	}
}

// SetRadius sets the shared source radius.
func (f *Field) SetRadius(radius float32) error {
	if math32.IsNaN(radius) || math32.IsInf(radius, 0) || radius <= 0 {
		return fmt.Errorf("invalid metaball radius %g", radius)
	}
	f.Radius = radius
	return nil
}

// Update takes a snapshot of the current position of every source.
func (f *Field) Update() {
	f.positions = f.positions[:0]
	for _, src := range f.Sources {
		f.positions = append(f.positions, src.Position())
	}
}

// Positions returns the source positions read during the last Update.
// The returned slice must not be modified.
func (f *Field) Positions() []ms3.Vec { return f.positions }

// F evaluates the field at p.
func (f *Field) F(p ms3.Vec) float32 {
	var sum float32
	for _, c := range f.positions {
		dx, dy, dz := c.X-p.X, c.Y-p.Y, c.Z-p.Z
		d2 := dx*dx + dy*dy + dz*dz
		if d2 < minDistance2 {
			d2 = minDistance2
		}
		sum += 1 / d2
	}
	return f.Radius*f.Radius*sum - 1
}

// Evaluate evaluates the field over pos positions and stores the
// results in dist. dist and pos must be of same length. userData is unused.
func (f *Field) Evaluate(pos []ms3.Vec, dist []float32, userData any) error {
	if len(pos) != len(dist) {
		return errors.New("position and distance buffer length mismatch")
	}
	for i, p := range pos {
		dist[i] = f.F(p)
	}
	return nil
}

// Gradient returns the analytic gradient of F at p. It points towards
// increasing field values, which is towards the sources.
func (f *Field) Gradient(p ms3.Vec) ms3.Vec {
	var g ms3.Vec
	for _, c := range f.positions {
		d := ms3.Sub(c, p)
		d2 := ms3.Norm2(d)
		if d2 < minDistance2 {
			continue // Gradient undefined at the source itself.
		}
		g = ms3.Add(g, ms3.Scale(2/(d2*d2), d))
	}
	return ms3.Scale(f.Radius*f.Radius, g)
}

// Bounds returns a box that contains every point where F is positive.
// A point can only be inside the surface if it is closer than Radius*sqrt(n)
// to at least one of the n sources. Bounds returns the zero box when the
// field has no sources.
func (f *Field) Bounds() ms3.Box {
	if len(f.positions) == 0 {
		return ms3.Box{}
	}
	reach := d3.Elem(math32.Abs(f.Radius) * math32.Sqrt(float32(len(f.positions))))
	bb := ms3.Box{
		Min: ms3.Sub(f.positions[0], reach),
		Max: ms3.Add(f.positions[0], reach),
	}
	for _, c := range f.positions[1:] {
		bb.Min = ms3.MinElem(bb.Min, ms3.Sub(c, reach))
		bb.Max = ms3.MaxElem(bb.Max, ms3.Add(c, reach))
	}
	return bb
}
