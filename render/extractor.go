package render

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/metaball/internal/d3"
)

// Extractor triangulates the zero level set of a Field with marching cubes.
// Every call to Extract samples every lattice point once and then walks every
// cell of the lattice. Output buffers are reused between calls.
//
// An Extractor is not safe for concurrent use.
type Extractor struct {
	cfg    Config
	offset ms3.Vec
	// grid caches field samples of the current frame, indexed by lattice coordinate.
	grid []float32
	// row holds lattice positions for batch evaluation.
	row []ms3.Vec

	vertices []ms3.Vec
	normals  []ms3.Vec
	indices  []uint32
	stats    Stats
}

// Stats holds counters of the last call to Extract.
type Stats struct {
	// Samples is the amount of field evaluations in the sample pass.
	Samples int
	// ActiveCells is the amount of cells that produced at least one triangle.
	ActiveCells int
	// Triangles is the amount of triangles emitted.
	Triangles int
	// GuardedEdges counts edge interpolations whose parameter was
	// undefined or outside [0,1] and had to be fixed up.
	GuardedEdges int
	// FallbackNormals counts vertices whose field gradient could not be
	// normalized and were assigned the face normal of their triangle instead.
	FallbackNormals int
}

// NewExtractor returns an Extractor ready to process fields over the configured lattice.
func NewExtractor(cfg Config) (*Extractor, error) {
	var ex Extractor
	err := ex.SetConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &ex, nil
}

// SetConfig changes the lattice configuration. The sample cache is reused if it is large enough.
func (ex *Extractor) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	n := cfg.Resolution
	if cap(ex.grid) < n*n*n {
		ex.grid = make([]float32, n*n*n)
	}
	ex.grid = ex.grid[:n*n*n]
	ex.cfg = cfg
	ex.offset = d3.Elem(cfg.Side() / 2)
	return nil
}

// Config returns the current lattice configuration.
func (ex *Extractor) Config() Config { return ex.cfg }

// Stats returns the counters of the last call to Extract.
func (ex *Extractor) Stats() Stats { return ex.stats }

// Extract rebuilds the mesh from scratch by sampling f over the lattice.
// The returned Mesh references the Extractor's buffers and is valid until the
// next call to Extract or SetConfig.
func (ex *Extractor) Extract(f Field) Mesh {
	n := ex.cfg.Resolution
	ex.vertices = ex.vertices[:0]
	ex.normals = ex.normals[:0]
	ex.indices = ex.indices[:0]
	ex.stats = Stats{}

	ex.sample(f)
	ex.stats.Samples = n * n * n

	var (
		corners [8]ms3.Vec
		values  [8]float32
	)
	for l := 0; l < n-1; l++ {
		for w := 0; w < n-1; w++ {
			for h := 0; h < n-1; h++ {
				cubeIndex := 0
				for i, off := range mcCornerOffsets {
					values[i] = ex.grid[ex.index(l+off[0], w+off[1], h+off[2])]
					if values[i] > 0 {
						cubeIndex |= 1 << i
					}
				}
				edges := mcTriangleTable[cubeIndex]
				if len(edges) == 0 {
					continue
				}
				ex.stats.ActiveCells++
				for i, off := range mcCornerOffsets {
					corners[i] = ex.position(l+off[0], w+off[1], h+off[2])
				}
				for i := 0; i < len(edges); i += 3 {
					ex.appendTriangle(f, &corners, &values, edges[i:i+3])
				}
			}
		}
	}
	ex.stats.Triangles = len(ex.indices) / 3
	return ex.Mesh()
}

// sample fills the sample cache. Batch fields are evaluated one row of
// constant (l,w) at a time, which is contiguous in the cache.
func (ex *Extractor) sample(f Field) {
	n := ex.cfg.Resolution
	batch, isBatch := f.(BatchField)
	if isBatch && cap(ex.row) < n {
		ex.row = make([]ms3.Vec, n)
	}
	row := ex.row[:n]
	for l := 0; l < n; l++ {
		for w := 0; w < n; w++ {
			dst := ex.grid[ex.index(l, w, 0) : ex.index(l, w, 0)+n]
			if isBatch {
				for h := range row {
					row[h] = ex.position(l, w, h)
				}
				if batch.Evaluate(row, dst, nil) == nil {
					continue
				}
			}
			for h := range dst {
				dst[h] = f.F(ex.position(l, w, h))
			}
		}
	}
}

// Mesh returns the mesh produced by the last call to Extract.
func (ex *Extractor) Mesh() Mesh {
	return Mesh{
		Vertices: ex.vertices,
		Normals:  ex.normals,
		Indices:  ex.indices,
	}
}

// Handoff replaces the mesh held by dst with the last extracted mesh.
func (ex *Extractor) Handoff(dst MeshSink) {
	dst.SetMesh(ex.vertices, ex.normals, ex.indices)
}

// Sample returns the cached field value at lattice coordinate (l,w,h) from the last
// call to Extract. It panics if the coordinate lies outside the lattice.
func (ex *Extractor) Sample(l, w, h int) float32 {
	n := ex.cfg.Resolution
	if l < 0 || w < 0 || h < 0 || l >= n || w >= n || h >= n {
		panic("lattice coordinate out of range")
	}
	return ex.grid[ex.index(l, w, h)]
}

// Position returns the world space position of lattice coordinate (l,w,h).
func (ex *Extractor) Position(l, w, h int) ms3.Vec { return ex.position(l, w, h) }

func (ex *Extractor) index(l, w, h int) int {
	n := ex.cfg.Resolution
	return (l*n+w)*n + h
}

// position is the only place lattice coordinates are converted to world space
// so that cached samples and cell corners agree exactly.
func (ex *Extractor) position(l, w, h int) ms3.Vec {
	s := ex.cfg.Scale
	return ms3.Vec{
		X: float32(l)*s - ex.offset.X,
		Y: float32(w)*s - ex.offset.Y,
		Z: float32(h)*s - ex.offset.Z,
	}
}

// appendTriangle emits one triangle of a cell. Every triangle corner gets its own vertex.
func (ex *Extractor) appendTriangle(f Field, p *[8]ms3.Vec, v *[8]float32, edges []uint8) {
	var tri ms3.Triangle
	for i, e := range edges[:3] {
		c := mcEdgeCorners[e]
		tri[i] = ex.interpolate(p[c[0]], p[c[1]], v[c[0]], v[c[1]])
	}
	var (
		face     ms3.Vec
		haveFace bool
	)
	for i := range tri {
		n, ok := d3.Unit(ex.gradient(f, tri[i]))
		if !ok {
			if !haveFace {
				face, _ = d3.Unit(tri.Normal())
				haveFace = true
			}
			n = face
			ex.stats.FallbackNormals++
		}
		ex.indices = append(ex.indices, uint32(len(ex.vertices)))
		ex.vertices = append(ex.vertices, tri[i])
		ex.normals = append(ex.normals, n)
	}
}

// interpolate finds the zero crossing of the field along the straight edge p1-p2
// given the field values f1 and f2 at its endpoints.
func (ex *Extractor) interpolate(p1, p2 ms3.Vec, f1, f2 float32) ms3.Vec {
	t := -f1 / (f2 - f1)
	switch {
	case f1 == f2 || math32.IsNaN(t) || math32.IsInf(t, 0):
		t = 0.5
		ex.stats.GuardedEdges++
	case t < 0 || t > 1:
		t = d3.Clamp(t, 0, 1)
		ex.stats.GuardedEdges++
	}
	return d3.Lerp(p1, p2, t)
}

// gradient returns the field gradient at p, estimated with finite differences
// unless the field provides its own.
func (ex *Extractor) gradient(f Field, p ms3.Vec) ms3.Vec {
	if g, ok := f.(GradientField); ok && ex.cfg.Normals == Analytic {
		return g.Gradient(p)
	}
	h := ex.cfg.Scale / 5
	if ex.cfg.Normals == BackwardDifference {
		c := f.F(p)
		return ms3.Vec{
			X: c - f.F(ms3.Sub(p, ms3.Vec{X: h})),
			Y: c - f.F(ms3.Sub(p, ms3.Vec{Y: h})),
			Z: c - f.F(ms3.Sub(p, ms3.Vec{Z: h})),
		}
	}
	return ms3.Gradient(p, d3.Elem(h), f.F)
}
