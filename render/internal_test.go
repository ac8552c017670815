package render

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/metaball/internal/d3"
)

func TestMarchingCubes(t *testing.T) {
	max := 0
	for _, tri := range mcTriangleTable {
		if len(tri) > max {
			max = len(tri)
		}
	}
	got := max / 3
	if got != marchingCubesMaxTriangles {
		t.Errorf("mismatch marching cubes max triangles. got %d. want %d", got, marchingCubesMaxTriangles)
	}
	if len(mcTriangleTable[0]) != 0 || len(mcTriangleTable[255]) != 0 {
		t.Error("uniform cells must not produce triangles")
	}
}

func TestMarchingCubesTableEdges(t *testing.T) {
	for cubeIndex, edges := range mcTriangleTable {
		if len(edges)%3 != 0 {
			t.Fatalf("case %#x: edge list length %d not multiple of 3", cubeIndex, len(edges))
		}
		positive := func(corner uint8) bool { return cubeIndex&(1<<corner) != 0 }
		used := make(map[uint8]int)
		for _, e := range edges {
			if e >= 12 {
				t.Fatalf("case %#x: invalid edge %d", cubeIndex, e)
			}
			c := mcEdgeCorners[e]
			if positive(c[0]) == positive(c[1]) {
				t.Errorf("case %#x: triangle vertex on edge %d with no sign change", cubeIndex, e)
			}
			used[e]++
		}
		// Every edge with a sign change must be crossed by the surface.
		for e, c := range mcEdgeCorners {
			if positive(c[0]) != positive(c[1]) && used[uint8(e)] == 0 {
				t.Errorf("case %#x: sign changing edge %d not used", cubeIndex, e)
			}
		}
		// Consistent winding never repeats a directed edge within a cell.
		directed := make(map[[2]uint8]int)
		for i := 0; i < len(edges); i += 3 {
			for k := 0; k < 3; k++ {
				directed[[2]uint8{edges[i+k], edges[i+(k+1)%3]}]++
			}
		}
		for de, count := range directed {
			if count != 1 {
				t.Errorf("case %#x: directed edge %v repeated %d times", cubeIndex, de, count)
			}
		}
	}
}

func TestMarchingCubesTableConsistency(t *testing.T) {
	for i, c := range mcEdgeCorners {
		a, b := mcCornerOffsets[c[0]], mcCornerOffsets[c[1]]
		diff := 0
		for k := 0; k < 3; k++ {
			if b[k] < a[k] {
				t.Errorf("edge %d not ordered from lower to upper corner", i)
			}
			diff += b[k] - a[k]
		}
		if diff != 1 {
			t.Errorf("edge %d corners %v and %v are not adjacent", i, a, b)
		}
	}
}

// cornerField is a trilinear field over the single cell [-1,0]³ whose corner
// signs follow the bits of a marching cubes case index.
type cornerField struct {
	values [8]float32
}

func newCornerField(cubeIndex int) cornerField {
	var cf cornerField
	for i := range cf.values {
		if cubeIndex&(1<<i) != 0 {
			cf.values[i] = 0.5 + 0.05*float32(i)
		} else {
			cf.values[i] = -0.3 - 0.07*float32(i)
		}
	}
	return cf
}

func (cf cornerField) F(p ms3.Vec) float32 {
	u := ms3.Add(p, d3.Elem(1))
	var sum float32
	for i, off := range mcCornerOffsets {
		w := float32(1)
		for k, uk := range [3]float32{u.X, u.Y, u.Z} {
			if off[k] == 1 {
				w *= uk
			} else {
				w *= 1 - uk
			}
		}
		sum += w * cf.values[i]
	}
	return sum
}

func TestExtractAllCases(t *testing.T) {
	ex, err := NewExtractor(Config{Resolution: 2, Scale: 1})
	if err != nil {
		t.Fatal(err)
	}
	for cubeIndex := 0; cubeIndex < 256; cubeIndex++ {
		mesh := ex.Extract(newCornerField(cubeIndex))
		want := len(mcTriangleTable[cubeIndex]) / 3
		if mesh.TriangleCount() != want {
			t.Errorf("case %#x: got %d triangles, want %d", cubeIndex, mesh.TriangleCount(), want)
		}
		if len(mesh.Vertices) != 3*want || len(mesh.Normals) != 3*want {
			t.Errorf("case %#x: got %d vertices and %d normals, want %d", cubeIndex, len(mesh.Vertices), len(mesh.Normals), 3*want)
		}
		for i, idx := range mesh.Indices {
			if idx != uint32(i) {
				t.Fatalf("case %#x: index %d is %d", cubeIndex, i, idx)
			}
		}
		// Each vertex lies on the edge named by the table, between its corners.
		for i, v := range mesh.Vertices {
			e := mcTriangleTable[cubeIndex][i]
			a, b := mcEdgeCorners[e][0], mcEdgeCorners[e][1]
			pa, pb := ex.Position(mcCornerOffsets[a][0], mcCornerOffsets[a][1], mcCornerOffsets[a][2]),
				ex.Position(mcCornerOffsets[b][0], mcCornerOffsets[b][1], mcCornerOffsets[b][2])
			edge := ms3.Sub(pb, pa)
			tparam := ms3.Dot(ms3.Sub(v, pa), edge) / ms3.Dot(edge, edge)
			if tparam < 0 || tparam > 1 {
				t.Errorf("case %#x: vertex %d interpolation parameter %g outside [0,1]", cubeIndex, i, tparam)
			}
			if !d3.EqualWithin(d3.Lerp(pa, pb, tparam), v, 1e-6) {
				t.Errorf("case %#x: vertex %d %v not on edge %d", cubeIndex, i, v, e)
			}
		}
		stats := ex.Stats()
		if stats.GuardedEdges != 0 {
			t.Errorf("case %#x: %d guarded edges", cubeIndex, stats.GuardedEdges)
		}
		if want > 0 && stats.ActiveCells != 1 {
			t.Errorf("case %#x: got %d active cells", cubeIndex, stats.ActiveCells)
		}
	}
}

// gridField looks up values of a lattice by rounding positions to the nearest lattice point.
type gridField struct {
	ex   *Extractor
	vals []float32
}

func (g gridField) F(p ms3.Vec) float32 {
	cfg := g.ex.Config()
	n := cfg.Resolution
	half := cfg.Side() / 2
	idx := func(x float32) int {
		i := int(math32.Floor((x+half)/cfg.Scale + 0.5))
		if i < 0 {
			return 0
		} else if i >= n {
			return n - 1
		}
		return i
	}
	return g.vals[g.ex.index(idx(p.X), idx(p.Y), idx(p.Z))]
}

func TestExtractWatertight(t *testing.T) {
	const n = 12
	rng := rand.New(rand.NewSource(1))
	ex, err := NewExtractor(Config{Resolution: n, Scale: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	for trial := 0; trial < 5; trial++ {
		vals := make([]float32, n*n*n)
		for l := 0; l < n; l++ {
			for w := 0; w < n; w++ {
				for h := 0; h < n; h++ {
					v := float32(-1)
					if l > 0 && w > 0 && h > 0 && l < n-1 && w < n-1 && h < n-1 {
						v = rng.Float32()*2 - 1
					}
					vals[ex.index(l, w, h)] = v
				}
			}
		}
		mesh := ex.Extract(gridField{ex: ex, vals: vals})
		if mesh.TriangleCount() == 0 {
			t.Fatal("random field produced no triangles")
		}
		// A closed, consistently wound surface uses every directed edge
		// exactly once and its reverse exactly once.
		directed := make(map[[2]ms3.Vec]int)
		for i := 0; i < mesh.TriangleCount(); i++ {
			tri := mesh.Triangle(i)
			for k := 0; k < 3; k++ {
				directed[[2]ms3.Vec{tri[k], tri[(k+1)%3]}]++
			}
		}
		for de, count := range directed {
			reverse := directed[[2]ms3.Vec{de[1], de[0]}]
			if count != 1 || reverse != 1 {
				t.Fatalf("trial %d: edge %v used %d times, reverse %d times", trial, de, count, reverse)
			}
		}
	}
}

// countingField counts evaluations of a sphere field of radius 1.
type countingField struct {
	calls int
}

func (c *countingField) F(p ms3.Vec) float32 {
	c.calls++
	return 1/(ms3.Norm2(ms3.Sub(p, ms3.Vec{X: 0.01, Y: 0.02, Z: 0.03}))+1e-12) - 1
}

func TestExtractEvaluationCount(t *testing.T) {
	for _, test := range []struct {
		normals        NormalMethod
		callsPerVertex int
	}{
		{CentralDifference, 6},
		{BackwardDifference, 4},
		{Analytic, 6}, // countingField has no closed form gradient.
	} {
		cfg := Config{Resolution: 16, Scale: 0.2, Normals: test.normals}
		ex, err := NewExtractor(cfg)
		if err != nil {
			t.Fatal(err)
		}
		var f countingField
		mesh := ex.Extract(&f)
		samples := cfg.Resolution * cfg.Resolution * cfg.Resolution
		want := samples + test.callsPerVertex*len(mesh.Vertices)
		if f.calls != want {
			t.Errorf("%s: got %d evaluations, want %d", test.normals, f.calls, want)
		}
		if ex.Stats().Samples != samples {
			t.Errorf("%s: got %d samples, want %d", test.normals, ex.Stats().Samples, samples)
		}
		if ex.Sample(0, 0, 0) != f.F(ex.Position(0, 0, 0)) {
			t.Errorf("%s: sample cache does not match field", test.normals)
		}
	}
}

func TestExtractDeterministic(t *testing.T) {
	ex, err := NewExtractor(Config{Resolution: 20, Scale: 0.15})
	if err != nil {
		t.Fatal(err)
	}
	var f countingField
	first := ex.Extract(&f).Clone()
	second := ex.Extract(&f)
	if len(first.Vertices) != len(second.Vertices) || len(first.Indices) != len(second.Indices) {
		t.Fatalf("buffer lengths differ between runs")
	}
	for i := range first.Vertices {
		if first.Vertices[i] != second.Vertices[i] || first.Normals[i] != second.Normals[i] {
			t.Fatalf("vertex %d differs between runs", i)
		}
	}
	for i := range first.Indices {
		if first.Indices[i] != second.Indices[i] {
			t.Fatalf("index %d differs between runs", i)
		}
	}
}

type constantField float32

func (c constantField) F(ms3.Vec) float32 { return float32(c) }

func TestExtractUniformField(t *testing.T) {
	ex, err := NewExtractor(Config{Resolution: 8, Scale: 1})
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []constantField{-1, 0, 1, 1e30} {
		mesh := ex.Extract(c)
		if mesh.TriangleCount() != 0 || ex.Stats().ActiveCells != 0 {
			t.Errorf("constant field %g produced %d triangles", float32(c), mesh.TriangleCount())
		}
	}
}

func TestInterpolateGuards(t *testing.T) {
	var ex Extractor
	p1, p2 := ms3.Vec{}, ms3.Vec{X: 1}
	for _, test := range []struct {
		f1, f2 float32
		want   float32
		guard  bool
	}{
		{f1: -1, f2: 1, want: 0.5},
		{f1: -1, f2: 3, want: 0.25},
		{f1: 0, f2: 1, want: 0},
		{f1: 2, f2: 2, want: 0.5, guard: true},
		{f1: -1, f2: -2, want: 0, guard: true},
		{f1: 1, f2: 0.5, want: 1, guard: true},
		{f1: math32.NaN(), f2: 1, want: 0.5, guard: true},
	} {
		before := ex.stats.GuardedEdges
		got := ex.interpolate(p1, p2, test.f1, test.f2)
		if got.X != test.want || got.Y != 0 || got.Z != 0 {
			t.Errorf("interpolate(%g,%g): got %v, want X=%g", test.f1, test.f2, got, test.want)
		}
		if guarded := ex.stats.GuardedEdges > before; guarded != test.guard {
			t.Errorf("interpolate(%g,%g): guard triggered=%v, want %v", test.f1, test.f2, guarded, test.guard)
		}
	}
}

// flatField is positive on lattice point (0,0,0) only and zero everywhere else,
// so finite differences at interpolated vertices vanish.
type flatField struct{ ex *Extractor }

func (f flatField) F(p ms3.Vec) float32 {
	if p == f.ex.Position(0, 0, 0) {
		return 1
	}
	if p == f.ex.Position(1, 0, 0) || p == f.ex.Position(0, 1, 0) || p == f.ex.Position(0, 0, 1) ||
		p == f.ex.Position(1, 1, 0) || p == f.ex.Position(0, 1, 1) || p == f.ex.Position(1, 0, 1) || p == f.ex.Position(1, 1, 1) {
		return -1
	}
	return 0
}

func TestFallbackNormals(t *testing.T) {
	ex, err := NewExtractor(Config{Resolution: 2, Scale: 1})
	if err != nil {
		t.Fatal(err)
	}
	mesh := ex.Extract(flatField{ex: ex})
	if mesh.TriangleCount() != 1 {
		t.Fatalf("got %d triangles, want 1", mesh.TriangleCount())
	}
	if ex.Stats().FallbackNormals != 3 {
		t.Errorf("got %d fallback normals, want 3", ex.Stats().FallbackNormals)
	}
	face, ok := d3.Unit(mesh.Triangle(0).Normal())
	if !ok {
		t.Fatal("degenerate triangle")
	}
	// The positive corner is at the lattice origin, the face normal must point towards it.
	if ms3.Dot(face, ms3.Vec{X: -1, Y: -1, Z: -1}) <= 0 {
		t.Errorf("face normal %v does not point towards positive corner", face)
	}
	for i, n := range mesh.Normals {
		if n != face {
			t.Errorf("normal %d: got %v, want face normal %v", i, n, face)
		}
	}
}

func TestSetConfig(t *testing.T) {
	for _, cfg := range []Config{
		{Resolution: 1, Scale: 1},
		{Resolution: 10, Scale: 0},
		{Resolution: 10, Scale: -1},
		{Resolution: 10, Scale: math32.NaN()},
		{Resolution: 10, Scale: math32.Inf(1)},
		{Resolution: maxResolution + 1, Scale: 1},
		{Resolution: 10, Scale: 1, Normals: Analytic + 1},
	} {
		if _, err := NewExtractor(cfg); err == nil {
			t.Errorf("expected error for config %+v", cfg)
		}
	}
	ex, err := NewExtractor(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	grid := &ex.grid[0]
	if err := ex.SetConfig(Config{Resolution: 10, Scale: 0.5}); err != nil {
		t.Fatal(err)
	}
	if &ex.grid[0] != grid {
		t.Error("sample cache reallocated when shrinking lattice")
	}
	if len(ex.grid) != 1000 {
		t.Errorf("got cache length %d, want 1000", len(ex.grid))
	}
	if err := ex.SetConfig(Config{Resolution: 0, Scale: 0.5}); err == nil {
		t.Error("expected error")
	}
	if ex.Config().Resolution != 10 {
		t.Error("invalid SetConfig modified configuration")
	}
}

func TestLatticeCentered(t *testing.T) {
	cfg := Config{Resolution: 50, Scale: 0.2}
	ex, err := NewExtractor(cfg)
	if err != nil {
		t.Fatal(err)
	}
	lo := ex.Position(0, 0, 0)
	if !d3.EqualWithin(lo, d3.Elem(-5), 1e-6) {
		t.Errorf("lattice origin at %v, want -5", lo)
	}
	hi := ex.Position(49, 49, 49)
	if !d3.EqualWithin(hi, d3.Elem(4.8), 1e-5) {
		t.Errorf("lattice end at %v, want 4.8", hi)
	}
	box := cfg.Box()
	if box.Min != lo || !d3.EqualWithin(box.Max, hi, 1e-6) {
		t.Errorf("lattice box %+v does not span samples %v to %v", box, lo, hi)
	}
}

func TestMaxResolutionIndices(t *testing.T) {
	cells := uint64(maxResolution - 1)
	cells = cells * cells * cells
	if maxVertices := cells * 3 * marchingCubesMaxTriangles; maxVertices > math.MaxUint32 {
		t.Errorf("lattice of resolution %d may emit %d vertices, more than uint32 indices address", maxResolution, maxVertices)
	}
}

// batchSphere is a countingField that also evaluates rows of positions.
type batchSphere struct {
	countingField
	batches int
	fail    bool
}

func (b *batchSphere) Evaluate(pos []ms3.Vec, dist []float32, userData any) error {
	b.batches++
	if b.fail {
		return errors.New("batch evaluation unavailable")
	}
	for i, p := range pos {
		dist[i] = b.countingField.F(p)
	}
	return nil
}

func TestExtractBatchField(t *testing.T) {
	cfg := Config{Resolution: 14, Scale: 0.2}
	ex, err := NewExtractor(cfg)
	if err != nil {
		t.Fatal(err)
	}
	var single countingField
	want := ex.Extract(&single).Clone()
	for _, fail := range []bool{false, true} {
		b := batchSphere{fail: fail}
		got := ex.Extract(&b)
		if b.batches != cfg.Resolution*cfg.Resolution {
			t.Errorf("fail=%v: got %d batch calls, want one per row (%d)", fail, b.batches, cfg.Resolution*cfg.Resolution)
		}
		if b.calls != single.calls {
			t.Errorf("fail=%v: got %d evaluations, want %d", fail, b.calls, single.calls)
		}
		if len(got.Vertices) != len(want.Vertices) {
			t.Fatalf("fail=%v: got %d vertices, want %d", fail, len(got.Vertices), len(want.Vertices))
		}
		for i := range want.Vertices {
			if got.Vertices[i] != want.Vertices[i] || got.Normals[i] != want.Normals[i] {
				t.Fatalf("fail=%v: vertex %d differs from per point sampling", fail, i)
			}
		}
	}
}

// analyticSphere is a countingField with its closed form gradient.
type analyticSphere struct {
	countingField
}

func (a *analyticSphere) Gradient(p ms3.Vec) ms3.Vec {
	d := ms3.Sub(p, ms3.Vec{X: 0.01, Y: 0.02, Z: 0.03})
	d2 := ms3.Norm2(d)
	return ms3.Scale(-2/(d2*d2), d)
}

func TestAnalyticNormals(t *testing.T) {
	cfg := Config{Resolution: 16, Scale: 0.2, Normals: Analytic}
	ex, err := NewExtractor(cfg)
	if err != nil {
		t.Fatal(err)
	}
	var f analyticSphere
	mesh := ex.Extract(&f).Clone()
	if samples := cfg.Resolution * cfg.Resolution * cfg.Resolution; f.calls != samples {
		t.Errorf("analytic normals evaluated the field %d times, want only the %d samples", f.calls, samples)
	}
	cfg.Normals = CentralDifference
	if err := ex.SetConfig(cfg); err != nil {
		t.Fatal(err)
	}
	central := ex.Extract(&f)
	for i, n := range mesh.Normals {
		if mesh.Vertices[i] != central.Vertices[i] {
			t.Fatalf("vertex %d moved with normal method", i)
		}
		if math32.Abs(ms3.Norm(n)-1) > 1e-5 {
			t.Fatalf("normal %d has length %g", i, ms3.Norm(n))
		}
		if ms3.Dot(n, central.Normals[i]) < 0.999 {
			t.Fatalf("normal %d: analytic %v disagrees with central difference %v", i, n, central.Normals[i])
		}
	}
}
