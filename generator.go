package metaball

import (
	"errors"

	"github.com/soypat/metaball/render"
)

// Generator rebuilds the metaball mesh once per call to Step. The embedding
// application decides when to call Step, typically once per animation frame.
type Generator struct {
	field *Field
	ex    *render.Extractor
	sink  render.MeshSink
	frame int
}

// NewGenerator returns a Generator that extracts field over a lattice configured by cfg
// and hands every frame to sink. sink may be nil.
func NewGenerator(field *Field, cfg render.Config, sink render.MeshSink) (*Generator, error) {
	if field == nil {
		return nil, errors.New("nil metaball field")
	}
	ex, err := render.NewExtractor(cfg)
	if err != nil {
		return nil, err
	}
	return &Generator{
		field: field,
		ex:    ex,
		sink:  sink,
	}, nil
}

// Step refreshes the source positions, extracts the surface and hands the result
// to the sink. The returned Mesh is valid until the next call to Step.
func (g *Generator) Step() render.Mesh {
	g.field.Update()
	mesh := g.ex.Extract(g.field)
	if g.sink != nil {
		g.ex.Handoff(g.sink)
	}
	g.frame++
	return mesh
}

// Mesh returns the mesh of the last Step.
func (g *Generator) Mesh() render.Mesh { return g.ex.Mesh() }

// Field returns the field sampled by the Generator.
func (g *Generator) Field() *Field { return g.field }

// Extractor returns the underlying Extractor, which may be reconfigured between steps.
func (g *Generator) Extractor() *render.Extractor { return g.ex }

// Frame returns the amount of steps taken.
func (g *Generator) Frame() int { return g.frame }
