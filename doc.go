// Package metaball implements a scalar field defined by a set of moving point
// sources and a per-frame driver that turns the field's zero level set into a
// triangle mesh using the render package.
//
// Typical usage creates a Field, wraps it in a Generator and calls Step once
// per animation frame:
//
//	field := metaball.NewField(1, sources...)
//	gen, err := metaball.NewGenerator(field, render.DefaultConfig(), sink)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for running {
//		gen.Step()
//	}
package metaball
