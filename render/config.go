package render

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// maxResolution bounds the sample cache to 512 MiB. A full lattice emits at most
// (maxResolution-1)³ * 15 vertices, which fits in uint32 mesh indices.
const maxResolution = 512

// NormalMethod selects the finite difference scheme used to estimate vertex normals.
type NormalMethod uint8

const (
	// CentralDifference samples the field symmetrically about the vertex:
	//  n = (F(p+dx)-F(p-dx), F(p+dy)-F(p-dy), F(p+dz)-F(p-dz))
	CentralDifference NormalMethod = iota
	// BackwardDifference samples the vertex and one neighbour per axis:
	//  n = (F(p)-F(p-dx), F(p)-F(p-dy), F(p)-F(p-dz))
	BackwardDifference
	// Analytic uses the closed form gradient of fields that implement
	// GradientField and falls back to CentralDifference for other fields.
	Analytic
)

func (m NormalMethod) String() string {
	switch m {
	case CentralDifference:
		return "central"
	case BackwardDifference:
		return "backward"
	case Analytic:
		return "analytic"
	}
	return fmt.Sprintf("NormalMethod(%d)", uint8(m))
}

// Config is the lattice configuration of an Extractor. The lattice is a cube
// of Resolution³ samples spaced Scale apart, offset by half its side length
// so that it is centered about the origin.
type Config struct {
	// Resolution is the amount of samples along each axis.
	Resolution int
	// Scale is the world space distance between adjacent samples.
	Scale float32
	// Normals selects the normal estimation scheme. The finite difference
	// step is Scale/5.
	Normals NormalMethod
}

// DefaultConfig returns a 50³ lattice with 0.2 spacing and central difference normals.
func DefaultConfig() Config {
	return Config{
		Resolution: 50,
		Scale:      0.2,
		Normals:    CentralDifference,
	}
}

// Validate returns a non-nil error if the configuration can not be used by an Extractor.
func (c Config) Validate() error {
	switch {
	case c.Resolution < 2:
		return errors.New("lattice resolution must be 2 or larger")
	case c.Resolution > maxResolution:
		return fmt.Errorf("lattice resolution %d exceeds maximum of %d", c.Resolution, maxResolution)
	case math32.IsNaN(c.Scale) || math32.IsInf(c.Scale, 0) || c.Scale <= 0:
		return fmt.Errorf("invalid lattice scale %g", c.Scale)
	case c.Normals > Analytic:
		return fmt.Errorf("unknown normal method %s", c.Normals)
	}
	return nil
}

// Box returns the region spanned by the lattice samples.
func (c Config) Box() ms3.Box {
	lo := -c.Side() / 2
	hi := lo + float32(c.Resolution-1)*c.Scale
	return ms3.Box{
		Min: ms3.Vec{X: lo, Y: lo, Z: lo},
		Max: ms3.Vec{X: hi, Y: hi, Z: hi},
	}
}

// Side returns Resolution*Scale. Lattice positions are offset by -Side/2 on every axis.
func (c Config) Side() float32 {
	return float32(c.Resolution) * c.Scale
}
