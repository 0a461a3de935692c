package core

import (
	"math"
	"math/rand"
)

// Random sampling routines used by materials and the camera. Every caller
// passes its own *rand.Rand: each render worker owns a distinctly seeded
// generator, so no generator is ever shared across goroutines.

// SampleUnitSquare returns an offset with x,y uniform in [-0.5,0.5) and z=0,
// used to jitter camera rays within a pixel footprint
func SampleUnitSquare(random *rand.Rand) Vec3 {
	return NewVec3(random.Float64()-0.5, random.Float64()-0.5, 0)
}

// RandomUnitVector returns a direction uniformly distributed on the unit
// sphere, via rejection sampling of the [-1,1]³ cube
func RandomUnitVector(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(
			2*random.Float64()-1,
			2*random.Float64()-1,
			2*random.Float64()-1,
		)
		lenSq := p.LengthSquared()
		// Reject points outside the sphere, and points so close to the
		// origin that normalizing them would blow up
		if 1e-10 < lenSq && lenSq <= 1.0 {
			return p.Divide(math.Sqrt(lenSq))
		}
	}
}

// RandomInUnitDisk returns a point uniformly distributed in the unit disk
// on the z=0 plane, used for depth-of-field sampling
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		if p.LengthSquared() <= 1.0 {
			return p
		}
	}
}
