package material

import (
	"math/rand"

	"github.com/Ofir7909/go-raytracer/pkg/core"
)

// DiffuseLight represents a light-emitting material. It never scatters,
// so a path ends when it reaches one.
type DiffuseLight struct {
	Emission ColorSource
}

// NewDiffuseLight creates an emissive material with a constant color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// Scatter implements the Material interface; lights absorb incoming rays
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emit returns the emitted light at the hit point
func (d *DiffuseLight) Emit(hit core.HitRecord) core.Vec3 {
	return d.Emission.Evaluate(hit.U, hit.V, hit.Point)
}
