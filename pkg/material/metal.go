package material

import (
	"math/rand"

	"github.com/Ofir7909/go-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo    core.Vec3 // Metal color
	Roughness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material with roughness clamped to [0,1]
func NewMetal(albedo core.Vec3, roughness float64) *Metal {
	if roughness > 1.0 {
		roughness = 1.0
	}
	if roughness < 0.0 {
		roughness = 0.0
	}
	return &Metal{Albedo: albedo, Roughness: roughness}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	reflected := reflect(rayIn.Direction, hit.Normal).Normalize()

	// Perturb the mirror direction to simulate surface roughness
	if m.Roughness > 0 {
		reflected = reflected.Add(core.RandomUnitVector(random).Multiply(m.Roughness))
	}

	// A perturbed direction that dips below the surface is absorbed,
	// which darkens fuzzy reflections near grazing angles
	scatters := reflected.Dot(hit.Normal) > 0

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo,
	}, scatters
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
