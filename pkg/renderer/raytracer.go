package renderer

import (
	"math"
	"math/rand"

	"github.com/Ofir7909/go-raytracer/pkg/core"
)

// Scene interface to avoid a circular import with the scene package
type Scene interface {
	GetCamera() *Camera
	GetWorld() core.Shape
	Background(ray core.Ray) core.Vec3
}

// Raytracer computes radiance estimates for single rays. Each render worker
// owns one, paired with its own random generator.
type Raytracer struct {
	scene  Scene
	random *rand.Rand
}

// NewRaytracer creates a raytracer for the scene using the given generator
func NewRaytracer(scene Scene, random *rand.Rand) *Raytracer {
	return &Raytracer{scene: scene, random: random}
}

// RayColor estimates the radiance arriving along a ray by recursively
// sampling one scattering event per bounce, up to the depth budget
func (rt *Raytracer) RayColor(ray core.Ray, depth int) core.Vec3 {
	// Path length exhausted, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	// The lower bound excludes self-intersection at the scattered ray's origin
	hit, isHit := rt.scene.GetWorld().Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !isHit {
		return rt.scene.Background(ray)
	}

	emitted := rt.emittedLight(hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, rt.random)
	if !didScatter {
		return emitted
	}

	// One-sample Monte Carlo estimate of the rendering equation restricted
	// to the sampled direction
	return emitted.Add(scatter.Attenuation.MultiplyVec(rt.RayColor(scatter.Scattered, depth-1)))
}

// emittedLight returns the emitted radiance if the hit material is a light
func (rt *Raytracer) emittedLight(hit *core.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(core.Emitter); isEmissive {
		return emitter.Emit(*hit)
	}
	return core.Vec3{}
}
