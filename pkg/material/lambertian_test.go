package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Ofir7909/go-raytracer/pkg/core"
)

func testHit(normal core.Vec3, frontFace bool) core.HitRecord {
	return core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    normal,
		T:         1.0,
		FrontFace: frontFace,
	}
}

func TestLambertian_AlwaysScatters(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	hit := testHit(core.NewVec3(0, 1, 0), true)
	rayIn := core.NewRay(core.NewVec3(0, 1, -1), core.NewVec3(0, -1, 1))

	for i := 0; i < 1000; i++ {
		if _, didScatter := lambertian.Scatter(rayIn, hit, random); !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
	}
}

func TestLambertian_Attenuation(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	albedo := core.NewVec3(0.8, 0.3, 0.1)
	lambertian := NewLambertian(albedo)
	hit := testHit(core.NewVec3(0, 1, 0), true)
	rayIn := core.NewRay(core.NewVec3(0, 1, -1), core.NewVec3(0, -1, 1))

	scatter, _ := lambertian.Scatter(rayIn, hit, random)
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestLambertian_ScatterDistribution(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	normal := core.NewVec3(0, 1, 0)
	hit := testHit(normal, true)
	rayIn := core.NewRay(core.NewVec3(0, 1, -1), core.NewVec3(0, -1, 1))

	const samples = 20000
	sum := core.NewVec3(0, 0, 0)
	for i := 0; i < samples; i++ {
		scatter, _ := lambertian.Scatter(rayIn, hit, random)
		direction := scatter.Scattered.Direction.Normalize()

		// Never into the surface interior
		if direction.Dot(normal) < -1e-9 {
			t.Fatalf("Scatter direction %v points into the surface", direction)
		}
		sum = sum.Add(direction)
	}

	// The mean direction should be colinear with the normal
	mean := sum.Divide(samples)
	if math.Abs(mean.X) > 0.02 || math.Abs(mean.Z) > 0.02 {
		t.Errorf("Mean scatter direction %v is not aligned with the normal", mean)
	}
	if mean.Y < 0.5 {
		t.Errorf("Mean scatter direction %v is not biased along the normal", mean)
	}

	// Scattered rays originate at the hit point
	scatter, _ := lambertian.Scatter(rayIn, hit, random)
	if scatter.Scattered.Origin != hit.Point {
		t.Errorf("Scattered ray origin %v, want %v", scatter.Scattered.Origin, hit.Point)
	}
}

func TestLambertian_TexturedAlbedo(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	checker := NewCheckerTexture(
		NewSolidColor(core.NewVec3(1, 1, 1)),
		NewSolidColor(core.NewVec3(0, 0, 0)),
	)
	lambertian := NewTexturedLambertian(checker)
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	evenHit := testHit(core.NewVec3(0, 1, 0), true)
	evenHit.Point = core.NewVec3(0.5, 0.5, 0.5) // cell (0,0,0), even
	scatter, _ := lambertian.Scatter(rayIn, evenHit, random)
	if scatter.Attenuation != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected even cell color, got %v", scatter.Attenuation)
	}

	oddHit := testHit(core.NewVec3(0, 1, 0), true)
	oddHit.Point = core.NewVec3(1.5, 0.5, 0.5) // cell (1,0,0), odd
	scatter, _ = lambertian.Scatter(rayIn, oddHit, random)
	if scatter.Attenuation != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected odd cell color, got %v", scatter.Attenuation)
	}
}
