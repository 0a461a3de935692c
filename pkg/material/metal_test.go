package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Ofir7909/go-raytracer/pkg/core"
)

func TestMetal_PerfectMirror(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	metal := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0)
	hit := testHit(core.NewVec3(0, 1, 0), true)

	// Incoming at 45 degrees reflects to 45 degrees on the other side
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))
	scatter, didScatter := metal.Scatter(rayIn, hit, random)
	if !didScatter {
		t.Fatal("Expected mirror to scatter")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	if scatter.Scattered.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected reflection %v, got %v", expected, scatter.Scattered.Direction)
	}
}

func TestMetal_RoughnessClamped(t *testing.T) {
	if m := NewMetal(core.NewVec3(1, 1, 1), 2.5); m.Roughness != 1.0 {
		t.Errorf("Expected roughness clamped to 1, got %v", m.Roughness)
	}
	if m := NewMetal(core.NewVec3(1, 1, 1), -0.5); m.Roughness != 0.0 {
		t.Errorf("Expected roughness clamped to 0, got %v", m.Roughness)
	}
}

func TestMetal_FuzzyReflectionStaysAboveSurface(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	metal := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.3)
	normal := core.NewVec3(0, 1, 0)
	hit := testHit(normal, true)
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))

	for i := 0; i < 1000; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, random)
		if didScatter && scatter.Scattered.Direction.Dot(normal) <= 0 {
			t.Fatal("Accepted scatter must leave the surface")
		}
	}
}

func TestMetal_GrazingFuzzAbsorbs(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	metal := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 1.0)
	hit := testHit(core.NewVec3(0, 1, 0), true)

	// Nearly grazing incidence with maximum fuzz gets absorbed often
	rayIn := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))

	absorbed := 0
	const trials = 2000
	for i := 0; i < trials; i++ {
		if _, didScatter := metal.Scatter(rayIn, hit, random); !didScatter {
			absorbed++
		}
	}

	if absorbed == 0 {
		t.Error("Expected some grazing fuzzy reflections to be absorbed")
	}
	if absorbed == trials {
		t.Error("Expected some grazing fuzzy reflections to survive")
	}
	// Roughly half should dip below the surface at grazing incidence
	ratio := float64(absorbed) / trials
	if math.Abs(ratio-0.5) > 0.15 {
		t.Errorf("Absorption ratio %v far from the expected ~0.5", ratio)
	}
}
