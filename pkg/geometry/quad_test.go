package geometry

import (
	"math"
	"testing"

	"github.com/Ofir7909/go-raytracer/pkg/core"
)

// unitQuad spans [0,1]x[0,1] in the xy plane at z=0, normal +z
func unitQuad() *Quad {
	return NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		testMaterial{},
	)
}

func TestQuad_Hit(t *testing.T) {
	quad := unitQuad()

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expectedT float64
	}{
		{
			name:      "center hit",
			ray:       core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, -1)),
			expectHit: true,
			expectedT: 1.0,
		},
		{
			name:      "corner hit",
			ray:       core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1)),
			expectHit: true,
			expectedT: 2.0,
		},
		{
			name:      "outside quad bounds",
			ray:       core.NewRay(core.NewVec3(1.5, 0.5, 1), core.NewVec3(0, 0, -1)),
			expectHit: false,
		},
		{
			name:      "parallel to plane",
			ray:       core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(1, 0, 0)),
			expectHit: false,
		},
		{
			name:      "plane behind ray",
			ray:       core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, 1)),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := quad.Hit(tt.ray, fullRange())
			if isHit != tt.expectHit {
				t.Fatalf("Hit = %v, want %v", isHit, tt.expectHit)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%v, got %v", tt.expectedT, hit.T)
			}
		})
	}
}

func TestQuad_Hit_PlanarCoordinates(t *testing.T) {
	quad := NewQuad(
		core.NewVec3(-2, -2, 0),
		core.NewVec3(4, 0, 0),
		core.NewVec3(0, 4, 0),
		testMaterial{},
	)

	// Hit at (0,0,0), the middle of the quad
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hit, isHit := quad.Hit(ray, fullRange())
	if !isHit {
		t.Fatal("Expected hit at quad center")
	}
	if math.Abs(hit.U-0.5) > 1e-9 || math.Abs(hit.V-0.5) > 1e-9 {
		t.Errorf("Expected (u,v)=(0.5,0.5), got (%v,%v)", hit.U, hit.V)
	}
}

func TestQuad_Hit_FaceOrientation(t *testing.T) {
	quad := unitQuad()

	// Approaching along -z hits the front face, the side the normal points to
	front, _ := quad.Hit(core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, -1)), fullRange())
	if !front.FrontFace {
		t.Error("Expected front face hit from +z side")
	}
	if front.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,0,1), got %v", front.Normal)
	}

	// Approaching from behind flips the stored normal against the ray
	back, _ := quad.Hit(core.NewRay(core.NewVec3(0.5, 0.5, -1), core.NewVec3(0, 0, 1)), fullRange())
	if back.FrontFace {
		t.Error("Expected back face hit from -z side")
	}
	if back.Normal.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,0,-1), got %v", back.Normal)
	}
}

func TestQuad_BoundingBox_HasThickness(t *testing.T) {
	bbox := unitQuad().BoundingBox()

	// A flat quad still gets a box with positive extent on every axis
	for axis := 0; axis < 3; axis++ {
		if bbox.AxisInterval(axis).Size() <= 0 {
			t.Errorf("Axis %d has no thickness: %+v", axis, bbox.AxisInterval(axis))
		}
	}
}
