package scene

import (
	"math"
	"testing"

	"github.com/Ofir7909/go-raytracer/pkg/core"
)

func TestScenes_BuildAndPreprocess(t *testing.T) {
	tests := []struct {
		name       string
		build      func(width, height int) *Scene
		shapeCount int
	}{
		{"default", NewDefaultScene, 5},
		{"final", NewFinalScene, 4 + 22*22},
		{"quads", NewQuadsScene, 5},
		{"lights", NewLightsScene, 3},
		{"cornell", NewCornellScene, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.build(100, 100)

			if got := len(s.Shapes.Shapes); got != tt.shapeCount {
				t.Errorf("Expected %d shapes, got %d", tt.shapeCount, got)
			}

			s.Preprocess()
			if s.GetCamera() == nil {
				t.Error("Preprocess should build the camera")
			}
			if s.GetWorld() == nil {
				t.Error("Preprocess should build the world")
			}

			// The world's box bounds the whole shape list
			world := s.GetWorld().BoundingBox()
			aggregate := s.Shapes.BoundingBox()
			for axis := 0; axis < 3; axis++ {
				if world.AxisInterval(axis).Start > aggregate.AxisInterval(axis).Start+1e-9 ||
					world.AxisInterval(axis).End < aggregate.AxisInterval(axis).End-1e-9 {
					t.Errorf("World box %+v does not cover shapes box %+v", world, aggregate)
				}
			}
		})
	}
}

func TestFinalScene_Deterministic(t *testing.T) {
	a := NewFinalScene(10, 10)
	b := NewFinalScene(10, 10)

	if len(a.Shapes.Shapes) != len(b.Shapes.Shapes) {
		t.Fatal("Seeded scene should have a fixed shape count")
	}

	boxA := a.Shapes.BoundingBox()
	boxB := b.Shapes.BoundingBox()
	if boxA != boxB {
		t.Errorf("Seeded scene layout differs between builds: %+v vs %+v", boxA, boxB)
	}
}

func TestGradientBackground(t *testing.T) {
	top := core.NewVec3(0.5, 0.7, 1.0)
	bottom := core.NewVec3(1, 1, 1)
	background := GradientBackground(top, bottom)

	up := background(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)))
	if up.Subtract(top).Length() > 1e-9 {
		t.Errorf("Straight up should return the top color, got %v", up)
	}

	down := background(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)))
	if down.Subtract(bottom).Length() > 1e-9 {
		t.Errorf("Straight down should return the bottom color, got %v", down)
	}

	horizon := background(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)))
	mid := top.Add(bottom).Multiply(0.5)
	if horizon.Subtract(mid).Length() > 1e-9 {
		t.Errorf("Horizon should blend both colors, got %v", horizon)
	}
}

func TestSolidBackground_IgnoresRay(t *testing.T) {
	color := core.NewVec3(0.1, 0.2, 0.3)
	background := SolidBackground(color)

	for _, dir := range []core.Vec3{{X: 1}, {Y: -1}, {X: 0.3, Y: 0.4, Z: math.Sqrt2}} {
		if got := background(core.NewRay(core.Vec3{}, dir)); got != color {
			t.Errorf("Expected %v for direction %v, got %v", color, dir, got)
		}
	}
}
