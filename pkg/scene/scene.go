package scene

import (
	"github.com/Ofir7909/go-raytracer/pkg/core"
	"github.com/Ofir7909/go-raytracer/pkg/geometry"
	"github.com/Ofir7909/go-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering: the primitives,
// the camera configuration and the background radiance
type Scene struct {
	Shapes       *geometry.ShapeList
	CameraConfig renderer.CameraConfig
	BackgroundFn func(core.Ray) core.Vec3

	camera *renderer.Camera
	world  core.Shape
}

// Preprocess prepares the scene for rendering by building the camera and
// the BVH over the shape list. Must be called before rendering; the scene
// is read-only afterwards.
func (s *Scene) Preprocess() {
	s.camera = renderer.NewCamera(s.CameraConfig)
	s.world = geometry.NewBVHNode(s.Shapes)
}

// GetCamera returns the camera built by Preprocess
func (s *Scene) GetCamera() *renderer.Camera {
	return s.camera
}

// GetWorld returns the acceleration structure built by Preprocess
func (s *Scene) GetWorld() core.Shape {
	return s.world
}

// Background returns the radiance for a ray that escaped the scene
func (s *Scene) Background(ray core.Ray) core.Vec3 {
	return s.BackgroundFn(ray)
}

// SolidBackground returns a background function with a constant color
func SolidBackground(color core.Vec3) func(core.Ray) core.Vec3 {
	return func(core.Ray) core.Vec3 {
		return color
	}
}

// GradientBackground returns a sky gradient blending from bottomColor at
// the horizon to topColor overhead, as a function of ray direction
func GradientBackground(topColor, bottomColor core.Vec3) func(core.Ray) core.Vec3 {
	return func(ray core.Ray) core.Vec3 {
		unitDirection := ray.Direction.Normalize()
		t := 0.5 * (unitDirection.Y + 1.0)
		return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
	}
}
