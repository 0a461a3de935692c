package scene

import (
	"github.com/Ofir7909/go-raytracer/pkg/core"
	"github.com/Ofir7909/go-raytracer/pkg/geometry"
	"github.com/Ofir7909/go-raytracer/pkg/material"
	"github.com/Ofir7909/go-raytracer/pkg/renderer"
)

// NewQuadsScene creates a scene of five colored quads facing the camera
func NewQuadsScene(width, height int) *Scene {
	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	shapes := geometry.NewShapeList()
	shapes.Add(geometry.NewQuad(
		core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed))
	shapes.Add(geometry.NewQuad(
		core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen))
	shapes.Add(geometry.NewQuad(
		core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue))
	shapes.Add(geometry.NewQuad(
		core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange))
	shapes.Add(geometry.NewQuad(
		core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal))

	return &Scene{
		Shapes: shapes,
		CameraConfig: renderer.CameraConfig{
			Width:         width,
			Height:        height,
			Position:      core.NewVec3(0, 0, 9),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          80,
			DefocusAngle:  0,
			FocusDistance: 1,
		},
		BackgroundFn: SolidBackground(core.NewVec3(0.5, 0.7, 1.0)),
	}
}
