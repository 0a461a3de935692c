package scene

import (
	"github.com/Ofir7909/go-raytracer/pkg/core"
	"github.com/Ofir7909/go-raytracer/pkg/geometry"
	"github.com/Ofir7909/go-raytracer/pkg/material"
	"github.com/Ofir7909/go-raytracer/pkg/renderer"
)

// NewLightsScene creates a nearly dark scene where a single quad light
// illuminates a diffuse sphere on a grey floor
func NewLightsScene(width, height int) *Scene {
	shapes := geometry.NewShapeList()

	shapes.Add(geometry.NewSphere(
		core.NewVec3(0, 0.5, 0), 0.5,
		material.NewLambertian(core.NewVec3(0.2, 0.2, 0.9))))

	// Floor
	shapes.Add(geometry.NewQuad(
		core.NewVec3(-500, 0, -500),
		core.NewVec3(1000, 0, 0),
		core.NewVec3(0, 0, 1000),
		material.NewLambertian(core.NewVec3Uniform(0.5))))

	// Light
	shapes.Add(geometry.NewQuad(
		core.NewVec3(1, 0, -0.8),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1.6),
		material.NewDiffuseLight(core.NewVec3(4, 4, 4))))

	return &Scene{
		Shapes: shapes,
		CameraConfig: renderer.CameraConfig{
			Width:         width,
			Height:        height,
			Position:      core.NewVec3(-0.6, 0.7, 2),
			LookAt:        core.NewVec3(0, 0.5, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          50,
			DefocusAngle:  0,
			FocusDistance: 1,
		},
		BackgroundFn: SolidBackground(core.NewVec3Uniform(0.002)),
	}
}
