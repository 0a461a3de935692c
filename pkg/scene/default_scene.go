package scene

import (
	"github.com/Ofir7909/go-raytracer/pkg/core"
	"github.com/Ofir7909/go-raytracer/pkg/geometry"
	"github.com/Ofir7909/go-raytracer/pkg/material"
	"github.com/Ofir7909/go-raytracer/pkg/renderer"
)

// NewDefaultScene creates a scene with a diffuse sphere, a gold metal
// sphere and a hollow glass sphere resting on a large ground sphere
func NewDefaultScene(width, height int) *Scene {
	groundMat := material.NewLambertian(core.NewVec3(0.4, 0.59, 0.56))
	blueDiffuse := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.8))
	goldMat := material.NewMetal(core.NewVec3(0.944, 0.776, 0.373), 0.4)
	glassMat := material.NewDielectric(1.5)
	// The inner sphere's inverted index turns the pair into a hollow shell
	glassInnerMat := material.NewDielectric(1.0 / 1.5)

	shapes := geometry.NewShapeList()
	shapes.Add(geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, blueDiffuse))
	shapes.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, goldMat))
	shapes.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glassMat))
	shapes.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, glassInnerMat))
	shapes.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, groundMat))

	return &Scene{
		Shapes: shapes,
		CameraConfig: renderer.CameraConfig{
			Width:         width,
			Height:        height,
			Position:      core.NewVec3(-2, 2, 1),
			LookAt:        core.NewVec3(0, 0, -1),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          30,
			DefocusAngle:  10,
			FocusDistance: 3.4,
		},
		BackgroundFn: GradientBackground(
			core.NewVec3(0.5, 0.7, 1.0),
			core.NewVec3(1, 1, 1),
		),
	}
}
