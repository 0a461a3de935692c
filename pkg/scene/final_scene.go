package scene

import (
	"math/rand"

	"github.com/Ofir7909/go-raytracer/pkg/core"
	"github.com/Ofir7909/go-raytracer/pkg/geometry"
	"github.com/Ofir7909/go-raytracer/pkg/material"
	"github.com/Ofir7909/go-raytracer/pkg/renderer"
)

// NewFinalScene creates the classic closing scene: three large feature
// spheres over a checkered ground, surrounded by a grid of small spheres
// with randomized positions and materials. The layout is seeded so the
// same scene is produced every time.
func NewFinalScene(width, height int) *Scene {
	random := rand.New(rand.NewSource(1984))

	shapes := geometry.NewShapeList()

	ground := material.NewTexturedLambertian(material.NewCheckerTexture(
		material.NewSolidColor(core.NewVec3(0.4, 0.59, 0.56)),
		material.NewSolidColor(core.NewVec3(0.9, 0.9, 0.9)),
	))
	shapes.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	shapes.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)))
	shapes.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	shapes.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.1)))

	for x := -11; x < 11; x++ {
		for z := -11; z < 11; z++ {
			radius := 0.2
			center := core.NewVec3(
				float64(x)+0.1+0.8*random.Float64(),
				radius,
				float64(z)+0.9*(0.1+0.8*random.Float64()),
			)

			var mat core.Material
			switch choice := random.Float64(); {
			case choice < 0.7:
				mat = material.NewLambertian(core.NewVec3(
					random.Float64(), random.Float64(), random.Float64()))
			case choice < 0.9:
				mat = material.NewMetal(core.NewVec3(
					random.Float64(), random.Float64(), random.Float64()), random.Float64())
			default:
				mat = material.NewDielectric(1.5)
			}

			shapes.Add(geometry.NewSphere(center, radius, mat))
		}
	}

	return &Scene{
		Shapes: shapes,
		CameraConfig: renderer.CameraConfig{
			Width:         width,
			Height:        height,
			Position:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          20,
			DefocusAngle:  0.6,
			FocusDistance: 10,
		},
		BackgroundFn: SolidBackground(core.NewVec3(0.5, 0.7, 1.0)),
	}
}
