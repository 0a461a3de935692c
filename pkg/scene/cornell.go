package scene

import (
	"github.com/Ofir7909/go-raytracer/pkg/core"
	"github.com/Ofir7909/go-raytracer/pkg/geometry"
	"github.com/Ofir7909/go-raytracer/pkg/material"
	"github.com/Ofir7909/go-raytracer/pkg/renderer"
)

// NewCornellScene creates the Cornell box: white floor, ceiling and back
// wall, a green right wall, a red left wall and a ceiling light, lit only
// by the light itself
func NewCornellScene(width, height int) *Scene {
	redWall := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	whiteWall := material.NewLambertian(core.NewVec3Uniform(0.73))
	greenWall := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	shapes := geometry.NewShapeList()

	// Green wall at x=555, red wall at x=0
	shapes.Add(geometry.NewQuad(
		core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), greenWall))
	shapes.Add(geometry.NewQuad(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), redWall))
	// Floor, ceiling, back wall
	shapes.Add(geometry.NewQuad(
		core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), whiteWall))
	shapes.Add(geometry.NewQuad(
		core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), whiteWall))
	shapes.Add(geometry.NewQuad(
		core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), whiteWall))
	// Ceiling light
	shapes.Add(geometry.NewQuad(
		core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light))

	return &Scene{
		Shapes: shapes,
		CameraConfig: renderer.CameraConfig{
			Width:         width,
			Height:        height,
			Position:      core.NewVec3(278, 278, -800),
			LookAt:        core.NewVec3(278, 278, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          40,
			DefocusAngle:  0,
			FocusDistance: 1,
		},
		BackgroundFn: SolidBackground(core.Vec3{}),
	}
}
