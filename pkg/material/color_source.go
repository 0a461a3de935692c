package material

import (
	"math"

	"github.com/Ofir7909/go-raytracer/pkg/core"
)

// ColorSource provides color values at surface points, allowing materials
// to use solid colors or procedural textures interchangeably
type ColorSource interface {
	Evaluate(u, v float64, p core.Vec3) core.Vec3
}

// SolidColor is a color source that returns a constant color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the constant color regardless of position
func (s *SolidColor) Evaluate(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates between two color sources in a 3D checker
// pattern based on the integer cell of the hit point
type CheckerTexture struct {
	Even ColorSource
	Odd  ColorSource
}

// NewCheckerTexture creates a checker texture from two color sources
func NewCheckerTexture(even, odd ColorSource) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd}
}

// Evaluate picks the even or odd source by the parity of the hit point's cell
func (c *CheckerTexture) Evaluate(u, v float64, p core.Vec3) core.Vec3 {
	xInt := int(math.Floor(p.X))
	yInt := int(math.Floor(p.Y))
	zInt := int(math.Floor(p.Z))

	if (xInt+yInt+zInt)%2 == 0 {
		return c.Even.Evaluate(u, v, p)
	}
	return c.Odd.Evaluate(u, v, p)
}
