package renderer

import (
	"math"
	"math/rand"

	"github.com/Ofir7909/go-raytracer/pkg/core"
)

// CameraConfig holds the parameters describing a camera
type CameraConfig struct {
	Width         int       // Image width in pixels
	Height        int       // Image height in pixels
	Position      core.Vec3 // Camera position in world space
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // World up direction
	VFov          float64   // Vertical field of view in degrees
	DefocusAngle  float64   // Aperture cone angle in degrees (0 disables depth of field)
	FocusDistance float64   // Distance to the plane of perfect focus
}

// Camera generates world-space rays for pixel coordinates, jittered within
// the pixel footprint and optionally across a defocus disk
type Camera struct {
	config       CameraConfig
	pixel00      core.Vec3 // Center of the top-left pixel
	pixelDeltaU  core.Vec3 // Offset to the next pixel to the right
	pixelDeltaV  core.Vec3 // Offset to the next pixel down
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
}

// NewCamera creates a camera from its configuration
func NewCamera(config CameraConfig) *Camera {
	aspectRatio := float64(config.Width) / float64(config.Height)

	h := math.Tan(config.VFov * math.Pi / 180 / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * aspectRatio

	// Orthonormal camera basis
	w := config.Position.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)
	viewportUpperLeft := config.Position.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))

	pixelDeltaU := viewportU.Divide(float64(config.Width))
	pixelDeltaV := viewportV.Divide(float64(config.Height))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(config.DefocusAngle*math.Pi/180/2)

	return &Camera{
		config:       config,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay generates a ray through pixel (x, y), jittered within the pixel
func (c *Camera) GetRay(x, y int, random *rand.Rand) core.Ray {
	offset := core.SampleUnitSquare(random)
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(x) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(y) + offset.Y))

	origin := c.config.Position
	if c.config.DefocusAngle > 0 {
		p := core.RandomInUnitDisk(random)
		origin = origin.
			Add(c.defocusDiskU.Multiply(p.X)).
			Add(c.defocusDiskV.Multiply(p.Y))
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}
