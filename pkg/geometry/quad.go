package geometry

import (
	"math"

	"github.com/Ofir7909/go-raytracer/pkg/core"
)

// Quad represents a planar parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3     // One corner of the quad
	U        core.Vec3     // First edge vector
	V        core.Vec3     // Second edge vector
	Normal   core.Vec3     // Unit normal (computed from U × V)
	Material core.Material // Material of the quad
	d        float64       // Plane equation constant: normal · point = d
	w        core.Vec3     // Cached basis vector for planar coordinates
	bbox     core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	// The box of a planar quad is flat on the normal axis; pad it so the
	// BVH slab test and longest-axis heuristic stay well defined
	bbox := core.NewAABBFromPoints(corner, corner.Add(u).Add(v)).
		Union(core.NewAABBFromPoints(corner.Add(u), corner.Add(v))).
		PadToMinimum(0.0001)

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		d:        normal.Dot(corner),
		w:        cross.Divide(cross.LengthSquared()),
		bbox:     bbox,
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tRange core.Interval) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.d - ray.Origin.Dot(q.Normal)) / denominator
	if !tRange.Surrounds(t) {
		return nil, false
	}

	// Express the hit point in the quad's own (u,v) basis
	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.w.Dot(planar.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planar))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        t,
		Point:    hitPoint,
		U:        alpha,
		V:        beta,
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}
