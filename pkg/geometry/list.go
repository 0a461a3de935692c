package geometry

import "github.com/Ofir7909/go-raytracer/pkg/core"

// ShapeList is an append-only collection of shapes with an aggregate
// bounding box. Used during scene construction and as the input to the BVH.
type ShapeList struct {
	Shapes []core.Shape
	bbox   core.AABB
}

// NewShapeList creates an empty shape list
func NewShapeList() *ShapeList {
	return &ShapeList{bbox: core.EmptyAABB}
}

// Add appends a shape and grows the aggregate bounding box
func (l *ShapeList) Add(shape core.Shape) {
	l.Shapes = append(l.Shapes, shape)
	l.bbox = l.bbox.Union(shape.BoundingBox())
}

// Hit scans every shape, keeping the closest hit. Each candidate is tested
// against an interval shrunk to the closest hit found so far.
func (l *ShapeList) Hit(ray core.Ray, tRange core.Interval) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tRange.End

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, core.NewInterval(tRange.Start, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all member bounding boxes
func (l *ShapeList) BoundingBox() core.AABB {
	return l.bbox
}
