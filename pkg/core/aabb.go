package core

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB bounds nothing; it is the identity for Union.
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates an AABB from three axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints creates an AABB bounding the two points, ordering each axis
func NewAABBFromPoints(a, b Vec3) AABB {
	return AABB{
		X: intervalFromOrdered(a.X, b.X),
		Y: intervalFromOrdered(a.Y, b.Y),
		Z: intervalFromOrdered(a.Z, b.Z),
	}
}

func intervalFromOrdered(a, b float64) Interval {
	if a <= b {
		return Interval{Start: a, End: b}
	}
	return Interval{Start: b, End: a}
}

// AxisInterval returns the interval for the given axis (0=X, 1=Y, 2=Z)
func (aabb AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	default:
		panic("aabb: axis index out of bounds")
	}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: aabb.X.Union(other.X),
		Y: aabb.Y.Union(other.Y),
		Z: aabb.Z.Union(other.Z),
	}
}

// Hit tests if a ray intersects this AABB over tRange using the slab method.
// Each axis shrinks the running interval; the box is missed as soon as the
// interval becomes empty.
func (aabb AABB) Hit(ray Ray, tRange Interval) bool {
	for axis := 0; axis < 3; axis++ {
		axisInterval := aabb.AxisInterval(axis)
		origin := ray.Origin.Axis(axis)
		invDirection := 1.0 / ray.Direction.Axis(axis)

		t0 := (axisInterval.Start - origin) * invDirection
		t1 := (axisInterval.End - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > tRange.Start {
			tRange.Start = t0
		}
		if t1 < tRange.End {
			tRange.End = t1
		}

		if tRange.End <= tRange.Start {
			return false
		}
	}
	return true
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the largest extent.
// Ties resolve to the earlier axis in X, Y, Z order.
func (aabb AABB) LongestAxis() int {
	if aabb.X.Size() >= aabb.Y.Size() {
		if aabb.X.Size() >= aabb.Z.Size() {
			return 0
		}
		return 2
	}
	if aabb.Y.Size() >= aabb.Z.Size() {
		return 1
	}
	return 2
}

// PadToMinimum returns an AABB whose axes are all at least delta wide.
// Planar shapes need this so the slab test and the longest-axis heuristic
// never see a zero-thickness box.
func (aabb AABB) PadToMinimum(delta float64) AABB {
	padded := aabb
	if padded.X.Size() < delta {
		padded.X = padded.X.Expand(delta)
	}
	if padded.Y.Size() < delta {
		padded.Y = padded.Y.Expand(delta)
	}
	if padded.Z.Size() < delta {
		padded.Z = padded.Z.Expand(delta)
	}
	return padded
}
