package geometry

import (
	"sort"

	"github.com/Ofir7909/go-raytracer/pkg/core"
)

// BVHNode is a node of a bounding volume hierarchy. Both children satisfy
// core.Shape, so internal nodes and leaf primitives compose uniformly and a
// node with one child shape simply references it from both slots.
type BVHNode struct {
	left  core.Shape
	right core.Shape
	bbox  core.AABB
}

// NewBVHNode builds a BVH over the shapes of a list. The list's slice is
// copied so construction can sort without mutating the caller's scene.
func NewBVHNode(list *ShapeList) *BVHNode {
	shapes := make([]core.Shape, len(list.Shapes))
	copy(shapes, list.Shapes)
	return buildBVH(shapes)
}

// buildBVH recursively builds the hierarchy using a median split along the
// longest axis of the group's bounding box
func buildBVH(shapes []core.Shape) *BVHNode {
	if len(shapes) == 0 {
		panic("bvh: cannot build from an empty shape list")
	}

	groupBox := core.EmptyAABB
	for _, shape := range shapes {
		groupBox = groupBox.Union(shape.BoundingBox())
	}
	axis := groupBox.LongestAxis()

	node := &BVHNode{}
	switch len(shapes) {
	case 1:
		node.left = shapes[0]
		node.right = shapes[0]
	case 2:
		node.left = shapes[0]
		node.right = shapes[1]
	default:
		sort.Slice(shapes, func(i, j int) bool {
			return shapes[i].BoundingBox().AxisInterval(axis).Start <
				shapes[j].BoundingBox().AxisInterval(axis).Start
		})
		mid := len(shapes) / 2
		node.left = buildBVH(shapes[:mid])
		node.right = buildBVH(shapes[mid:])
	}

	// The children are the source of truth for this node's box
	node.bbox = node.left.BoundingBox().Union(node.right.BoundingBox())
	return node
}

// Hit tests the ray against the node's box, then probes the children.
// After a left hit the right child only searches for something strictly
// closer, so the closest intersection wins without sorting candidates.
func (n *BVHNode) Hit(ray core.Ray, tRange core.Interval) (*core.HitRecord, bool) {
	if !n.bbox.Hit(ray, tRange) {
		return nil, false
	}

	leftHit, hitLeft := n.left.Hit(ray, tRange)
	if hitLeft {
		if rightHit, hitRight := n.right.Hit(ray, core.NewInterval(tRange.Start, leftHit.T)); hitRight {
			return rightHit, true
		}
		return leftHit, true
	}

	return n.right.Hit(ray, tRange)
}

// BoundingBox returns the union of the children's bounding boxes
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}
