package scene

import (
	"errors"
	"sort"

	"github.com/ciekce/cpurt/vec"
)

// ErrEmptyScene is returned by Build when the sphere store is empty.
// The BVH is left with no nodes; every subsequent trace against it is
// a sky miss.
var ErrEmptyScene = errors.New("scene: cannot build bvh for empty scene")

// Node is a flat BVH node: either a leaf (SphereIdx >= 0, referencing
// exactly one sphere) or an internal node (SphereIdx < 0, with Left and
// Right indices into the same node array). Indices are used instead of
// pointers so the array stays contiguous and trivially copyable, and so
// nothing can dangle if the sphere slice is ever reallocated during
// build.
type Node struct {
	AABB      AABB
	SphereIdx int32
	Left      uint32
	Right     uint32
}

func (n Node) isLeaf() bool { return n.SphereIdx >= 0 }

// BVH is the flat, index-addressed bounding-volume hierarchy built over
// a scene's spheres. The root is always node 0.
type BVH struct {
	Nodes []Node
}

// Build constructs a BVH over spheres by recursive median split along
// the longest axis of each range's bounding box. Returns ErrEmptyScene
// (with an empty BVH) if spheres is empty.
func Build(spheres []Sphere) (BVH, error) {
	if len(spheres) == 0 {
		return BVH{}, ErrEmptyScene
	}

	b := BVH{}
	root := b.allocNode()

	if len(spheres) == 1 {
		b.populateLeaf(root, spheres, 0)
		return b, nil
	}

	order := make([]int32, len(spheres))
	for i := range order {
		order[i] = int32(i)
	}

	b.populateInternal(root, spheres, order, 0, len(order))
	return b, nil
}

func (b *BVH) allocNode() uint32 {
	id := uint32(len(b.Nodes))
	b.Nodes = append(b.Nodes, Node{SphereIdx: -1})
	return id
}

func (b *BVH) populateLeaf(id uint32, spheres []Sphere, sphereIdx int32) {
	b.Nodes[id] = Node{
		SphereIdx: sphereIdx,
		AABB:      spheres[sphereIdx].AABB(),
	}
}

func (b *BVH) populateInternal(id uint32, spheres []Sphere, order []int32, start, end int) {
	count := end - start
	if count == 1 {
		b.populateLeaf(id, spheres, order[start])
		return
	}

	box := spheres[order[start]].AABB()
	for i := start + 1; i < end; i++ {
		box = Union(box, spheres[order[i]].AABB())
	}

	size := box.Max.Sub(box.Min)

	axis := 0
	maxSize := size.X
	if size.Y > maxSize {
		axis = 1
		maxSize = size.Y
	}
	if size.Z > maxSize {
		axis = 2
		maxSize = size.Z
	}

	n := &b.Nodes[id]
	n.AABB = box
	n.Left = b.allocNode()
	n.Right = b.allocNode()
	left, right := n.Left, n.Right

	axisMin := func(idx int32) float32 {
		return axisComponent(spheres[idx].AABB().Min, axis)
	}

	if count == 2 {
		a, c := order[start], order[start+1]
		if axisMin(a) < axisMin(c) {
			b.populateLeaf(left, spheres, a)
			b.populateLeaf(right, spheres, c)
		} else {
			b.populateLeaf(left, spheres, c)
			b.populateLeaf(right, spheres, a)
		}
		return
	}

	sub := order[start:end]
	sort.Slice(sub, func(i, j int) bool {
		return axisMin(sub[i]) < axisMin(sub[j])
	})

	mid := start + count/2
	b.populateInternal(left, spheres, order, start, mid)
	b.populateInternal(right, spheres, order, mid, end)
}

func axisComponent(v vec.Vec3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
