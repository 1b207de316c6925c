package quadtree

// Quadrant indexes the children of a Node.
type Quadrant int

const (
	NE Quadrant = iota
	NW
	SW
	SE
)

func (q Quadrant) String() string {
	switch q {
	case NE:
		return "NE"
	case NW:
		return "NW"
	case SW:
		return "SW"
	case SE:
		return "SE"
	}
	return "Quadrant(?)"
}

// Subdivide returns the part of b covered by quadrant q.
func (q Quadrant) Subdivide(b BoundingBox) BoundingBox {
	switch q {
	case NE:
		return SubdivideNE(b)
	case NW:
		return SubdivideNW(b)
	case SW:
		return SubdivideSW(b)
	case SE:
		return SubdivideSE(b)
	}
	panic("quadtree: invalid quadrant")
}

// Node is an internal node whose four children quarter its bounds.
type Node[T Item] struct {
	bounds   BoundingBox
	depth    int
	children [4]QuadTree[T]
}

// Child returns the subtree covering quadrant q.
func (n *Node[T]) Child(q Quadrant) QuadTree[T] {
	return n.children[q]
}

func (n *Node[T]) Bounds() BoundingBox { return n.bounds }
func (n *Node[T]) Depth() int          { return n.depth }

// Capacity is read from the NE chain; it is the same in every leaf.
func (n *Node[T]) Capacity() int      { return n.children[NE].Capacity() }
func (n *Node[T]) MaxDepth() int      { return n.children[NE].MaxDepth() }
func (n *Node[T]) settings() settings { return n.children[NE].settings() }

func (n *Node[T]) Len() int {
	total := 0
	for _, child := range n.children {
		total += child.Len()
	}
	return total
}

func (n *Node[T]) Items() []T {
	return n.appendItems(nil)
}

func (n *Node[T]) appendItems(dst []T) []T {
	for _, child := range n.children {
		dst = child.appendItems(dst)
	}
	return dst
}

// Find skips nodes the box misses. The children's bounds lie within the
// node's, so none of their leaves could match either.
func (n *Node[T]) Find(box BoundingBox) []T {
	return n.appendFind(nil, box)
}

func (n *Node[T]) appendFind(dst []T, box BoundingBox) []T {
	if !box.Intersects(n.bounds) {
		return dst
	}
	for _, child := range n.children {
		dst = child.appendFind(dst, box)
	}
	return dst
}

func (n *Node[T]) Insert(item T) QuadTree[T] {
	if !item.BoundingBox().Intersects(n.bounds) {
		return n
	}
	return n.rebuild(func(child QuadTree[T]) QuadTree[T] {
		return child.Insert(item)
	})
}

func (n *Node[T]) InsertMany(items []T) QuadTree[T] {
	return insertMany[T](n, items)
}

func (n *Node[T]) Remove(item T) QuadTree[T] {
	return n.RemoveFunc(func(x T) bool { return x == item })
}

// RemoveFunc visits every leaf: a stored item's box may no longer match the
// leaves holding it.
func (n *Node[T]) RemoveFunc(match func(T) bool) QuadTree[T] {
	return n.rebuild(func(child QuadTree[T]) QuadTree[T] {
		return child.RemoveFunc(match)
	})
}

func (n *Node[T]) Update(fn func(T) T, item T) QuadTree[T] {
	return n.Remove(item).Insert(fn(item))
}

func (n *Node[T]) Apply(fn func(item T, bucket []T) T) QuadTree[T] {
	return n.rebuild(func(child QuadTree[T]) QuadTree[T] {
		return child.Apply(fn)
	})
}

func (n *Node[T]) ApplySafe(fn func(item T, bucket []T) T) QuadTree[T] {
	return n.Apply(fn).Reset()
}

func (n *Node[T]) Reset() QuadTree[T] {
	return reset[T](n)
}

// rebuild returns a node with fn applied to every child, or n itself when
// fn returned every child unchanged.
func (n *Node[T]) rebuild(fn func(QuadTree[T]) QuadTree[T]) QuadTree[T] {
	var children [4]QuadTree[T]
	changed := false
	for q, child := range n.children {
		children[q] = fn(child)
		if children[q] != child {
			changed = true
		}
	}
	if !changed {
		return n
	}
	return &Node[T]{bounds: n.bounds, depth: n.depth, children: children}
}
