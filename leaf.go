package quadtree

import (
	"slices"
)

// Leaf is a terminal node holding items directly.
type Leaf[T Item] struct {
	bounds BoundingBox
	s      settings
	depth  int
	items  []T
}

func newLeaf[T Item](bounds BoundingBox, s settings, depth int, items []T) *Leaf[T] {
	return &Leaf[T]{bounds: bounds, s: s, depth: depth, items: items}
}

func (l *Leaf[T]) Bounds() BoundingBox { return l.bounds }
func (l *Leaf[T]) Capacity() int       { return l.s.capacity }
func (l *Leaf[T]) MaxDepth() int       { return l.s.maxDepth }
func (l *Leaf[T]) Depth() int          { return l.depth }
func (l *Leaf[T]) Len() int            { return len(l.items) }
func (l *Leaf[T]) settings() settings  { return l.s }

func (l *Leaf[T]) Items() []T {
	return l.appendItems(nil)
}

func (l *Leaf[T]) appendItems(dst []T) []T {
	return append(dst, l.items...)
}

func (l *Leaf[T]) Find(box BoundingBox) []T {
	return l.appendFind(nil, box)
}

func (l *Leaf[T]) appendFind(dst []T, box BoundingBox) []T {
	if !box.Intersects(l.bounds) {
		return dst
	}
	return append(dst, l.items...)
}

func (l *Leaf[T]) Insert(item T) QuadTree[T] {
	if !item.BoundingBox().Intersects(l.bounds) {
		return l
	}
	if len(l.items) < l.s.capacity || l.depth >= l.s.maxDepth {
		// Clip so the append copies instead of writing into a backing array
		// shared with the previous tree value.
		return newLeaf(l.bounds, l.s, l.depth, append(slices.Clip(l.items), item))
	}
	return l.subdivide(item)
}

func (l *Leaf[T]) InsertMany(items []T) QuadTree[T] {
	return insertMany[T](l, items)
}

// helper function of Insert()
// builds a Node whose quadrants each receive every item of the leaf plus
// the overflowing one. A quadrant may subdivide again while doing so.
func (l *Leaf[T]) subdivide(item T) QuadTree[T] {
	n := &Node[T]{bounds: l.bounds, depth: l.depth}
	for q := range n.children {
		quadrant := newLeaf[T](Quadrant(q).Subdivide(l.bounds), l.s, l.depth+1, nil)
		n.children[q] = quadrant.InsertMany(l.items).Insert(item)
	}
	return n
}

func (l *Leaf[T]) Remove(item T) QuadTree[T] {
	return l.RemoveFunc(func(x T) bool { return x == item })
}

func (l *Leaf[T]) RemoveFunc(match func(T) bool) QuadTree[T] {
	if !slices.ContainsFunc(l.items, match) {
		return l
	}
	var kept []T
	for _, item := range l.items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	return newLeaf(l.bounds, l.s, l.depth, kept)
}

func (l *Leaf[T]) Update(fn func(T) T, item T) QuadTree[T] {
	return l.Remove(item).Insert(fn(item))
}

func (l *Leaf[T]) Apply(fn func(item T, bucket []T) T) QuadTree[T] {
	if len(l.items) == 0 {
		return l
	}
	// The callbacks of one leaf share a copy of its items; writes to it never
	// reach a tree.
	bucket := slices.Clone(l.items)
	items := make([]T, len(l.items))
	for i, item := range l.items {
		items[i] = fn(item, bucket)
	}
	return newLeaf(l.bounds, l.s, l.depth, items)
}

func (l *Leaf[T]) ApplySafe(fn func(item T, bucket []T) T) QuadTree[T] {
	return l.Apply(fn).Reset()
}

func (l *Leaf[T]) Reset() QuadTree[T] {
	return reset[T](l)
}
