/*
Package quadtree implements an immutable axis-aligned bounding box quadtree.

Items are anything that can report a BoundingBox. An item is stored in every
leaf whose bounds intersect its box, so an item straddling a subdivision line
is held by more than one leaf; Len and Items count those copies.

Trees are values. Insert, Remove, Update, Apply, Map and Reset never modify
the receiver: they return a new tree, sharing every subtree they did not have
to rebuild. A tree may therefore be read from many goroutines at once, but
there is no way to mutate a tree shared between them.
*/
package quadtree

// DefaultMaxDepth is the depth at which leaves stop subdividing unless
// WithMaxDepth says otherwise. The root is at depth 0.
const DefaultMaxDepth = 32

// Bounded is implemented by anything with a bounding box.
type Bounded interface {
	BoundingBox() BoundingBox
}

// Item is the constraint on values stored in a tree. Equality on the item
// type is what Remove, Update and Reset use to tell items apart.
type Item interface {
	comparable
	Bounded
}

// QuadTree is either a *Leaf or a *Node.
type QuadTree[T Item] interface {
	// Bounds returns the region covered by this (sub)tree.
	Bounds() BoundingBox
	// Capacity returns the leaf capacity, uniform across the tree.
	Capacity() int
	// MaxDepth returns the depth at which leaves stop subdividing.
	MaxDepth() int
	// Depth returns the depth of this subtree's root.
	Depth() int
	// Len returns the number of stored item slots. Items held by several
	// leaves are counted once per leaf.
	Len() int
	// Items returns the leaf buckets concatenated in NE, NW, SW, SE order,
	// duplicates included.
	Items() []T
	// Find returns, in NE, NW, SW, SE order, the full bucket of every leaf
	// whose bounds intersect box. The buckets are not filtered against box.
	Find(box BoundingBox) []T

	Insert(item T) QuadTree[T]
	InsertMany(items []T) QuadTree[T]
	// Remove drops every copy of item from every leaf, without regard to
	// item's current bounding box.
	Remove(item T) QuadTree[T]
	// RemoveFunc drops every stored item for which match returns true.
	RemoveFunc(match func(T) bool) QuadTree[T]
	// Update removes item and inserts fn(item).
	Update(fn func(T) T, item T) QuadTree[T]
	// Apply replaces every item x of every leaf with fn(x, bucket), bucket
	// being a copy of the leaf's items before the call. Items are not
	// re-placed.
	Apply(fn func(item T, bucket []T) T) QuadTree[T]
	// ApplySafe is Apply followed by Reset.
	ApplySafe(fn func(item T, bucket []T) T) QuadTree[T]
	// Reset rebuilds the tree from its items, so that every item again lives
	// in exactly the leaves its bounding box intersects.
	Reset() QuadTree[T]

	settings() settings
	appendItems(dst []T) []T
	appendFind(dst []T, box BoundingBox) []T
}

type settings struct {
	capacity int
	maxDepth int
}

// Option configures a tree built with New.
type Option func(*settings)

// WithMaxDepth sets the depth past which leaves hold items beyond their
// capacity instead of subdividing.
func WithMaxDepth(depth int) Option {
	return func(s *settings) {
		s.maxDepth = depth
	}
}

// New returns an empty tree covering bounds whose leaves hold up to capacity
// items. A capacity below 1 is accepted; every insertion then subdivides
// down to the max depth.
func New[T Item](bounds BoundingBox, capacity int, opts ...Option) QuadTree[T] {
	s := settings{capacity: capacity, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&s)
	}
	return newLeaf[T](bounds, s, 0, nil)
}

// FindItems returns the items sharing a leaf with item's bounding box.
func FindItems[T Item](item T, tree QuadTree[T]) []T {
	return tree.Find(item.BoundingBox())
}
