package quadtree

// Query returns the distinct items whose own bounding box intersects box,
// in the order Find first meets them.
func Query[T Item](box BoundingBox, tree QuadTree[T]) []T {
	var items []T
	seen := make(map[T]struct{})
	for _, item := range tree.Find(box) {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		if item.BoundingBox().Intersects(box) {
			items = append(items, item)
		}
	}
	return items
}

// QueryPoint returns the distinct items whose bounding box strictly
// contains p. Leaves are matched with their edges included, since an item
// containing a point on a subdivision line lives on both sides of it.
func QueryPoint[T Item](p Point, tree QuadTree[T]) []T {
	var items []T
	seen := make(map[T]struct{})
	Walk(tree, func(t QuadTree[T]) bool {
		b := t.Bounds()
		if p.X < b.Horizontal.Low || p.X > b.Horizontal.High ||
			p.Y < b.Vertical.Low || p.Y > b.Vertical.High {
			return false
		}
		if l, ok := t.(*Leaf[T]); ok {
			for _, item := range l.items {
				if _, ok := seen[item]; ok {
					continue
				}
				seen[item] = struct{}{}
				if item.BoundingBox().Contains(p) {
					items = append(items, item)
				}
			}
		}
		return true
	})
	return items
}

// Walk visits tree and its subtrees in pre-order, children in NE, NW, SW, SE
// order. When fn returns false the children of that subtree are skipped.
func Walk[T Item](tree QuadTree[T], fn func(QuadTree[T]) bool) {
	stack := []QuadTree[T]{tree}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(t) {
			continue
		}
		if n, ok := t.(*Node[T]); ok {
			for q := SE; q >= NE; q-- {
				stack = append(stack, n.children[q])
			}
		}
	}
}

// Stats summarizes the shape of a tree.
type Stats struct {
	Nodes  int
	Leaves int
	// Slots is the number of stored item copies, as returned by Len.
	Slots int
	// Depth is the deepest leaf's depth relative to the walked tree.
	Depth int
	// Overfull counts leaves holding more than the capacity, which only
	// happens at the max depth.
	Overfull int
}

func StatsOf[T Item](tree QuadTree[T]) Stats {
	var s Stats
	Walk(tree, func(t QuadTree[T]) bool {
		switch t := t.(type) {
		case *Node[T]:
			s.Nodes++
		case *Leaf[T]:
			s.Leaves++
			s.Slots += len(t.items)
			if d := t.depth - tree.Depth(); d > s.Depth {
				s.Depth = d
			}
			if len(t.items) > t.s.capacity {
				s.Overfull++
			}
		}
		return true
	})
	return s
}
