package quadtree

// insertMany folds Insert over items in order with a plain loop, so a long
// input costs no stack.
func insertMany[T Item](tree QuadTree[T], items []T) QuadTree[T] {
	for _, item := range items {
		tree = tree.Insert(item)
	}
	return tree
}

// reset reinserts the items of tree into an empty tree with the same
// bounds, settings and depth. Copies held only because an item straddles
// several leaves are reinserted once, so resetting a consistent tree is
// idempotent; an item inserted twice is reinserted twice.
func reset[T Item](tree QuadTree[T]) QuadTree[T] {
	empty := newLeaf[T](tree.Bounds(), tree.settings(), tree.Depth(), nil)
	return empty.InsertMany(insertedItems(tree))
}

// insertedItems returns Items with the straddling copies dropped. An item
// is kept as many times as the most copies any single leaf holds, in the
// order Items first meets them.
func insertedItems[T Item](tree QuadTree[T]) []T {
	copies := make(map[T]int)
	Walk(tree, func(t QuadTree[T]) bool {
		if l, ok := t.(*Leaf[T]); ok {
			inLeaf := make(map[T]int, len(l.items))
			for _, item := range l.items {
				inLeaf[item]++
				copies[item] = max(copies[item], inLeaf[item])
			}
		}
		return true
	})
	all := tree.Items()
	items := make([]T, 0, len(all))
	for _, item := range all {
		if copies[item] > 0 {
			items = append(items, item)
			copies[item]--
		}
	}
	return items
}

// Map applies fn to every stored item, keeping the shape of the tree. Items
// are not re-placed when fn changes their bounding box; see MapSafe.
func Map[T, U Item](fn func(T) U, tree QuadTree[T]) QuadTree[U] {
	switch t := tree.(type) {
	case *Leaf[T]:
		items := make([]U, len(t.items))
		for i, item := range t.items {
			items[i] = fn(item)
		}
		return newLeaf[U](t.bounds, t.s, t.depth, items)
	case *Node[T]:
		var children [4]QuadTree[U]
		for q, child := range t.children {
			children[q] = Map[T, U](fn, child)
		}
		return &Node[U]{bounds: t.bounds, depth: t.depth, children: children}
	}
	panic("quadtree: unknown tree variant")
}

// MapSafe is Map followed by Reset.
func MapSafe[T, U Item](fn func(T) U, tree QuadTree[T]) QuadTree[U] {
	return Map(fn, tree).Reset()
}
