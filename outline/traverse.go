package outline

// Traversal engine (§4.4). A single in-order traversal primitive,
// iterative via an explicit ancestor stack (no parent pointers exist on
// nodes — §9 "Cyclic / parent pointers"), parameterized by direction and
// an early-termination visitor. It never descends into a leaf's
// `collapsed` subtree: that is a separate document.

// step records one internal node on the path from the root to the
// currently-visited leaf, together with the stored offset at which that
// node's subtree begins and whether the path descended into its left
// (true) or right (false) child.
type step struct {
	n        *node
	offset   int
	wentLeft bool
}

// cursor is a position over a rope: the current leaf, its starting
// stored offset, and the ancestor path that reached it.
type cursor struct {
	leaf   *node
	offset int
	path   []step
}

// locate descends from root to the leaf containing stored offset at,
// recording the ancestor path. Pre: 0 <= at <= storedLen(root).
func locate(root *node, at int) cursor {
	c := cursor{}
	n := root
	base := 0
	for n != nil && !n.isLeaf {
		if at-base < n.weight {
			c.path = append(c.path, step{n: n, offset: base, wentLeft: true})
			n = n.left
		} else {
			c.path = append(c.path, step{n: n, offset: base, wentLeft: false})
			base += n.weight
			n = n.right
		}
	}
	c.leaf = n
	c.offset = base
	return c
}

// next advances the cursor to the in-order successor leaf. ok is false
// past the rightmost leaf.
func (c cursor) next() (cursor, bool) {
	path := append([]step(nil), c.path...)
	for len(path) > 0 {
		top := path[len(path)-1]
		if top.wentLeft {
			path[len(path)-1] = step{n: top.n, offset: top.offset, wentLeft: false}
			nc := descendLeftmost(top.n.right, top.offset+top.n.weight, path)
			return nc, true
		}
		path = path[:len(path)-1]
	}
	return cursor{}, false
}

// prev moves the cursor to the in-order predecessor leaf. ok is false
// before the leftmost leaf.
func (c cursor) prev() (cursor, bool) {
	path := append([]step(nil), c.path...)
	for len(path) > 0 {
		top := path[len(path)-1]
		if !top.wentLeft {
			path[len(path)-1] = step{n: top.n, offset: top.offset, wentLeft: true}
			nc := descendRightmost(top.n.left, top.offset, path)
			return nc, true
		}
		path = path[:len(path)-1]
	}
	return cursor{}, false
}

func descendLeftmost(n *node, base int, path []step) cursor {
	for !n.isLeaf {
		path = append(path, step{n: n, offset: base, wentLeft: true})
		n = n.left
	}
	return cursor{leaf: n, offset: base, path: path}
}

func descendRightmost(n *node, base int, path []step) cursor {
	for !n.isLeaf {
		path = append(path, step{n: n, offset: base, wentLeft: false})
		base += n.weight
		n = n.right
	}
	return cursor{leaf: n, offset: base, path: path}
}

// direction of a traversal.
type direction int

const (
	forward direction = iota
	backward
)

// visit calls fn(leaf, leafStartOffset) for each leaf from start to end
// (inclusive bounds on starting offsets), in the given direction,
// stopping early if fn returns false. start/end are stored offsets; a
// nil bound defaults to 0 (forward) or storedLen(root) (backward), per
// §4.4.
func visit(root *node, start, end *int, dir direction, fn func(leaf *node, startOffset int) bool) {
	if root == nil {
		return
	}
	total := storedLen(root)

	var startAt int
	if start != nil {
		startAt = *start
	} else if dir == backward {
		startAt = total
	}
	if startAt > total {
		startAt = total
	}

	var endAt int
	hasEnd := end != nil
	if hasEnd {
		endAt = *end
	}

	c := locate(root, startAt)
	if c.leaf == nil {
		return
	}
	for {
		if hasEnd {
			if dir == forward && c.offset > endAt {
				return
			}
			if dir == backward && c.offset < endAt {
				return
			}
		}
		if !fn(c.leaf, c.offset) {
			return
		}
		var ok bool
		if dir == forward {
			c, ok = c.next()
		} else {
			c, ok = c.prev()
		}
		if !ok {
			return
		}
	}
}

// leafAt returns the leaf whose stored range contains offset, and the
// offset at which it starts.
func leafAt(root *node, offset int) (*node, int) {
	c := locate(root, offset)
	return c.leaf, c.offset
}

// leavesIn collects every leaf whose stored range intersects [start,end].
func leavesIn(root *node, start, end int) []struct {
	leaf   *node
	offset int
} {
	var out []struct {
		leaf   *node
		offset int
	}
	s, e := start, end
	visit(root, &s, &e, forward, func(leaf *node, offset int) bool {
		out = append(out, struct {
			leaf   *node
			offset int
		}{leaf, offset})
		return true
	})
	return out
}

// parentOfLeaf returns the first leaf strictly before offset whose
// indentation is strictly less than leaf_at(offset)'s, or nil if that
// leaf already sits at indentation 0.
func parentOfLeaf(root *node, offset int) (*node, int, bool) {
	target, _ := leafAt(root, offset)
	if target == nil || target.indentation == 0 {
		return nil, 0, false
	}
	c := locate(root, offset)
	for {
		var ok bool
		c, ok = c.prev()
		if !ok {
			return nil, 0, false
		}
		if c.leaf.indentation < target.indentation {
			return c.leaf, c.offset, true
		}
	}
}

// childrenOfLeaf returns the contiguous run of leaves immediately
// following leaf_at(offset) whose indentation is strictly greater.
func childrenOfLeaf(root *node, offset int) []struct {
	leaf   *node
	offset int
} {
	target, targetOffset := leafAt(root, offset)
	if target == nil {
		return nil
	}
	var out []struct {
		leaf   *node
		offset int
	}
	c := locate(root, targetOffset)
	for {
		nc, ok := c.next()
		if !ok {
			break
		}
		if nc.leaf.indentation <= target.indentation {
			break
		}
		out = append(out, struct {
			leaf   *node
			offset int
		}{nc.leaf, nc.offset})
		c = nc
	}
	return out
}
