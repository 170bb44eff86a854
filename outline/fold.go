package outline

import "sort"

// foldCandidate is a leaf targeted by Collapse or Expand, together with
// its stored starting offset at the time it was discovered.
type foldCandidate struct {
	leaf   *node
	offset int
}

// Collapse folds every distinct parent paragraph touched by
// [location, location+length] into its own leaf's collapsed subtree
// (§4.6). A leaf with children collapses itself; a childless leaf
// collapses its nearest shallower ancestor instead. Candidates are
// deduplicated by leaf identity and processed in descending offset
// order so that an earlier splice never perturbs a later one's offset.
func (r *Rope) Collapse(location, length int) error {
	if location < 0 || length < 0 || location+length > r.Length() {
		return ErrInvalidRange
	}

	candidates := findCollapseCandidates(r.root, location, location+length)
	if len(candidates) == 0 {
		return ErrCannotCollapse
	}

	root := r.root
	for _, c := range candidates {
		root = collapseOne(root, c)
	}
	r.root = root
	return nil
}

func findCollapseCandidates(root *node, location, length int) []foldCandidate {
	leaves := leavesIn(root, location, location+length)
	seen := map[*node]bool{}
	var out []foldCandidate

	for _, le := range leaves {
		if children := childrenOfLeaf(root, le.offset); len(children) > 0 {
			if !seen[le.leaf] {
				seen[le.leaf] = true
				out = append(out, foldCandidate{le.leaf, le.offset})
			}
			continue
		}
		if parent, parentOffset, ok := parentOfLeaf(root, le.offset); ok {
			if !seen[parent] {
				seen[parent] = true
				out = append(out, foldCandidate{parent, parentOffset})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].offset > out[j].offset })
	return out
}

func collapseOne(root *node, c foldCandidate) *node {
	children := childrenOfLeaf(root, c.offset)
	if len(children) == 0 {
		return root
	}
	childWidth := 0
	for _, ch := range children {
		childWidth += ch.leaf.content.len()
	}

	splitPoint := c.offset + c.leaf.content.len()
	left, mid := split(root, splitPoint)
	block, right := split(mid, childWidth)

	rebaseIndentation(block, -int(c.leaf.indentation))

	if c.leaf.collapsed != nil {
		c.leaf.collapsed = join(c.leaf.collapsed, block)
	} else {
		c.leaf.collapsed = block
	}

	return join(left, right)
}

// Expand restores every collapsed subtree touched by
// [location, location+length] back into the visible tree (§4.7),
// rebasing each restored leaf's indentation by the owning leaf's
// current indentation (which may have changed since the collapse).
func (r *Rope) Expand(location, length int) error {
	if location < 0 || length < 0 || location+length > r.Length() {
		return ErrInvalidRange
	}

	leaves := leavesIn(r.root, location, location+length)
	seen := map[*node]bool{}
	var targets []foldCandidate
	for _, le := range leaves {
		if le.leaf.collapsed != nil && !seen[le.leaf] {
			seen[le.leaf] = true
			targets = append(targets, foldCandidate{le.leaf, le.offset})
		}
	}
	if len(targets) == 0 {
		return ErrCannotExpand
	}

	sort.Slice(targets, func(i, j int) bool { return targets[i].offset > targets[j].offset })

	root := r.root
	for _, t := range targets {
		root = expandOne(root, t)
	}
	r.root = root
	return nil
}

func expandOne(root *node, t foldCandidate) *node {
	block := t.leaf.collapsed
	t.leaf.collapsed = nil
	rebaseIndentation(block, int(t.leaf.indentation))

	splitPoint := t.offset + t.leaf.content.len()
	left, right := split(root, splitPoint)
	return join(join(left, block), right)
}

// rebaseIndentation adds delta to the indentation of every directly
// visible leaf of a detached subtree, never descending into a nested
// collapsed subtree — those remain relative to their own owning leaf.
func rebaseIndentation(root *node, delta int) {
	if root == nil {
		return
	}
	visit(root, nil, nil, forward, func(leaf *node, _ int) bool {
		nv := int(leaf.indentation) + delta
		if nv < 0 {
			nv = 0
		}
		leaf.indentation = uint32(nv)
		return true
	})
}
