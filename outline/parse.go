package outline

// FromText parses a plain-text document (tabs-for-indentation, `\n`
// line endings) into a rope (§4.8). Leading `\t` runs become a leaf's
// indentation; the remainder of the line, plus its trailing `\n`,
// becomes the leaf's content. A sentinel `\n` is conceptually appended
// if the input doesn't already end in one, so the sentinel invariant
// (I6) holds from construction.
func FromText(s string) *Rope {
	units := fromString(s)
	if len(units) == 0 || units[len(units)-1] != '\n' {
		units = append(append(codeunits{}, units...), '\n')
	}

	leaves := splitIntoLeaves(units)
	return &Rope{root: buildBalanced(leaves)}
}

// splitIntoLeaves turns a `\n`-terminated code-unit stream into leaves,
// peeling off each paragraph's leading tabs as indentation.
func splitIntoLeaves(units codeunits) []*node {
	var leaves []*node
	start := 0
	for i, u := range units {
		if u != '\n' {
			continue
		}
		para := units[start : i+1]
		indent := uint32(0)
		for indent < uint32(len(para)) && para[indent] == '\t' {
			indent++
		}
		leaves = append(leaves, newLeafNode(para[indent:], indent))
		start = i + 1
	}
	return leaves
}

// buildBalanced constructs a perfectly balanced tree middle-out: the
// median leaf becomes the subtree root, with the halves recursing left
// and right (§4.8), requiring no post-hoc rebalancing.
func buildBalanced(leaves []*node) *node {
	if len(leaves) == 0 {
		return newLeafNode(codeunits{'\n'}, 0)
	}
	return buildRange(leaves, 0, len(leaves))
}

func buildRange(leaves []*node, lo, hi int) *node {
	n := hi - lo
	switch n {
	case 0:
		return nil
	case 1:
		return leaves[lo]
	default:
		mid := lo + n/2
		left := buildRange(leaves, lo, mid)
		right := buildRange(leaves, mid, hi)
		return newInternal(left, right)
	}
}
