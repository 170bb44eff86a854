package outline

import "testing"

func TestCursorNextVisitsLeavesInOrder(t *testing.T) {
	leaves := []*node{leafFor("a\n"), leafFor("b\n"), leafFor("c\n")}
	root := buildBalanced(leaves)

	c := locate(root, 0)
	var got []string
	for {
		got = append(got, c.leaf.content.String())
		var ok bool
		c, ok = c.next()
		if !ok {
			break
		}
	}
	want := []string{"a\n", "b\n", "c\n"}
	expectInt(len(want), len(got), t)
	for i := range want {
		expectString(want[i], got[i], t)
	}
}

func TestCursorPrevVisitsLeavesInReverse(t *testing.T) {
	leaves := []*node{leafFor("a\n"), leafFor("b\n"), leafFor("c\n")}
	root := buildBalanced(leaves)

	c := locate(root, storedLen(root))
	var got []string
	for {
		got = append(got, c.leaf.content.String())
		var ok bool
		c, ok = c.prev()
		if !ok {
			break
		}
	}
	want := []string{"c\n", "b\n", "a\n"}
	expectInt(len(want), len(got), t)
	for i := range want {
		expectString(want[i], got[i], t)
	}
}

func TestLeavesInRespectsBounds(t *testing.T) {
	r := FromText("a\nb\nc\nd")
	leaves := leavesIn(r.root, 2, 5)
	var got []string
	for _, le := range leaves {
		got = append(got, le.leaf.content.String())
	}
	want := []string{"b\n", "c\n"}
	expectInt(len(want), len(got), t)
	for i := range want {
		expectString(want[i], got[i], t)
	}
}

func TestParentOfLeafAndChildrenOfLeaf(t *testing.T) {
	r := FromText("A\n\tB\n\tC\nD")
	parent, _, ok := parentOfLeaf(r.root, 2) // offset of B
	expectBool(true, ok, t)
	expectString("A\n", parent.content.String(), t)
	expectInt(0, int(parent.indentation), t) // A

	children := childrenOfLeaf(r.root, 0) // A's children
	expectInt(2, len(children), t)
	expectString("B\n", children[0].leaf.content.String(), t)
	expectString("C\n", children[1].leaf.content.String(), t)
}

func TestParentOfLeafAtZeroIndentationHasNone(t *testing.T) {
	r := FromText("A\nB\nC")
	_, _, ok := parentOfLeaf(r.root, 2)
	expectBool(false, ok, t)
}
