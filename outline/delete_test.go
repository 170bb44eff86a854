package outline

import "testing"

func TestDeleteWithinOneLeaf(t *testing.T) {
	r := FromText("Hello World")
	if err := r.Delete(5, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectString("HelloWorld", r.VisibleString(), t)
}

func TestDeleteParagraphRepairSplice(t *testing.T) {
	// Scenario 6: "a\nc\nd\nf", delete(3, 1) removes the '\n' between c and d.
	r := FromText("a\nc\nd\nf")
	if err := r.Delete(3, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectString("a\ncd\nf", r.VisibleString(), t)
}

func TestDeleteParagraphRepairKeepsTargetsOwnCollapsed(t *testing.T) {
	// "A\n\tP\nB\n\tQ\nC": collapse P into A and Q into B, so both the
	// repair target (A) and the leaf merged into it (B) carry their own
	// collapsed subtree.
	r := FromText("A\n\tP\nB\n\tQ\nC")
	if err := r.Collapse(0, 0); err != nil {
		t.Fatalf("unexpected error collapsing P: %v", err)
	}
	if err := r.Collapse(2, 0); err != nil {
		t.Fatalf("unexpected error collapsing Q: %v", err)
	}
	expectString("A\nB\nC", r.VisibleString(), t)

	// Delete A's own trailing newline, merging B into A. A already owns
	// a collapsed subtree (P); the policy keeps the surviving leaf's own
	// subtree and discards whatever the merged-in leaf (B) carried (Q).
	if err := r.Delete(1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectString("AB\nC", r.VisibleString(), t)

	var foldedStarts []int
	r.EachParagraph(func(start, _ int, _ uint32, folded bool) bool {
		if folded {
			foldedStarts = append(foldedStarts, start)
		}
		return true
	})
	expectInt(1, len(foldedStarts), t)
	expectInt(0, foldedStarts[0], t)

	if err := r.Expand(0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectString("AB\nP\nC", r.VisibleString(), t)
}

func TestDeleteParagraphRepairTransfersCollapsedWhenTargetHasNone(t *testing.T) {
	// "A\nB\n\tQ\nC": collapse Q into B, so only the leaf being merged in
	// (B) carries a collapsed subtree; the repair target (A) has none.
	r := FromText("A\nB\n\tQ\nC")
	if err := r.Collapse(2, 0); err != nil {
		t.Fatalf("unexpected error collapsing Q: %v", err)
	}
	expectString("A\nB\nC", r.VisibleString(), t)

	// Delete A's own trailing newline, merging B into A. A has no
	// collapsed subtree of its own, so B's (Q) transfers onto the
	// merged leaf instead of being dropped.
	if err := r.Delete(1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectString("AB\nC", r.VisibleString(), t)

	var foldedStarts []int
	r.EachParagraph(func(start, _ int, _ uint32, folded bool) bool {
		if folded {
			foldedStarts = append(foldedStarts, start)
		}
		return true
	})
	expectInt(1, len(foldedStarts), t)
	expectInt(0, foldedStarts[0], t)

	if err := r.Expand(0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectString("AB\nQ\nC", r.VisibleString(), t)
}

func TestDeleteWholeLeaf(t *testing.T) {
	r := FromText("a\nb\nc")
	if err := r.Delete(2, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectString("a\nc", r.VisibleString(), t)
}

func TestDeleteSpanningManyLeaves(t *testing.T) {
	r := FromText("a\nb\nc\nd\ne")
	// removes "b\nc\nd\n" (the whole b, c and d paragraphs), leaving "a" and "e"
	if err := r.Delete(2, 6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectString("a\ne", r.VisibleString(), t)
}

func TestDeleteEverythingButSentinelLeavesEmptyDoc(t *testing.T) {
	r := FromText("abc")
	if err := r.Delete(0, r.Length()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectInt(0, r.Length(), t)
	expectString("", r.VisibleString(), t)
}

func TestDeleteInvalidRange(t *testing.T) {
	r := FromText("abc")
	expectErr(ErrInvalidDeleteRange, r.Delete(-1, 1), t)
	expectErr(ErrInvalidDeleteRange, r.Delete(0, -1), t)
	expectErr(ErrInvalidDeleteRange, r.Delete(1, r.Length()), t)
}

func TestDeleteZeroLengthIsNoop(t *testing.T) {
	r := FromText("abc")
	before := r.VisibleString()
	if err := r.Delete(1, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectString(before, r.VisibleString(), t)
}
