package outline

import "testing"

func TestCollapseDirectParent(t *testing.T) {
	// Scenario 1.
	r := FromText("A\n\tB\n\tC\nD")
	if err := r.Collapse(0, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectString("A\nD", r.VisibleString(), t)
}

func TestCollapseDeeplyNestedChildren(t *testing.T) {
	// Scenario 2.
	r := FromText("A\n\tB\n\t\tC\n\tD\nE")
	if err := r.Collapse(0, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectString("A\nE", r.VisibleString(), t)
}

func TestCollapseClimbsFromChildToParent(t *testing.T) {
	// Scenario 3.
	r := FromText("A\n\tB\n\tC\nD")
	if err := r.Collapse(2, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectString("A\nD", r.VisibleString(), t)
}

func TestCollapseNoChildrenFails(t *testing.T) {
	// Scenario 4.
	r := FromText("A\nB\nC")
	before := r.VisibleString()
	expectErr(ErrCannotCollapse, r.Collapse(0, 1), t)
	expectString(before, r.VisibleString(), t)
}

func TestCollapseEmptyDocumentFails(t *testing.T) {
	// Scenario 9.
	r := FromText("")
	expectErr(ErrCannotCollapse, r.Collapse(0, 0), t)
}

func TestCollapseThenExpandRestoresVisibleString(t *testing.T) {
	r := FromText("A\n\tB\n\tC\nD")
	original := r.VisibleString()
	originalFile := r.FileString()

	if err := r.Collapse(0, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectString("A\nD", r.VisibleString(), t)

	if err := r.Expand(0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectString(original, r.VisibleString(), t)
	expectString(originalFile, r.FileString(), t)
}

func TestCollapseIsPortableUnderParentIndentChange(t *testing.T) {
	r := FromText("A\n\tB\n\tC\nD")
	if err := r.Collapse(0, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Indent the now-collapsed parent; relative storage means expand
	// still reproduces B/C at one level deeper than before.
	if err := r.Indent(1, 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Expand(0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectString("A\nB\nC\nD", r.VisibleString(), t)
	d, err := r.Depth(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectInt(2, int(d), t)
}

func TestExpandWithNoCollapsedFails(t *testing.T) {
	r := FromText("A\nB\nC")
	expectErr(ErrCannotExpand, r.Expand(0, 1), t)
}
