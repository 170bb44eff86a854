package outline

// Indent adjusts the indentation of every leaf touched by
// [location, location+length] by delta, clamping at 0 (§4.5). It is a
// pure metadata change: no leaf content or tree structure is touched.
func (r *Rope) Indent(delta, location, length int) error {
	if location < 0 || length < 0 || location+length > r.Length() {
		return ErrInvalidRange
	}
	s, e := location, location+length
	visit(r.root, &s, &e, forward, func(leaf *node, _ int) bool {
		nv := int(leaf.indentation) + delta
		if nv < 0 {
			nv = 0
		}
		leaf.indentation = uint32(nv)
		return true
	})
	return nil
}
