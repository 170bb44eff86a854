package outline

// Depth returns the indentation level of the paragraph containing
// offset (§4.9).
func (r *Rope) Depth(offset int) (uint32, error) {
	if offset < 0 || offset > r.Length() {
		return 0, ErrInvalidQueryOffset
	}
	leaf, _ := leafAt(r.root, offset)
	if leaf == nil {
		return 0, ErrInvalidQueryOffset
	}
	return leaf.indentation, nil
}

// RangeOfLine returns the starting visible offset and visible length of
// the paragraph containing offset (§4.9). The paragraph's own trailing
// '\n' is excluded only when it is the document's sentinel newline.
func (r *Rope) RangeOfLine(offset int) (int, int, error) {
	if offset < 0 || offset > r.Length() {
		return 0, 0, ErrInvalidQueryOffset
	}
	leaf, start := leafAt(r.root, offset)
	if leaf == nil {
		return 0, 0, ErrInvalidQueryOffset
	}
	length := leaf.content.len()
	if start+length == storedLen(r.root) {
		length--
	}
	return start, length, nil
}
