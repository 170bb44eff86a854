package outline

import "unicode/utf16"

// codeunits is a paragraph's content addressed in 16-bit UTF-16 code
// units, the unit spec.md mandates for every offset and length in this
// package. It plays the role the teacher's StringLeaf played for []rune:
// a thin slice wrapper that permits O(1) re-slicing at unit boundaries,
// sharing the backing array with its parent instead of copying.
type codeunits []uint16

func fromString(s string) codeunits {
	return utf16.Encode([]rune(s))
}

func (c codeunits) String() string {
	return string(utf16.Decode(c))
}

func (c codeunits) len() int {
	return len(c)
}

// slice returns c[lo:hi], sharing the backing array.
func (c codeunits) slice(lo, hi int) codeunits {
	return c[lo:hi]
}

// indexNewline returns the offset of the sole '\n' in c, or -1.
func (c codeunits) indexNewline() int {
	for i, u := range c {
		if u == '\n' {
			return i
		}
	}
	return -1
}

// concatUnits returns a fresh codeunits holding a followed by b.
func concatUnits(a, b codeunits) codeunits {
	out := make(codeunits, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// splitParagraphs splits s on '\n', keeping the separator attached to
// each paragraph except a possible trailing unterminated remainder. It
// returns the paragraphs in order and a flag reporting whether the last
// element is a partial (non-newline-terminated) paragraph.
func splitParagraphs(s string) (paragraphs []codeunits, hasPartial bool) {
	units := fromString(s)
	start := 0
	for i, u := range units {
		if u == '\n' {
			paragraphs = append(paragraphs, units[start:i+1])
			start = i + 1
		}
	}
	if start < len(units) {
		paragraphs = append(paragraphs, units[start:])
		hasPartial = true
	}
	return paragraphs, hasPartial
}
