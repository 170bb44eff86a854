// Package stats computes balance and shape diagnostics over a rope's
// tree, surfaced by the editor's "stats" command. The rope itself
// carries no dependency on this package or on gonum; these are
// read-only, outside-in diagnostics over its exported introspection
// surface (outline.Rope.LeafWidths / InternalHeights).
package stats

import (
	"gonum.org/v1/gonum/stat"

	"outlineed/outline"
)

// Summary reports the shape of a rope's underlying tree.
type Summary struct {
	Paragraphs      int
	MeanLeafWidth   float64
	StdDevLeafWidth float64
	HeightHistogram map[int]int
	MaxHeight       int
}

// Of computes a Summary for r. It never touches a leaf's collapsed
// subtree — folded content is intentionally excluded from the
// visible-tree diagnostics, mirroring how VisibleString hides it.
func Of(r *outline.Rope) Summary {
	widths := r.LeafWidths()

	summary := Summary{
		Paragraphs:      len(widths),
		HeightHistogram: make(map[int]int),
	}
	if len(widths) > 0 {
		summary.MeanLeafWidth, summary.StdDevLeafWidth = stat.MeanStdDev(widths, nil)
	}

	for _, h := range r.InternalHeights() {
		summary.HeightHistogram[h]++
		if h > summary.MaxHeight {
			summary.MaxHeight = h
		}
	}

	return summary
}
