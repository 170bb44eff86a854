package main

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

var (
	DefaultStyle = tcell.StyleDefault
	LightStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

var (
	baseInk      = colorful.Color{R: 0.85, G: 0.85, B: 0.85}
	mutedInk     = colorful.Color{R: 0.4, G: 0.4, B: 0.4}
	highlightInk = colorful.Color{R: 1.0, G: 0.9, B: 0.3}
)

// foldedLineStyle blends the base text color toward a muted tone for a
// paragraph that owns a collapsed (folded) subtree, so folded parents
// read as visually receded without a separate color table.
func foldedLineStyle() tcell.Style {
	blended := baseInk.BlendLab(mutedInk, 0.6)
	r, g, b := blended.RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

// cursorLineStyle blends the base text color toward a highlight tone
// for whichever paragraph currently holds the cursor.
func cursorLineStyle() tcell.Style {
	blended := baseInk.BlendLab(highlightInk, 0.35)
	r, g, b := blended.RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

func drawText(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style, text string) {
	row := y1
	col := x1
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cluster := gr.Runes()
		if col >= x2 {
			row++
			col = x1
		}
		if row > y2 {
			break
		}
		w := runewidth.StringWidth(string(cluster))
		if w == 0 {
			w = 1
		}
		s.SetContent(col, row, cluster[0], cluster[1:], style)
		col += w
	}
}

func drawBox(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style, title string) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	if x2 < x1 {
		x1, x2 = x2, x1
	}

	for col := x1; col <= x2; col++ {
		s.SetContent(col, y1, tcell.RuneHLine, nil, style)
		s.SetContent(col, y2, tcell.RuneHLine, nil, style)
	}
	for row := y1 + 1; row < y2; row++ {
		s.SetContent(x1, row, tcell.RuneVLine, nil, style)
		s.SetContent(x2, row, tcell.RuneVLine, nil, style)
	}

	if y1 != y2 && x1 != x2 {
		s.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
		s.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
		s.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
		s.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
	}

	drawText(s, x1+1, y1, x2, y1, style, title)
}
