package main

import (
	"fmt"
	"strconv"
	"unicode/utf16"

	"outlineed/internal/stats"
	"outlineed/layout"
)

// gutterWidth sizes the line-number column to the current document's
// own line count (plus one column of padding), so the gutter widens as
// a document grows past 9, 99, 999 lines instead of carrying a fixed
// constant regardless of content.
func (app *Application) gutterWidth() int {
	if !app.config.EditorConfig.ShowLineNumbers {
		return 1
	}
	n := stats.Of(app.rope()).Paragraphs
	return len(strconv.Itoa(n)) + 1
}

// lineNumberBox draws the gutter: one 0-based row number per visible
// paragraph, with the cursor's row highlighted, or a blank column when
// ShowLineNumbers is off.
func (app *Application) lineNumberBox(dims layout.Dimensions) {
	s := app.screen
	xmin, ymin, xmax, ymax := dims.Origin.X, dims.Origin.Y, dims.Origin.X+dims.Width, dims.Origin.Y+dims.Height
	for i := ymin; i < ymax; i++ {
		drawText(s, xmin, i, xmax, i, DefaultStyle, " ")
	}

	if !app.config.EditorConfig.ShowLineNumbers {
		return
	}

	pad := xmax - xmin
	cursorRow := app.cursorRow()

	row := ymin
	app.rope().EachParagraph(func(_, _ int, _ uint32, _ bool) bool {
		if row >= ymax {
			return false
		}
		style := DefaultStyle
		if row-ymin == cursorRow {
			style = cursorLineStyle()
		}
		drawText(s, xmin, row, xmax, row, style, fmt.Sprintf("%*v", pad, row-ymin))
		row++
		return true
	})
}

// bufferBox renders every visible paragraph, applying the configured
// tab width as on-screen indentation, a muted style for folded
// parents, and a highlight style for the cursor's own line.
func (app *Application) bufferBox(dims layout.Dimensions) {
	s := app.screen
	xmin, ymin, xmax, ymax := dims.Origin.X, dims.Origin.Y, dims.Origin.X+dims.Width, dims.Origin.Y+dims.Height

	r := app.rope()
	tabWidth := app.config.EditorConfig.TabWidth
	marker := app.config.EditorConfig.CollapsedMarker
	cursorRow := app.cursorRow()

	row := ymin
	text := r.VisibleString()
	lineStarts := app.lineStarts()
	for i := 0; i < len(lineStarts) && row < ymax; i++ {
		start := lineStarts[i].start
		end := start + lineStarts[i].length
		line := sliceVisible(text, start, end)

		indentCols := lineStarts[i].indentation * uint32(tabWidth)
		style := DefaultStyle
		if lineStarts[i].folded {
			style = foldedLineStyle()
			line += " " + marker
		}
		if row-ymin == cursorRow {
			style = cursorLineStyle()
		}

		drawText(s, xmin+int(indentCols), row, xmax, row, style, line)
		row++
	}

	app.BufferArea = CursorArea{xmin, xmax, ymin, ymax}
	app.clampCursor()
}

func (app *Application) statusLineBox(dims layout.Dimensions) {
	s := app.screen
	xmin, ymin, xmax, ymax := dims.Origin.X, dims.Origin.Y, dims.Origin.X+dims.Width, dims.Origin.Y+dims.Height

	if app.cursor.commandMode {
		drawBox(s, xmin, ymin, xmax-1, ymax-1, DefaultStyle, ":"+app.cursor.commandLine)
		return
	}

	summary := stats.Of(app.rope())
	title := fmt.Sprintf("%v — %v paragraphs, height %v", app.path, summary.Paragraphs, summary.MaxHeight)
	drawBox(s, xmin, ymin, xmax-1, ymax-1, DefaultStyle, title)
}

// lineMeta is the per-paragraph render metadata bufferBox needs: its
// stored offset span, its indentation, and whether it owns a folded
// subtree.
type lineMeta struct {
	start, length int
	indentation   uint32
	folded        bool
}

func (app *Application) lineStarts() []lineMeta {
	var out []lineMeta
	app.rope().EachParagraph(func(start, length int, indentation uint32, folded bool) bool {
		out = append(out, lineMeta{start, length, indentation, folded})
		return true
	})
	return out
}

// cursorRow returns which rendered row (0-based) the cursor currently
// sits on.
func (app *Application) cursorRow() int {
	cur := app.cursor.offset
	row := 0
	found := -1
	app.rope().EachParagraph(func(start, length int, _ uint32, _ bool) bool {
		if cur >= start && cur <= start+length {
			found = row
			return false
		}
		row++
		return true
	})
	if found < 0 {
		return row
	}
	return found
}

// sliceVisible returns the [start,end) UTF-16 code-unit slice of text
// as a Go string, converting offsets through unicode/utf16 since text
// is addressed in UTF-16 units throughout outline but stored as a Go
// (UTF-8) string once materialized by VisibleString.
func sliceVisible(text string, start, end int) string {
	units := utf16.Encode([]rune(text))
	if end > len(units) {
		end = len(units)
	}
	if start > end {
		start = end
	}
	return string(utf16.Decode(units[start:end]))
}
