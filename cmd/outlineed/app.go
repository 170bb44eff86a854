package main

import (
	"log"
	"os"
	"unicode/utf16"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"outlineed/buffer"
	"outlineed/commands"
	"outlineed/config"
	"outlineed/outline"
)

// Cursor is a single absolute position in a rope's visible-offset space
// (the same coordinate system Insert/Delete/Collapse/Expand operate in)
// plus a command-line entry buffer used while in command mode.
//
// This replaces the teacher's row/column Cursor: a flat screen grid
// doesn't survive variable indentation widths or folded paragraphs, so
// the cursor here is a rope offset, and screen row/column are derived
// from it at render time via Rope.EachParagraph.
type Cursor struct {
	offset int

	commandMode bool
	commandLine string
}

type Window struct {
	Width, Height int
}

func (win *Window) update(width, height int) {
	win.Width, win.Height = width, height
}

type CursorArea struct {
	minX, maxX, minY, maxY int
}

// Application is the top-level wiring: the open document, its on-disk
// path, the cursor, configuration, the command registry, and the
// tcell screen — adapted from the teacher's Application struct in
// main.go/application.go, consolidated here.
type Application struct {
	path   string
	buf    *buffer.Buffer
	cursor *Cursor
	config *config.Config
	cmds   *commands.Commands

	BufferArea CursorArea
	window     *Window
	screen     tcell.Screen

	log *log.Logger
}

func (app *Application) rope() *outline.Rope {
	return app.buf.Open[app.path]
}

func (app *Application) handleInput(s tcell.Screen, ev tcell.Event) {
	window := app.window

	switch ev := ev.(type) {
	case *tcell.EventResize:
		window.update(ev.Size())
		s.Sync()
	case *tcell.EventKey:
		if app.cursor.commandMode {
			app.handleCommandModeKey(ev)
			return
		}
		app.handleNormalKey(s, ev)
	case *tcell.EventMouse:
		if ev.Buttons() == tcell.Button1 {
			x, y := ev.Position()
			app.cursor.offset = app.offsetAt(x-app.BufferArea.minX, y-app.BufferArea.minY)
		}
	}
}

func (app *Application) handleNormalKey(s tcell.Screen, ev *tcell.EventKey) {
	r := app.rope()
	cursor := app.cursor

	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
		app.quit(s)
	case ev.Key() == tcell.KeyCtrlS:
		if err := app.buf.Save(app.path); err != nil {
			app.log.Printf("Save failed: %v", err)
		}
	case ev.Key() == tcell.KeyRune && ev.Rune() == ':':
		cursor.commandMode = true
		cursor.commandLine = ""
	case ev.Key() == tcell.KeyUp:
		cursor.offset = app.moveVertical(-1)
	case ev.Key() == tcell.KeyDown:
		cursor.offset = app.moveVertical(1)
	case ev.Key() == tcell.KeyLeft:
		cursor.offset = app.stepGrapheme(-1)
	case ev.Key() == tcell.KeyRight:
		cursor.offset = app.stepGrapheme(1)
	case ev.Key() == tcell.KeyCtrlL:
		s.Sync()
	case ev.Key() == tcell.KeyTab:
		app.indentCurrentLine(1)
	case ev.Key() == tcell.KeyBacktab:
		app.indentCurrentLine(-1)
	case ev.Key() == tcell.KeyCtrlK:
		app.foldCurrentLine()
	case ev.Key() == tcell.KeyCtrlJ:
		app.unfoldCurrentLine()
	case ev.Key() == tcell.KeyRune:
		if err := r.Insert(string(ev.Rune()), cursor.offset); err != nil {
			app.log.Printf("Insert failed: %v", err)
			return
		}
		cursor.offset++
	case ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2:
		if cursor.offset == 0 {
			return
		}
		if err := r.Delete(cursor.offset-1, 1); err != nil {
			app.log.Printf("Delete failed: %v", err)
			return
		}
		cursor.offset--
	case ev.Key() == tcell.KeyEnter:
		if err := r.Insert("\n", cursor.offset); err != nil {
			app.log.Printf("Insert failed: %v", err)
			return
		}
		cursor.offset++
	}
}

func (app *Application) handleCommandModeKey(ev *tcell.EventKey) {
	cursor := app.cursor
	switch ev.Key() {
	case tcell.KeyEnter:
		app.cmds.Exec(cursor.commandLine)
		cursor.commandMode = false
		cursor.commandLine = ""
	case tcell.KeyEscape:
		cursor.commandMode = false
		cursor.commandLine = ""
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(cursor.commandLine) > 0 {
			cursor.commandLine = cursor.commandLine[:len(cursor.commandLine)-1]
		}
	case tcell.KeyRune:
		cursor.commandLine += string(ev.Rune())
	}
}

// currentLine returns the start offset and length of the paragraph
// containing the cursor.
func (app *Application) currentLine() (int, int) {
	start, length, err := app.rope().RangeOfLine(app.cursor.offset)
	if err != nil {
		return 0, 0
	}
	return start, length
}

func (app *Application) indentCurrentLine(delta int) {
	start, length := app.currentLine()
	if err := app.rope().Indent(delta, start, length); err != nil {
		app.log.Printf("Indent failed: %v", err)
	}
}

func (app *Application) foldCurrentLine() {
	start, length := app.currentLine()
	if err := app.rope().Collapse(start, length); err != nil {
		app.log.Printf("Collapse failed: %v", err)
	}
}

func (app *Application) unfoldCurrentLine() {
	start, length := app.currentLine()
	if err := app.rope().Expand(start, length); err != nil {
		app.log.Printf("Expand failed: %v", err)
	}
}

// moveVertical returns the offset directly above/below the cursor's
// current column, clamped to the target line's own length, by walking
// every paragraph to find the current and target lines.
func (app *Application) moveVertical(delta int) int {
	r := app.rope()
	type line struct{ start, length int }
	var lines []line
	r.EachParagraph(func(start, length int, _ uint32, _ bool) bool {
		lines = append(lines, line{start, length})
		return true
	})

	cur := app.cursor.offset
	idx, col := 0, 0
	for i, l := range lines {
		if cur >= l.start && cur <= l.start+l.length {
			idx, col = i, cur-l.start
			break
		}
	}

	target := idx + delta
	if target < 0 || target >= len(lines) {
		return cur
	}
	if col > lines[target].length {
		col = lines[target].length
	}
	return lines[target].start + col
}

// stepGrapheme moves the cursor one grapheme cluster left (dir<0) or
// right (dir>0) within the document's visible text. Arrow-key movement
// by a single UTF-16 code unit would split combining-mark sequences and
// land mid-surrogate-pair; uniseg clusters the visible text into
// grapheme boundaries first, and each cluster's width is measured back
// in UTF-16 code units to stay in the offset space Insert/Delete use.
func (app *Application) stepGrapheme(dir int) int {
	visible := app.rope().VisibleString()
	cur := app.cursor.offset

	type segment struct{ start, width int }
	var segs []segment
	pos := 0
	gr := uniseg.NewGraphemes(visible)
	for gr.Next() {
		width := len(utf16.Encode(gr.Runes()))
		segs = append(segs, segment{pos, width})
		pos += width
	}

	idx := len(segs)
	for i, seg := range segs {
		if cur >= seg.start && cur < seg.start+seg.width {
			idx = i
			break
		}
	}

	target := idx + dir
	if target < 0 {
		return 0
	}
	if target >= len(segs) {
		return pos
	}
	return segs[target].start
}

// offsetAt maps a screen column/row within the buffer pane to a rope
// offset, for mouse click placement.
func (app *Application) offsetAt(col, row int) int {
	r := app.rope()
	var target int
	n := 0
	r.EachParagraph(func(start, length int, _ uint32, _ bool) bool {
		if n == row {
			target = start + min(col, length)
			return false
		}
		n++
		return true
	})
	return target
}

func (app *Application) clampCursor() {
	r := app.rope()
	if app.cursor.offset < 0 {
		app.cursor.offset = 0
	}
	if app.cursor.offset > r.Length() {
		app.cursor.offset = r.Length()
	}
}

func (app *Application) quit(s tcell.Screen) {
	maybePanic := recover()
	s.Fini()

	if err := app.buf.Save(app.path); err != nil {
		app.log.Printf("Error saving %v on exit: %v", app.path, err)
	} else {
		app.log.Printf("Saved %v on exit", app.path)
	}

	if maybePanic != nil {
		panic(maybePanic)
	} else {
		os.Exit(0)
	}
}
