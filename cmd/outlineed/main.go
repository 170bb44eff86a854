package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"outlineed/buffer"
	"outlineed/commands"
	"outlineed/config"
	"outlineed/internal/stats"
	"outlineed/layout"
	"outlineed/outline"
)

func emptyRope() *outline.Rope {
	return outline.New()
}

func NewLogger() *log.Logger {
	file, err := os.OpenFile("outlineed.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatal(err)
	}
	multi := io.MultiWriter(file)
	return log.New(multi, "", log.LstdFlags|log.Lshortfile)
}

func registerCommands(app *Application) {
	app.cmds.Register("insert", func(args []string) error {
		if len(args) == 0 {
			return nil
		}
		return app.rope().Insert(args[0], app.cursor.offset)
	})
	app.cmds.Register("indent", func(args []string) error {
		start, length := app.currentLine()
		return app.rope().Indent(1, start, length)
	})
	app.cmds.Register("outdent", func(args []string) error {
		start, length := app.currentLine()
		return app.rope().Indent(-1, start, length)
	})
	app.cmds.Register("collapse", func(args []string) error {
		start, length := app.currentLine()
		return app.rope().Collapse(start, length)
	})
	app.cmds.Register("expand", func(args []string) error {
		start, length := app.currentLine()
		return app.rope().Expand(start, length)
	})
	app.cmds.Register("delete", func(args []string) error {
		return app.rope().Delete(app.cursor.offset, 1)
	})
	app.cmds.Register("depth", func(args []string) error {
		depth, err := app.rope().Depth(app.cursor.offset)
		if err != nil {
			return err
		}
		app.log.Printf("depth at offset %v: %v", app.cursor.offset, depth)
		return nil
	})
	app.cmds.Register("stats", func(args []string) error {
		summary := stats.Of(app.rope())
		app.log.Printf("%v: %v paragraphs, mean width %.1f, max height %v",
			app.path, summary.Paragraphs, summary.MeanLeafWidth, summary.MaxHeight)
		return nil
	})
	app.cmds.Register("save", func(args []string) error {
		return app.buf.Save(app.path)
	})
	app.cmds.Register("open", func(args []string) error {
		if len(args) == 0 {
			return nil
		}
		if err := app.buf.OpenFile(args[0]); err != nil {
			return err
		}
		app.path = args[0]
		app.cursor.offset = 0
		return nil
	})
}

func main() {
	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if err := s.Init(); err != nil {
		log.Fatalf("%+v", err)
	}
	s.SetStyle(DefaultStyle)
	s.EnableMouse()
	s.EnablePaste()
	s.Clear()

	width, height := s.Size()
	window := &Window{Width: width, Height: height}
	logger := NewLogger()

	cfg := config.NewConfig(logger)
	cfg.Init()
	defer cfg.Cleanup()

	buf := buffer.NewBuffer(logger)
	cmds := commands.NewCommands(logger)

	app := &Application{
		cursor:     &Cursor{},
		config:     cfg,
		buf:        buf,
		cmds:       cmds,
		window:     window,
		BufferArea: CursorArea{0, window.Width - 1, 0, window.Height - 1},
		screen:     s,
		log:        logger,
	}
	registerCommands(app)

	flag.Parse()
	file := flag.Arg(0)

	if file == "" {
		file = "untitled.outline"
		buf.Open[file] = emptyRope()
		logger.Print("Started program without any files. Created a new document.")
	} else {
		if err := buf.OpenFile(file); err != nil {
			logger.Fatalf("%+v", err)
		}
		logger.Printf("Opened %v", file)
	}
	app.path = file

	defer app.quit(s)

	ui := layout.Column(
		layout.FlexItemBox(layout.EmptyBox, layout.Max(layout.Rel(1)), layout.Row(
			layout.FlexItemBox(app.lineNumberBox, layout.Exact(layout.Dynamic(app.gutterWidth)), nil),
			layout.FlexItemBox(app.bufferBox, layout.Max(layout.Rel(1)), nil),
		)),
		layout.FlexItemBox(app.statusLineBox, layout.Exact(layout.Abs(3)), nil),
	)

	for {
		window.update(s.Size())
		s.Clear()
		ui.StartLayouting(window.Width, window.Height)
		s.Show()

		ev := s.PollEvent()
		app.handleInput(s, ev)
	}
}
