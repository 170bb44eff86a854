package buffer

import (
	"log"
	"os"

	"outlineed/config"
	"outlineed/outline"
)

// Buffer is the multi-document table: every outline file the editor
// has open, keyed by path, each an independent *outline.Rope (§5 of
// spec.md — a Rope is not safe for concurrent use, so callers must not
// share one across goroutines even though the table itself may hold
// many).
type Buffer struct {
	Open map[string]*outline.Rope

	log *log.Logger
}

func NewBuffer(log *log.Logger) *Buffer {
	return &Buffer{
		Open: make(map[string]*outline.Rope),
		log:  log,
	}
}

// OpenFile reads path from disk, parses it into a rope, and adds it to
// the table under its path.
func (b *Buffer) OpenFile(file string) error {
	rope, err := Read(file)
	if err != nil {
		return err
	}

	b.Open[file] = rope
	b.log.Printf("Opened %v: %v visible code units", file, rope.Length())
	return nil
}

// Save re-materializes path's rope back into tab-indented text and
// writes it to disk, overwriting whatever is there.
func (b *Buffer) Save(file string) error {
	rope, ok := b.Open[file]
	if !ok {
		return os.ErrNotExist
	}
	if err := Write(file, rope.FileString()); err != nil {
		return err
	}
	b.log.Printf("Wrote %v: %v visible code units", file, rope.Length())
	return nil
}

// Close drops path from the open-document table without writing
// anything back.
func (b *Buffer) Close(file string) {
	delete(b.Open, file)
}

// Read parses path's contents into a fresh rope. Unlike the teacher's
// io.Copy-into-a-Writer streaming read, the whole file is read up front
// because FromText's middle-out balanced construction (spec.md §4.8)
// needs every paragraph boundary before it can build a tree. Text is
// NFC-normalized first so that rope offsets are stable regardless of
// whether the file on disk stored accented characters in composed or
// decomposed form.
func Read(path string) (*outline.Rope, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return outline.FromText(config.NormalizeForOutline(string(contents))), nil
}

// Write truncates path and writes contents to it.
func Write(path string, contents string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(contents)
	return err
}
