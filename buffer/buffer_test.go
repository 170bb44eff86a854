package buffer

import (
	"log"
	"os"
	"path/filepath"
	"testing"
)

func expectString(a, b string, t *testing.T) {
	if a != b {
		t.Fatalf("expected '%v', got '%v'", a, b)
	}
}

func testLogger() *log.Logger {
	return log.New(os.Stderr, "", 0)
}

func TestOpenFileParsesAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("A\n\tB\n\tC\nD"), 0666); err != nil {
		t.Fatalf("unexpected error writing fixture: %v", err)
	}

	b := NewBuffer(testLogger())
	if err := b.OpenFile(path); err != nil {
		t.Fatalf("unexpected error opening file: %v", err)
	}

	rope, ok := b.Open[path]
	if !ok {
		t.Fatalf("expected %v to be open", path)
	}
	expectString("A\n\tB\n\tC\nD", rope.FileString(), t)

	if err := rope.Insert("E\n", rope.Length()); err != nil {
		t.Fatalf("unexpected error inserting: %v", err)
	}
	if err := b.Save(path); err != nil {
		t.Fatalf("unexpected error saving: %v", err)
	}

	saved, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error reading back: %v", err)
	}
	expectString("A\n\tB\n\tC\nDE\n", string(saved), t)
}

func TestSaveUnknownFileErrors(t *testing.T) {
	b := NewBuffer(testLogger())
	if err := b.Save("/nonexistent/path"); err == nil {
		t.Fatalf("expected an error saving an unopened file")
	}
}

func TestClosePurgesFromTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("hello"), 0666); err != nil {
		t.Fatalf("unexpected error writing fixture: %v", err)
	}

	b := NewBuffer(testLogger())
	if err := b.OpenFile(path); err != nil {
		t.Fatalf("unexpected error opening file: %v", err)
	}
	b.Close(path)
	if _, ok := b.Open[path]; ok {
		t.Fatalf("expected %v to be closed", path)
	}
}

func TestReadNormalizesDecomposedAccents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")

	// "e" followed by a combining acute accent (U+0301), as a naive
	// clipboard or a different OS might store it on disk.
	decomposed := "école"
	if err := os.WriteFile(path, []byte(decomposed), 0666); err != nil {
		t.Fatalf("unexpected error writing fixture: %v", err)
	}

	rope, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error reading: %v", err)
	}
	expectString("école", rope.VisibleString(), t)
}

func TestReadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")

	if err := Write(path, "Line 1\n\tLine 2\nLine 3"); err != nil {
		t.Fatalf("unexpected error writing: %v", err)
	}
	rope, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error reading: %v", err)
	}
	expectString("Line 1\n\tLine 2\nLine 3", rope.FileString(), t)
}
