package lexer

import (
	"testing"

	"fern/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.fn", []byte(content))
	return fs.Get(id)
}

func TestSequentialReading(t *testing.T) {
	file := createFile("a\nb")
	cursor := NewCursor(file)

	if cursor.EOF() {
		t.Error("Expected not EOF at start")
	}
	if cursor.Peek() != 'a' {
		t.Errorf("Expected peek 'a', got %c", cursor.Peek())
	}
	if b := cursor.Bump(); b != 'a' {
		t.Errorf("Expected bump 'a', got %c", b)
	}

	if cursor.Peek() != '\n' {
		t.Errorf("Expected peek '\\n', got %c", cursor.Peek())
	}
	if b := cursor.Bump(); b != '\n' {
		t.Errorf("Expected bump '\\n', got %c", b)
	}

	if b := cursor.Bump(); b != 'b' {
		t.Errorf("Expected bump 'b', got %c", b)
	}

	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 {
		t.Errorf("Expected peek 0 at EOF, got %c", cursor.Peek())
	}
	if b := cursor.Bump(); b != 0 {
		t.Errorf("Expected bump 0 at EOF, got %c", b)
	}
}

func TestLineColTracking(t *testing.T) {
	file := createFile("ab\ncd")
	cursor := NewCursor(file)

	if cursor.Line != 1 || cursor.Col != 1 {
		t.Fatalf("start at %d:%d, want 1:1", cursor.Line, cursor.Col)
	}

	cursor.Bump() // a
	if cursor.Line != 1 || cursor.Col != 2 {
		t.Errorf("after 'a' at %d:%d, want 1:2", cursor.Line, cursor.Col)
	}

	cursor.Bump() // b
	cursor.Bump() // \n resets the column
	if cursor.Line != 2 || cursor.Col != 1 {
		t.Errorf("after newline at %d:%d, want 2:1", cursor.Line, cursor.Col)
	}

	cursor.Bump() // c
	if cursor.Line != 2 || cursor.Col != 2 {
		t.Errorf("after 'c' at %d:%d, want 2:2", cursor.Line, cursor.Col)
	}
}

func TestBareCarriageReturnKeepsLine(t *testing.T) {
	file := createFile("a\rb")
	cursor := NewCursor(file)

	cursor.Bump() // a
	cursor.Bump() // \r counts as a plain column
	if cursor.Line != 1 || cursor.Col != 3 {
		t.Errorf("after \\r at %d:%d, want 1:3", cursor.Line, cursor.Col)
	}
}

func TestPeek2(t *testing.T) {
	file := createFile("abc")
	cursor := NewCursor(file)

	b0, b1, ok := cursor.Peek2()
	if !ok {
		t.Error("Expected Peek2 to succeed at start")
	}
	if b0 != 'a' || b1 != 'b' {
		t.Errorf("Expected Peek2('a', 'b'), got ('%c', '%c')", b0, b1)
	}

	cursor.Bump()
	cursor.Bump()
	// Only 'c' remains; Peek2 needs two bytes.
	if _, _, ok := cursor.Peek2(); ok {
		t.Error("Expected Peek2 to fail with one byte left")
	}
}

func TestMarkAndSpanFrom(t *testing.T) {
	file := createFile("hello")
	cursor := NewCursor(file)

	cursor.Bump()
	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()

	sp := cursor.SpanFrom(m)
	if sp.Start != 1 || sp.End != 3 {
		t.Errorf("SpanFrom = %v, want 1..3", sp)
	}
	if string(file.Content[sp.Start:sp.End]) != "el" {
		t.Errorf("span text = %q, want \"el\"", file.Content[sp.Start:sp.End])
	}
}

func TestCursorEmptyFile(t *testing.T) {
	file := createFile("")
	cursor := NewCursor(file)
	if !cursor.EOF() {
		t.Error("empty file should be at EOF immediately")
	}
	if cursor.Line != 1 || cursor.Col != 1 {
		t.Errorf("empty file position %d:%d, want 1:1", cursor.Line, cursor.Col)
	}
}
