package diag

import (
	"testing"

	"fern/internal/source"
)

func mkDiag(code Code, sev Severity, start, end uint32) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  code.Title(),
		Primary:  source.Span{File: 0, Start: start, End: end},
	}
}

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(mkDiag(LexUnexpectedChar, SevError, 0, 1)) {
		t.Fatal("first Add should succeed")
	}
	if !bag.Add(mkDiag(LexUnexpectedChar, SevError, 1, 2)) {
		t.Fatal("second Add should succeed")
	}
	if bag.Add(mkDiag(LexUnexpectedChar, SevError, 2, 3)) {
		t.Fatal("third Add should be rejected at the limit")
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(10)
	if bag.HasErrors() {
		t.Error("empty bag should not report errors")
	}
	bag.Add(mkDiag(LexInfo, SevInfo, 0, 0))
	if bag.HasErrors() || bag.HasWarnings() {
		t.Error("info-only bag should not report errors or warnings")
	}
	bag.Add(mkDiag(LexUnterminatedString, SevError, 3, 7))
	if !bag.HasErrors() {
		t.Error("bag with an error should report it")
	}
}

func TestBagSort(t *testing.T) {
	bag := NewBag(10)
	bag.Add(mkDiag(LexUnexpectedChar, SevError, 9, 10))
	bag.Add(mkDiag(LexInvalidEscape, SevError, 2, 3))
	bag.Sort()

	items := bag.Items()
	if items[0].Primary.Start != 2 || items[1].Primary.Start != 9 {
		t.Errorf("Sort order wrong: %v", items)
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(10)
	bag.Add(mkDiag(LexUnexpectedChar, SevError, 4, 5))
	bag.Add(mkDiag(LexUnexpectedChar, SevError, 4, 5))
	bag.Add(mkDiag(LexUnexpectedChar, SevError, 5, 6))
	bag.Dedup()
	if bag.Len() != 2 {
		t.Fatalf("Dedup left %d items, want 2", bag.Len())
	}
}

func TestBagMerge(t *testing.T) {
	a := NewBag(1)
	a.Add(mkDiag(LexUnexpectedChar, SevError, 0, 1))
	b := NewBag(2)
	b.Add(mkDiag(LexInvalidEscape, SevError, 2, 3))
	b.Add(mkDiag(LexInfo, SevInfo, 4, 5))

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("merged Len = %d, want 3", a.Len())
	}
	if a.Cap() < 3 {
		t.Errorf("Cap = %d, should grow to fit merged items", a.Cap())
	}
}

func TestCodeID(t *testing.T) {
	if got := LexUnexpectedChar.ID(); got != "LEX1001" {
		t.Errorf("ID = %q, want LEX1001", got)
	}
	if got := IOLoadFileError.ID(); got != "IO4001" {
		t.Errorf("ID = %q, want IO4001", got)
	}
	if got := UnknownCode.ID(); got != "E0000" {
		t.Errorf("ID = %q, want E0000", got)
	}
}

func TestBagReporter(t *testing.T) {
	bag := NewBag(5)
	r := BagReporter{Bag: bag}
	r.Report(LexUnterminatedString, SevError, source.Span{Start: 1, End: 2}, "unterminated string literal", nil)
	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	if bag.Items()[0].Code != LexUnterminatedString {
		t.Errorf("Code = %v", bag.Items()[0].Code)
	}
}
