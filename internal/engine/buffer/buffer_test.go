package buffer

import (
	"errors"
	"strings"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}

	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
}

func TestNewBufferFromStringMultiline(t *testing.T) {
	text := "line1\nline2\nline3"
	b := NewBufferFromString(text)

	if b.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", b.LineCount())
	}

	if b.LineText(0) != "line1" {
		t.Errorf("expected line1, got %q", b.LineText(0))
	}

	if b.LineText(2) != "line3" {
		t.Errorf("expected line3, got %q", b.LineText(2))
	}

	if b.LineText(3) != "" {
		t.Errorf("expected empty text past end, got %q", b.LineText(3))
	}

	if b.Text() != text {
		t.Errorf("expected %q, got %q", text, b.Text())
	}
}

func TestNewBufferFromStringNormalizesLineEndings(t *testing.T) {
	b := NewBufferFromString("a\r\nb\rc\n")

	if b.LineCount() != 4 {
		t.Fatalf("expected 4 lines, got %d", b.LineCount())
	}
	for i, want := range []string{"a", "b", "c", ""} {
		if got := b.LineText(uint32(i)); got != want {
			t.Errorf("line %d = %q, want %q", i, got, want)
		}
	}
}

func TestNewBufferFromReader(t *testing.T) {
	b, err := NewBufferFromReader(strings.NewReader("one\ntwo"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", b.LineCount())
	}
}

func TestLineLenCountsRunes(t *testing.T) {
	b := NewBufferFromString("héllo")
	if b.LineLen(0) != 5 {
		t.Errorf("expected 5 characters, got %d", b.LineLen(0))
	}
}

func TestClampPoint(t *testing.T) {
	b := NewBufferFromString("abc\n\nxy")

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"inside", Point{0, 1}, Point{0, 1}},
		{"past line end", Point{0, 10}, Point{0, 2}},
		{"empty line", Point{1, 3}, Point{1, 0}},
		{"past last line", Point{9, 9}, Point{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.ClampPoint(tt.in); got != tt.want {
				t.Errorf("ClampPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTextRange(t *testing.T) {
	b := NewBufferFromString("the cat sat\non the mat")

	tests := []struct {
		name string
		r    Range
		want string
	}{
		{"single line", NewRange(Point{0, 4}, Point{0, 7}), "cat"},
		{"reversed endpoints", NewRange(Point{0, 7}, Point{0, 4}), "cat"},
		{"across lines", NewRange(Point{0, 8}, Point{1, 2}), "sat\non"},
		{"through line break", NewRange(Point{0, 8}, Point{0, 12}), "sat\n"},
		{"empty", NewRange(Point{1, 3}, Point{1, 3}), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.TextRange(tt.r)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("TextRange(%v) = %q, want %q", tt.r, got, tt.want)
			}
		})
	}
}

func TestTextRangeOutOfRange(t *testing.T) {
	b := NewBufferFromString("abc")
	_, err := b.TextRange(NewRange(Point{0, 0}, Point{3, 0}))
	if !errors.Is(err, ErrLineOutOfRange) {
		t.Errorf("expected ErrLineOutOfRange, got %v", err)
	}
}

func TestDeleteSingleLine(t *testing.T) {
	b := NewBufferFromString("the cat sat")
	rev := b.RevisionID()

	removed, err := b.Delete(NewRange(Point{0, 4}, Point{0, 8}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != "cat " {
		t.Errorf("removed %q, want %q", removed, "cat ")
	}
	if b.Text() != "the sat" {
		t.Errorf("text = %q, want %q", b.Text(), "the sat")
	}
	if b.RevisionID() == rev {
		t.Error("delete should create a new revision")
	}
}

func TestDeleteAcrossLines(t *testing.T) {
	b := NewBufferFromString("abc\ndef\nghi")

	removed, err := b.Delete(NewRange(Point{0, 1}, Point{2, 1}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != "bc\ndef\ng" {
		t.Errorf("removed %q", removed)
	}
	if b.Text() != "ahi" {
		t.Errorf("text = %q, want %q", b.Text(), "ahi")
	}
	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
}

func TestDeleteJoinsLineBreak(t *testing.T) {
	b := NewBufferFromString("abc\ndef")

	if _, err := b.Delete(NewRange(Point{0, 2}, Point{0, 4})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Text() != "abdef" {
		t.Errorf("text = %q, want %q", b.Text(), "abdef")
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		at      Point
		insert  string
		want    string
		wantEnd Point
	}{
		{"middle", "the sat", Point{0, 4}, "cat ", "the cat sat", Point{0, 8}},
		{"line start", "abc", Point{0, 0}, "x", "xabc", Point{0, 1}},
		{"clamped past end", "abc", Point{0, 9}, "d", "abcd", Point{0, 4}},
		{"split line", "abdef", Point{0, 2}, "c\n", "abc\ndef", Point{1, 0}},
		{"multi line", "ahi", Point{0, 1}, "bc\ndef\ng", "abc\ndef\nghi", Point{2, 1}},
		{"empty", "abc", Point{0, 1}, "", "abc", Point{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.text)
			end, err := b.Insert(tt.at, tt.insert)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.Text() != tt.want {
				t.Errorf("text = %q, want %q", b.Text(), tt.want)
			}
			if end != tt.wantEnd {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestInsertUndoesDelete(t *testing.T) {
	b := NewBufferFromString("abc\ndef\nghi")
	r := NewRange(Point{0, 1}, Point{2, 1})

	removed, err := b.Delete(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	end, err := b.Insert(r.Start, removed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Text() != "abc\ndef\nghi" {
		t.Errorf("text = %q", b.Text())
	}
	if end != r.End {
		t.Errorf("end = %v, want %v", end, r.End)
	}
}

func TestInsertOutOfRange(t *testing.T) {
	b := NewBufferFromString("abc")
	if _, err := b.Insert(Point{3, 0}, "x"); !errors.Is(err, ErrLineOutOfRange) {
		t.Errorf("err = %v, want ErrLineOutOfRange", err)
	}
}

func TestEndOf(t *testing.T) {
	tests := []struct {
		text string
		want Point
	}{
		{"", Point{1, 2}},
		{"héllo", Point{1, 7}},
		{"a\nbc", Point{2, 2}},
		{"a\r\n", Point{2, 0}},
	}
	for _, tt := range tests {
		if got := EndOf(Point{1, 2}, tt.text); got != tt.want {
			t.Errorf("EndOf(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	b := NewBufferFromString("one\ntwo")
	snap := b.Snapshot()

	if _, err := b.Delete(NewRange(Point{0, 0}, Point{0, 4})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snap.LineCount() != 2 {
		t.Errorf("snapshot line count = %d, want 2", snap.LineCount())
	}
	if snap.LineText(0) != "one" {
		t.Errorf("snapshot line 0 = %q, want %q", snap.LineText(0), "one")
	}
	if b.LineText(0) != "two" {
		t.Errorf("buffer line 0 = %q, want %q", b.LineText(0), "two")
	}
}

func TestDetectLineEnding(t *testing.T) {
	tests := []struct {
		text string
		want LineEnding
	}{
		{"a\nb\nc", LineEndingLF},
		{"a\r\nb\r\nc", LineEndingCRLF},
		{"a\rb\rc", LineEndingCR},
		{"abc", LineEndingLF},
	}

	for _, tt := range tests {
		if got := DetectLineEnding(tt.text); got != tt.want {
			t.Errorf("DetectLineEnding(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
