package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(10, 3)
	b.Init()

	cell := Cell{Rune: 'X', Attrs: AttrReverse}
	b.SetCell(4, 1, cell)

	if got := b.GetCell(4, 1); got != cell {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)
	if got := b.GetCell(-1, 0); got != EmptyCell() {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendRowAndClear(t *testing.T) {
	b := NewNullBackend(10, 2)
	b.Init()

	for i, r := range "hi there" {
		b.SetCell(i, 0, Cell{Rune: r})
	}
	if got := b.Row(0); got != "hi there" {
		t.Errorf("Row(0) = %q, want %q", got, "hi there")
	}

	b.Clear()
	if got := b.Row(0); got != "" {
		t.Errorf("Row(0) after Clear = %q, want empty", got)
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.ShowCursor(10, 5)
	x, y, visible := b.CursorPosition()
	if x != 10 || y != 5 || !visible {
		t.Errorf("cursor = (%d, %d, %v), want (10, 5, true)", x, y, visible)
	}

	b.HideCursor()
	if _, _, visible := b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.Resize(40, 10)
	if w, h := b.Size(); w != 40 || h != 10 {
		t.Errorf("size = (%d, %d), want (40, 10)", w, h)
	}

	ev := b.PollEvent()
	if ev.Type != EventResize || ev.Width != 40 || ev.Height != 10 {
		t.Errorf("event = %+v, want resize 40x10", ev)
	}
}

func TestNullBackendPostEvent(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'f'})
	ev := b.PollEvent()
	if ev.Type != EventKey || ev.Rune != 'f' {
		t.Errorf("event = %+v, want key f", ev)
	}
}

func TestModMaskHas(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.Has(ModCtrl) || !m.Has(ModShift) {
		t.Error("mask should contain ctrl and shift")
	}
	if m.Has(ModAlt) {
		t.Error("mask should not contain alt")
	}
}

func TestTerminalSimulation(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer term.Shutdown()

	screen.SetSize(20, 5)
	term.SetCell(0, 0, Cell{Rune: 'a', Attrs: AttrBold})
	term.Show()

	r, _, style, _ := screen.GetContent(0, 0)
	if r != 'a' {
		t.Errorf("rune = %q, want 'a'", r)
	}
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrBold == 0 {
		t.Error("expected bold style")
	}
}

func TestConvertEvent(t *testing.T) {
	tests := []struct {
		name string
		in   tcell.Event
		want Event
	}{
		{
			name: "rune",
			in:   tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone),
			want: Event{Type: EventKey, Key: KeyRune, Rune: 'f'},
		},
		{
			name: "enter",
			in:   tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			want: Event{Type: EventKey, Key: KeyEnter, Rune: 0},
		},
		{
			name: "resize",
			in:   tcell.NewEventResize(30, 8),
			want: Event{Type: EventResize, Width: 30, Height: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertEvent(tt.in)
			if got.Type != tt.want.Type || got.Key != tt.want.Key || got.Width != tt.want.Width || got.Height != tt.want.Height {
				t.Errorf("convertEvent = %+v, want %+v", got, tt.want)
			}
			if tt.want.Key == KeyRune && got.Rune != tt.want.Rune {
				t.Errorf("rune = %q, want %q", got.Rune, tt.want.Rune)
			}
		})
	}
}
