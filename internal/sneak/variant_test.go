package sneak

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		trigger rune
		want    Variant
		ok      bool
	}{
		{'f', Forward, true},
		{'F', Backward, true},
		{'t', TilForward, true},
		{'T', TilBackward, true},
		{'s', 0, false},
		{';', 0, false},
	}

	for _, tt := range tests {
		got, ok := Lookup(tt.trigger)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Lookup(%q) = %v, %v; want %v, %v", tt.trigger, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTriggerRoundTrip(t *testing.T) {
	for _, v := range Variants() {
		got, ok := Lookup(v.Trigger())
		if !ok || got != v {
			t.Errorf("Lookup(%v.Trigger()) = %v, %v", v, got, ok)
		}
	}
}

func TestMirror(t *testing.T) {
	tests := []struct {
		in, want Variant
	}{
		{Forward, Backward},
		{Backward, Forward},
		{TilForward, TilBackward},
		{TilBackward, TilForward},
	}

	for _, tt := range tests {
		if got := Mirror(tt.in); got != tt.want {
			t.Errorf("Mirror(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got := Mirror(Mirror(tt.in)); got != tt.in {
			t.Errorf("Mirror(Mirror(%v)) = %v", tt.in, got)
		}
	}
}

func TestSameDirection(t *testing.T) {
	for _, v := range Variants() {
		if got := SameDirection(v); got != v {
			t.Errorf("SameDirection(%v) = %v", v, got)
		}
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
		ok   bool
	}{
		{"forward", Forward, true},
		{"tillBackward", TilBackward, true},
		{"F", Backward, true},
		{"t", TilForward, true},
		{"sideways", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseVariant(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseVariant(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDescriptorDirections(t *testing.T) {
	for _, v := range Variants() {
		d := v.Descriptor()
		if d.Variant != v {
			t.Errorf("%v descriptor has variant %v", v, d.Variant)
		}
		if Mirror(v).Descriptor().Direction != -d.Direction {
			t.Errorf("%v and its mirror scan the same way", v)
		}
	}
}
