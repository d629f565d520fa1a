package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestAgeColorRamp(t *testing.T) {
	cases := []struct {
		age  int
		want color.RGBA
	}{
		{0, color.RGBA{R: 255, A: 255}},
		{5, color.RGBA{R: 128, G: 127, B: 127, A: 255}},
		{10, color.RGBA{G: 255, B: 255, A: 255}},
		{40, color.RGBA{G: 255, B: 255, A: 255}},
	}
	for _, tc := range cases {
		if got := AgeColor(tc.age, 10); got != tc.want {
			t.Fatalf("AgeColor(%d) = %+v, want %+v", tc.age, got, tc.want)
		}
	}
}

func TestAgePaletteLayout(t *testing.T) {
	p := AgePalette(10)
	if len(p) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(p))
	}
	if p[0] != DeadColor {
		t.Fatalf("entry 0 should be the dead color, got %+v", p[0])
	}
	if p[1] != AgeColor(0, 10) || p[11] != AgeColor(10, 10) {
		t.Fatal("entries 1..11 should follow the age ramp")
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{A: 255}, {R: 10, G: 20, B: 30, A: 255}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 1, 9}, palette)

	want := []byte{0, 0, 0, 255, 10, 20, 30, 255, 10, 20, 30, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, want %v", buf, want)
	}

	fillPaletteRGBA(buf, []uint8{1, 1, 1}, nil)
	if !slices.Equal(buf, make([]byte, 12)) {
		t.Fatalf("empty palette should clear, got %v", buf)
	}
}
