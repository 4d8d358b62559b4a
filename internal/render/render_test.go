package render

import (
	"image/color"
	"slices"
	"strings"
	"testing"

	"gol-viz/pkg/life"
)

func TestFillGridRGBA(t *testing.T) {
	g := life.Grid{
		{1, 0, 0},
		{0, 0, 1},
	}
	buf := make([]byte, 4*6)
	fillGridRGBA(buf, g, color.White, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	white := []byte{255, 255, 255, 255}
	off := []byte{10, 20, 30, 255}
	want := [][]byte{white, off, off, off, off, white}
	for i, px := range want {
		if got := buf[i*4 : i*4+4]; !slices.Equal(got, px) {
			t.Fatalf("pixel %d = %v, want %v", i, got, px)
		}
	}
}

func TestText(t *testing.T) {
	g := life.Grid{
		{0, 1, 0},
		{1, 1, 1},
	}
	got := Text(g)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0] != " █ " || lines[1] != "███" {
		t.Fatalf("Text = %q", got)
	}
}

func TestStatus(t *testing.T) {
	got := Status(7, 12, life.DefaultRule())
	if got != "generation 7  alive 12  rule B3/S23" {
		t.Fatalf("Status = %q", got)
	}
}
