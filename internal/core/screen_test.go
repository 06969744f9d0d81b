package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("NewScreen(80, 24) = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("empty screen String() = %q, expected empty", s.String())
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColored(3, 2, '@', ColorBrightGreen)

	c := s.GetCell(3, 2)
	if c.Rune != '@' || c.Color != ColorBrightGreen {
		t.Errorf("GetCell(3, 2) = %+v, expected '@' bright green", c)
	}

	// Out-of-bounds writes are ignored and reads are blank.
	s.SetColored(-1, 0, 'X', ColorRed)
	s.SetColored(10, 0, 'X', ColorRed)
	s.SetColored(0, 5, 'X', ColorRed)
	if s.GetCell(-1, 0) != blankCell || s.Get(10, 0) != ' ' {
		t.Error("out-of-bounds reads should return a blank cell")
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, '$', ColorYellow)
	s.Clear()

	if c := s.GetCell(1, 1); c != blankCell {
		t.Errorf("after Clear cell = %+v, expected blank", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name     string
		x        int
		text     string
		expected string
	}{
		{"fits", 2, "score", "  score   "},
		{"clipped right", 7, "ammo", "       amm"},
		{"clipped left", -2, "ammo", "mo        "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			s.DrawText(tc.x, 0, tc.text)
			if got := s.Row(0); got != tc.expected {
				t.Errorf("Row(0) = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "Hi")

	if s.Get(9, 1) != 'H' || s.Get(10, 1) != 'i' {
		t.Errorf("DrawTextCentered placed text at wrong column: %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(8, 6)
	s.DrawBoxColored(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, r := range corners {
		c := s.GetCell(pos[0], pos[1])
		if c.Rune != r || c.Color != ColorGray {
			t.Errorf("corner %v = %+v, expected %q gray", pos, c, r)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if s.Get(3, 2) != ' ' {
		t.Error("box interior should stay blank")
	}
}

func TestScreenDrawBoxDegenerate(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawBox(NewRect(2, 1, 1, 3))

	for y := 1; y < 4; y++ {
		if s.Get(2, y) != '█' {
			t.Errorf("degenerate box should be filled at y=%d, got %q", y, s.Get(2, y))
		}
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 6)
	s.DrawRect(NewRect(1, 1, 2, 3), '#')

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			inside := x >= 1 && x < 3 && y >= 1 && y < 4
			if got := s.Get(x, y); (got == '#') != inside {
				t.Errorf("DrawRect cell (%d, %d) = %q, inside=%v", x, y, got, inside)
			}
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	if got := s.String(); got != "abc\nde " {
		t.Errorf("String() = %q, expected %q", got, "abc\nde ")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.SetColored(0, 0, 'H', ColorRed)

	s.Resize(4, 2)
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("after Resize dimensions = %dx%d, expected 4x2", s.Width(), s.Height())
	}
	if s.Row(0) != "Hell" {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "Hell")
	}
	if s.GetCell(0, 0).Color != ColorRed {
		t.Error("Resize should keep cell colors")
	}

	s.Resize(12, 3)
	if !strings.HasPrefix(s.Row(0), "Hell ") {
		t.Errorf("enlarging should keep content, Row(0) = %q", s.Row(0))
	}
	if s.Row(-1) != strings.Repeat(" ", 12) {
		t.Error("out-of-range Row should be blank")
	}
}
