package font8x8

import "testing"

func TestGlyphKnownPatterns(t *testing.T) {
	tests := []struct {
		name string
		c    byte
		want Bitmap
	}{
		{"letter a", 'a', Bitmap{0x3C, 0x66, 0x66, 0x7E, 0x66, 0x66, 0x66, 0x00}},
		{"letter b", 'b', Bitmap{0x7C, 0x66, 0x66, 0x7C, 0x66, 0x66, 0x7C, 0x00}},
		{"letter z", 'z', Bitmap{0xFE, 0x0C, 0x18, 0x30, 0x60, 0xC0, 0xFE, 0x00}},
		{"digit 0", '0', Bitmap{0x3C, 0x66, 0x6E, 0x7E, 0x76, 0x66, 0x3C, 0x00}},
		{"digit 7", '7', Bitmap{0x7E, 0x06, 0x06, 0x0C, 0x18, 0x18, 0x18, 0x00}},
		{"dash", '-', Bitmap{0x00, 0x00, 0x00, 0x7E, 0x00, 0x00, 0x00, 0x00}},
		{"bang", '!', Bitmap{0x18, 0x18, 0x18, 0x18, 0x18, 0x00, 0x18, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Glyph(tt.c)
			if !ok {
				t.Fatalf("Glyph(%q) not found", tt.c)
			}
			if got != tt.want {
				t.Errorf("Glyph(%q) = %#v, want %#v", tt.c, got, tt.want)
			}
		})
	}
}

func TestGlyphCaseFolding(t *testing.T) {
	for c := byte('a'); c <= 'z'; c++ {
		lower, ok := Glyph(c)
		if !ok {
			t.Fatalf("Glyph(%q) not found", c)
		}
		upper, ok := Glyph(c - 'a' + 'A')
		if !ok {
			t.Fatalf("Glyph(%q) not found", c-'a'+'A')
		}
		if lower != upper {
			t.Errorf("Glyph(%q) != Glyph(%q)", c, c-'a'+'A')
		}
	}
}

func TestGlyphUnknown(t *testing.T) {
	tests := []byte{' ', '?', '@', '#', '/', 0x00, 0xFF, '\n'}

	for _, c := range tests {
		got, ok := Glyph(c)
		if ok {
			t.Errorf("Glyph(%q) ok = true, want false", c)
		}
		if got != (Bitmap{}) {
			t.Errorf("Glyph(%q) = %#v, want zero bitmap", c, got)
		}
	}
}

func TestGlyphDeterministic(t *testing.T) {
	for c := byte(0); ; c++ {
		a, okA := Glyph(c)
		b, okB := Glyph(c)
		if a != b || okA != okB {
			t.Errorf("Glyph(%q) not deterministic", c)
		}
		if c == 0xFF {
			break
		}
	}
}

func TestGlyphBracketsShared(t *testing.T) {
	open := []byte{'(', '[', '{'}
	for _, c := range open[1:] {
		a, _ := Glyph(open[0])
		b, ok := Glyph(c)
		if !ok || a != b {
			t.Errorf("Glyph(%q) should match Glyph(%q)", c, open[0])
		}
	}

	closed := []byte{')', ']', '}'}
	for _, c := range closed[1:] {
		a, _ := Glyph(closed[0])
		b, ok := Glyph(c)
		if !ok || a != b {
			t.Errorf("Glyph(%q) should match Glyph(%q)", c, closed[0])
		}
	}
}

func TestGlyphCoverage(t *testing.T) {
	supported := "abcdefghijklmnopqrstuvwxyz0123456789-([{)]},.!&'"
	for i := 0; i < len(supported); i++ {
		if _, ok := Glyph(supported[i]); !ok {
			t.Errorf("Glyph(%q) missing", supported[i])
		}
	}
	if len(glyphs) != len(supported) {
		t.Errorf("glyph table has %d entries, want %d", len(glyphs), len(supported))
	}
}
