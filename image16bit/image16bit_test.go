package image16bit

import (
	"image"
	"image/color"
	"testing"
)

func TestRGB565RGBA(t *testing.T) {
	tests := []struct {
		name    string
		c       RGB565
		r, g, b uint32
	}{
		{"black", Black, 0x0000, 0x0000, 0x0000},
		{"white", White, 0xFFFF, 0xFFFF, 0xFFFF},
		{"red", Red, 0xFFFF, 0x0000, 0x0000},
		{"green", Green, 0x0000, 0xFFFF, 0x0000},
		{"blue", Blue, 0x0000, 0x0000, 0xFFFF},
		{"mid gray", RGB565(0x8410), 0x8484, 0x8282, 0x8484},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.r || g != tt.g || b != tt.b || a != 0xFFFF {
				t.Errorf("RGBA() = (%#x, %#x, %#x, %#x), want (%#x, %#x, %#x, 0xffff)",
					r, g, b, a, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestRGB565ModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  RGB565
	}{
		{"rgb565 passthrough", RGB565(0x1234), RGB565(0x1234)},
		{"black", color.Black, Black},
		{"white", color.White, White},
		{"pure red", color.RGBA{0xFF, 0x00, 0x00, 0xFF}, Red},
		{"pure green", color.RGBA{0x00, 0xFF, 0x00, 0xFF}, Green},
		{"pure blue", color.RGBA{0x00, 0x00, 0xFF, 0xFF}, Blue},
		{"mid gray", color.RGBA{0x84, 0x82, 0x84, 0xFF}, RGB565(0x8410)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RGB565Model.Convert(tt.input).(RGB565)
			if result != tt.want {
				t.Errorf("RGB565Model.Convert(%v) = %#04x, want %#04x", tt.input, uint16(result), uint16(tt.want))
			}
		})
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	// Every RGB565 value must survive expansion to RGBA and re-conversion.
	for v := 0; v <= 0xFFFF; v++ {
		c := RGB565(v)
		back := RGB565Model.Convert(c).(RGB565)
		if back != c {
			t.Fatalf("round trip of %#04x gave %#04x", v, uint16(back))
		}
	}
}

func TestNewBigEndian(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantStride int
		wantPixLen int
	}{
		{"220x176 full screen", image.Rect(0, 0, 220, 176), 440, 77440},
		{"8x8 glyph", image.Rect(0, 0, 8, 8), 16, 128},
		{"1x1", image.Rect(0, 0, 1, 1), 2, 2},
		{"offset rect", image.Rect(10, 20, 14, 22), 8, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewBigEndian(tt.rect)
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestBigEndianByteOrder(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 2, 1))

	img.SetRGB565(0, 0, RGB565(0xF81F))
	img.SetRGB565(1, 0, RGB565(0x07E0))

	// High byte first, pixel by pixel.
	want := []byte{0xF8, 0x1F, 0x07, 0xE0}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d] = %#02x, want %#02x", i, img.Pix[i], b)
		}
	}
}

func TestBigEndianSetGet(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 4, 2))

	testCases := [][4]RGB565{
		{0x0000, 0x1111, 0x2222, 0x3333},
		{0xFFFF, 0xEEEE, 0xDDDD, 0xCCCC},
	}

	for y, row := range testCases {
		for x, val := range row {
			img.SetRGB565(x, y, val)
		}
	}

	for y, row := range testCases {
		for x, want := range row {
			if got := img.RGB565At(x, y); got != want {
				t.Errorf("RGB565At(%d, %d) = %#04x, want %#04x", x, y, uint16(got), uint16(want))
			}
		}
	}
}

func TestBigEndianAt(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 2, 2))
	img.SetRGB565(0, 0, Red)

	c := img.At(0, 0)
	got, ok := c.(RGB565)
	if !ok {
		t.Errorf("At(0, 0) returned %T, want RGB565", c)
	}
	if got != Red {
		t.Errorf("At(0, 0) = %#04x, want %#04x", uint16(got), uint16(Red))
	}
}

func TestBigEndianSet(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 2, 2))

	img.Set(0, 0, RGB565(0xABCD))
	if got := img.RGB565At(0, 0); got != RGB565(0xABCD) {
		t.Errorf("After Set(0, 0, 0xABCD), RGB565At(0, 0) = %#04x, want 0xabcd", uint16(got))
	}

	// Convert from standard color.
	img.Set(1, 0, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})
	if got := img.RGB565At(1, 0); got != White {
		t.Errorf("After Set(1, 0, white), RGB565At(1, 0) = %#04x, want 0xffff", uint16(got))
	}
}

func TestBigEndianColorModel(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 4, 4))
	if img.ColorModel() != RGB565Model {
		t.Error("ColorModel() did not return RGB565Model")
	}
}

func TestBigEndianBounds(t *testing.T) {
	rect := image.Rect(10, 20, 14, 24)
	img := NewBigEndian(rect)
	if img.Bounds() != rect {
		t.Errorf("Bounds() = %v, want %v", img.Bounds(), rect)
	}
}

func TestBigEndianOutOfBounds(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 4, 4))

	// Out of bounds reads return zero.
	if got := img.RGB565At(-1, 0); got != 0 {
		t.Errorf("RGB565At(-1, 0) = %#04x, want 0 (out of bounds)", uint16(got))
	}
	if got := img.RGB565At(0, -1); got != 0 {
		t.Errorf("RGB565At(0, -1) = %#04x, want 0 (out of bounds)", uint16(got))
	}
	if got := img.RGB565At(4, 0); got != 0 {
		t.Errorf("RGB565At(4, 0) = %#04x, want 0 (out of bounds)", uint16(got))
	}

	// Out of bounds writes do nothing.
	img.SetRGB565(-1, 0, White)
	img.SetRGB565(0, -1, White)
	img.SetRGB565(4, 0, White)

	for _, b := range img.Pix {
		if b != 0 {
			t.Fatal("out-of-bounds Set modified pixel data")
		}
	}
}

func TestBigEndianOffsetRect(t *testing.T) {
	rect := image.Rect(100, 50, 104, 52)
	img := NewBigEndian(rect)

	img.SetRGB565(100, 50, RGB565(0x0BAD))

	if got := img.RGB565At(100, 50); got != RGB565(0x0BAD) {
		t.Errorf("SetRGB565(100, 50) then RGB565At(100, 50) = %#04x, want 0x0bad", uint16(got))
	}
	if img.Pix[0] != 0x0B || img.Pix[1] != 0xAD {
		t.Errorf("Pix[0:2] = %#02x %#02x, want 0x0b 0xad", img.Pix[0], img.Pix[1])
	}
}

func TestBigEndianPixOffset(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 8, 2))

	tests := []struct {
		x, y   int
		offset int
	}{
		{0, 0, 0},
		{1, 0, 2},
		{7, 0, 14},
		{0, 1, 16}, // 16 bytes per row
		{3, 1, 22},
	}

	for _, tt := range tests {
		if offset := img.pixOffset(tt.x, tt.y); offset != tt.offset {
			t.Errorf("pixOffset(%d, %d) = %d, want %d", tt.x, tt.y, offset, tt.offset)
		}
	}
}
