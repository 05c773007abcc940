// Package font8x8 holds the fixed 8x8 bitmap font used for text rendering
// on the ILI9225 display.
//
// The font covers the letters a-z (one case, lookups fold), the digits 0-9
// and a small amount of punctuation. Each glyph is eight rows of eight
// pixels, one byte per row, most significant bit leftmost.
package font8x8

// Glyph cell size in pixels.
const (
	Width  = 8
	Height = 8
)

// Bitmap is one glyph: eight rows top to bottom, MSB = leftmost pixel.
type Bitmap [Height]byte

// Glyph returns the bitmap for c. Letters are folded to a single case.
// Unknown characters return the zero bitmap (all background) and ok == false.
func Glyph(c byte) (b Bitmap, ok bool) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	b, ok = glyphs[c]
	return b, ok
}

// Brackets of each direction share one pattern.
var (
	openBracket = Bitmap{
		0b00001100,
		0b00011000,
		0b00110000,
		0b00110000,
		0b00110000,
		0b00011000,
		0b00001100,
		0b00000000,
	}
	closeBracket = Bitmap{
		0b00110000,
		0b00011000,
		0b00001100,
		0b00001100,
		0b00001100,
		0b00011000,
		0b00110000,
		0b00000000,
	}
)

var glyphs = map[byte]Bitmap{
	'a': {
		0b00111100,
		0b01100110,
		0b01100110,
		0b01111110,
		0b01100110,
		0b01100110,
		0b01100110,
		0b00000000,
	},
	'b': {
		0b01111100,
		0b01100110,
		0b01100110,
		0b01111100,
		0b01100110,
		0b01100110,
		0b01111100,
		0b00000000,
	},
	'c': {
		0b00011110,
		0b00110000,
		0b01100000,
		0b01100000,
		0b01100000,
		0b00110000,
		0b00011110,
		0b00000000,
	},
	'd': {
		0b01111000,
		0b01101100,
		0b01100110,
		0b01100110,
		0b01100110,
		0b01101100,
		0b01111000,
		0b00000000,
	},
	'e': {
		0b01111110,
		0b01100000,
		0b01100000,
		0b01111000,
		0b01100000,
		0b01100000,
		0b01111110,
		0b00000000,
	},
	'f': {
		0b01111110,
		0b01100000,
		0b01100000,
		0b01111000,
		0b01100000,
		0b01100000,
		0b01100000,
		0b00000000,
	},
	'g': {
		0b00111100,
		0b01100110,
		0b01100000,
		0b01101110,
		0b01100110,
		0b01100110,
		0b00111110,
		0b00000000,
	},
	'h': {
		0b01100110,
		0b01100110,
		0b01100110,
		0b01111110,
		0b01100110,
		0b01100110,
		0b01100110,
		0b00000000,
	},
	'i': {
		0b00111100,
		0b00011000,
		0b00011000,
		0b00011000,
		0b00011000,
		0b00011000,
		0b00111100,
		0b00000000,
	},
	'j': {
		0b00000110,
		0b00000110,
		0b00000110,
		0b00000110,
		0b00000110,
		0b01100110,
		0b00111100,
		0b00000000,
	},
	'k': {
		0b11000110,
		0b11001100,
		0b11011000,
		0b11110000,
		0b11011000,
		0b11001100,
		0b11000110,
		0b00000000,
	},
	'l': {
		0b01100000,
		0b01100000,
		0b01100000,
		0b01100000,
		0b01100000,
		0b01100000,
		0b01111110,
		0b00000000,
	},
	'm': {
		0b11000110,
		0b11101110,
		0b11111110,
		0b11010110,
		0b11000110,
		0b11000110,
		0b11000110,
		0b00000000,
	},
	'n': {
		0b11000110,
		0b11100110,
		0b11110110,
		0b11011110,
		0b11001110,
		0b11000110,
		0b11000110,
		0b00000000,
	},
	'o': {
		0b00111100,
		0b01100110,
		0b01100110,
		0b01100110,
		0b01100110,
		0b01100110,
		0b00111100,
		0b00000000,
	},
	'p': {
		0b01111100,
		0b01100110,
		0b01100110,
		0b01111100,
		0b01100000,
		0b01100000,
		0b01100000,
		0b00000000,
	},
	'q': {
		0b01111000,
		0b11001100,
		0b11001100,
		0b11001100,
		0b11001100,
		0b11011100,
		0b01111110,
		0b00000000,
	},
	'r': {
		0b01111100,
		0b01100110,
		0b01100110,
		0b01111100,
		0b01101100,
		0b01100110,
		0b01100110,
		0b00000000,
	},
	's': {
		0b00111100,
		0b01100110,
		0b01110000,
		0b00111100,
		0b00001110,
		0b01100110,
		0b00111100,
		0b00000000,
	},
	't': {
		0b01111110,
		0b00011000,
		0b00011000,
		0b00011000,
		0b00011000,
		0b00011000,
		0b00011000,
		0b00000000,
	},
	'u': {
		0b01100110,
		0b01100110,
		0b01100110,
		0b01100110,
		0b01100110,
		0b01100110,
		0b00111100,
		0b00000000,
	},
	'v': {
		0b01100110,
		0b01100110,
		0b01100110,
		0b01100110,
		0b00111100,
		0b00111100,
		0b00011000,
		0b00000000,
	},
	'w': {
		0b11000110,
		0b11000110,
		0b11000110,
		0b11010110,
		0b11111110,
		0b11101110,
		0b11000110,
		0b00000000,
	},
	'x': {
		0b11000011,
		0b01100110,
		0b00111100,
		0b00011000,
		0b00111100,
		0b01100110,
		0b11000011,
		0b00000000,
	},
	'y': {
		0b11000011,
		0b01100110,
		0b00111100,
		0b00011000,
		0b00011000,
		0b00011000,
		0b00011000,
		0b00000000,
	},
	'z': {
		0b11111110,
		0b00001100,
		0b00011000,
		0b00110000,
		0b01100000,
		0b11000000,
		0b11111110,
		0b00000000,
	},
	'0': {
		0b00111100,
		0b01100110,
		0b01101110,
		0b01111110,
		0b01110110,
		0b01100110,
		0b00111100,
		0b00000000,
	},
	'1': {
		0b00011000,
		0b00111000,
		0b01111000,
		0b00011000,
		0b00011000,
		0b00011000,
		0b00011000,
		0b00000000,
	},
	'2': {
		0b00111100,
		0b01100110,
		0b00000110,
		0b00001100,
		0b00011000,
		0b00110000,
		0b01111110,
		0b00000000,
	},
	'3': {
		0b00111100,
		0b01100110,
		0b00000110,
		0b00011100,
		0b00000110,
		0b01100110,
		0b00111100,
		0b00000000,
	},
	'4': {
		0b00011100,
		0b00111100,
		0b01101100,
		0b11001100,
		0b11111110,
		0b00001100,
		0b00001100,
		0b00000000,
	},
	'5': {
		0b01111110,
		0b01100000,
		0b01111100,
		0b00000110,
		0b00000110,
		0b01100110,
		0b00111100,
		0b00000000,
	},
	'6': {
		0b00011100,
		0b00110000,
		0b01100000,
		0b01111100,
		0b01100110,
		0b01100110,
		0b00111100,
		0b00000000,
	},
	'7': {
		0b01111110,
		0b00000110,
		0b00000110,
		0b00001100,
		0b00011000,
		0b00011000,
		0b00011000,
		0b00000000,
	},
	'8': {
		0b00111100,
		0b01100110,
		0b01100110,
		0b00111100,
		0b01100110,
		0b01100110,
		0b00111100,
		0b00000000,
	},
	'9': {
		0b00111100,
		0b01100110,
		0b01100110,
		0b00111110,
		0b00000110,
		0b00001100,
		0b00111000,
		0b00000000,
	},
	'-': {
		0b00000000,
		0b00000000,
		0b00000000,
		0b01111110,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	',': {
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00011000,
		0b00011000,
		0b00110000,
	},
	'.': {
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00011000,
		0b00011000,
		0b00000000,
	},
	'!': {
		0b00011000,
		0b00011000,
		0b00011000,
		0b00011000,
		0b00011000,
		0b00000000,
		0b00011000,
		0b00000000,
	},
	'&': {
		0b00111000,
		0b01101100,
		0b01101000,
		0b01110110,
		0b11011100,
		0b11001110,
		0b01111011,
		0b00000000,
	},
	'\'': {
		0b00011000,
		0b00011000,
		0b00110000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
		0b00000000,
	},
	'(': openBracket,
	'[': openBracket,
	'{': openBracket,
	')': closeBracket,
	']': closeBracket,
	'}': closeBracket,
}
