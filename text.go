package ili9225

import (
	"errors"

	"periph.io/x/devices/v3/ili9225/font8x8"
	"periph.io/x/devices/v3/ili9225/image16bit"
)

// RenderGlyph rasterizes one 8x8 glyph into a pixel buffer, two big
// endian bytes per pixel in row major order: fg where the glyph bitmap
// has a set bit, bg elsewhere. Characters without a glyph come out as
// all background.
func RenderGlyph(ch byte, fg, bg image16bit.RGB565) []byte {
	pix := make([]byte, 2*font8x8.Width*font8x8.Height)
	bm, _ := font8x8.Glyph(ch)
	i := 0
	for row := 0; row < font8x8.Height; row++ {
		bits := bm[row]
		for col := 0; col < font8x8.Width; col++ {
			c := bg
			if bits&(0x80>>col) != 0 {
				c = fg
			}
			pix[i] = byte(c >> 8)
			pix[i+1] = byte(c)
			i += 2
		}
	}
	return pix
}

// DrawText renders s in the built-in 8x8 font at the given landscape
// position, one glyph per byte, advancing 8 columns per glyph. Rendering
// stops silently at the right screen edge; there is no wrapping.
func (d *Dev) DrawText(s string, x, y int, fg, bg image16bit.RGB565) error {
	if d.halted {
		return errors.New("ili9225: halted")
	}
	for i := 0; i < len(s); i++ {
		if x+font8x8.Width > d.rect.Max.X {
			break
		}
		if err := d.Blit(RenderGlyph(s[i], fg, bg), x, y, font8x8.Width, font8x8.Height); err != nil {
			return err
		}
		x += font8x8.Width
	}
	return nil
}
