package ili9225

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/devices/v3/ili9225/image16bit"
)

// SetWindow restricts graphics RAM writes to the given window in chip
// coordinates and moves the RAM address to its start corner. Bounds are
// inclusive; the horizontal axis counts NativeWidth columns, the
// vertical axis NativeHeight lines.
func (d *Dev) SetWindow(horStart, horEnd, vertStart, vertEnd int) error {
	if d.halted {
		return errors.New("ili9225: halted")
	}
	if horStart < 0 || horStart >= horEnd || horEnd >= NativeWidth {
		return errors.New("ili9225: horizontal window out of range")
	}
	if vertStart < 0 || vertStart >= vertEnd || vertEnd >= NativeHeight {
		return errors.New("ili9225: vertical window out of range")
	}
	if err := d.setRegister(regHorWindowAddr1, uint16(horEnd)); err != nil {
		return err
	}
	if err := d.setRegister(regHorWindowAddr2, uint16(horStart)); err != nil {
		return err
	}
	if err := d.setRegister(regVertWindowAddr1, uint16(vertEnd)); err != nil {
		return err
	}
	if err := d.setRegister(regVertWindowAddr2, uint16(vertStart)); err != nil {
		return err
	}
	if err := d.setRegister(regRAMAddrSet1, uint16(horStart)); err != nil {
		return err
	}
	return d.setRegister(regRAMAddrSet2, uint16(vertStart))
}

// SetAddress moves the graphics RAM address counters to (x, y) in chip
// coordinates, independent of the current window. The caller is
// responsible for keeping the address inside the screen.
func (d *Dev) SetAddress(x, y int) error {
	if d.halted {
		return errors.New("ili9225: halted")
	}
	if err := d.setRegister(regRAMAddrSet1, uint16(x)); err != nil {
		return err
	}
	return d.setRegister(regRAMAddrSet2, uint16(y))
}

// SetX moves only the horizontal graphics RAM address counter.
func (d *Dev) SetX(x int) error {
	if d.halted {
		return errors.New("ili9225: halted")
	}
	return d.setRegister(regRAMAddrSet1, uint16(x))
}

// gramWindow maps a landscape rectangle to the chip's window and address
// registers. The mapping is a function of the entry mode: in the default
// vertical image mode the chip's horizontal axis runs along the
// rectangle's y extent and the chip's vertical axis is the mirrored x
// extent.
func gramWindow(mode uint16, x, y, w, h int) ([]regValue, error) {
	switch mode {
	case defaultEntryMode:
		return []regValue{
			{regHorWindowAddr1, uint16(y + h - 1)},
			{regHorWindowAddr2, uint16(y)},
			{regVertWindowAddr1, uint16(NativeHeight - 1 - x)},
			{regVertWindowAddr2, uint16(NativeHeight - 1 - (x + w - 1))},
			{regRAMAddrSet1, uint16(y)},
			{regRAMAddrSet2, uint16(NativeHeight - 1 - x)},
		}, nil
	default:
		return nil, fmt.Errorf("ili9225: no coordinate transform for entry mode 0x%04X", mode)
	}
}

// beginBurst reprograms the entry mode, points the window and address
// registers at the given landscape rectangle and opens a pixel burst.
func (d *Dev) beginBurst(x, y, w, h int) error {
	regs, err := gramWindow(d.mode, x, y, w, h)
	if err != nil {
		return err
	}
	if err := d.setRegister(regEntryMode, d.mode); err != nil {
		return err
	}
	for _, rv := range regs {
		if err := d.setRegister(rv.reg, rv.val); err != nil {
			return err
		}
	}
	return d.WritePixelsStart()
}

// Pixel sets a single pixel at the given landscape position.
func (d *Dev) Pixel(x, y int, c image16bit.RGB565) error {
	if d.halted {
		return errors.New("ili9225: halted")
	}
	if x < 0 || y < 0 || x >= d.rect.Max.X || y >= d.rect.Max.Y {
		return errors.New("ili9225: pixel outside the screen")
	}
	if err := d.setRegister(regRAMAddrSet1, uint16(y)); err != nil {
		return err
	}
	if err := d.setRegister(regRAMAddrSet2, uint16(NativeHeight-1-x)); err != nil {
		return err
	}
	return d.setRegister(regGRAMReadWrite, uint16(c))
}

// FillRect fills a rectangle, given in landscape coordinates, with a
// single colour.
func (d *Dev) FillRect(x, y, w, h int, c image16bit.RGB565) error {
	if d.halted {
		return errors.New("ili9225: halted")
	}
	if w <= 0 || h <= 0 || x < 0 || y < 0 || x+w > d.rect.Max.X || y+h > d.rect.Max.Y {
		return errors.New("ili9225: rectangle outside the screen")
	}
	if err := d.beginBurst(x, y, w, h); err != nil {
		return err
	}
	// One row of repeated colour keeps the bus writes large without
	// allocating the whole rectangle.
	row := make([]byte, 2*w)
	for i := 0; i < w; i++ {
		row[2*i] = byte(c >> 8)
		row[2*i+1] = byte(c)
	}
	for i := 0; i < h; i++ {
		if err := d.writeBurst(row); err != nil {
			return err
		}
	}
	return d.WritePixelsEnd()
}

// Fill paints the whole screen with a single colour.
func (d *Dev) Fill(c image16bit.RGB565) error {
	return d.FillRect(0, 0, d.rect.Max.X, d.rect.Max.Y, c)
}

// Blit copies a rectangle of pixels, two big endian bytes each in row
// major order, to the given landscape position.
func (d *Dev) Blit(pix []byte, x, y, w, h int) error {
	if d.halted {
		return errors.New("ili9225: halted")
	}
	if w <= 0 || h <= 0 || x < 0 || y < 0 || x+w > d.rect.Max.X || y+h > d.rect.Max.Y {
		return errors.New("ili9225: rectangle outside the screen")
	}
	if len(pix) != 2*w*h {
		return errors.New("ili9225: invalid buffer size")
	}
	if err := d.beginBurst(x, y, w, h); err != nil {
		return err
	}
	if err := d.writeBurst(pix); err != nil {
		return err
	}
	return d.WritePixelsEnd()
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image16bit.RGB565Model
}

// Bounds returns the image bounds of the display, in landscape
// orientation.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw draws an image onto the display.
// The dst rectangle specifies the destination region on the display.
// The src image is read starting at sp.
//
// When src is a full-screen *image16bit.BigEndian its pixel bytes are
// pushed to the chip as they are; any other image is converted first.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("ili9225: halted")
	}

	// Clip to the display bounds, keeping src aligned.
	orig := dst
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}
	sp = sp.Add(dst.Min.Sub(orig.Min))

	if srcImg, ok := src.(*image16bit.BigEndian); ok {
		if dst == d.rect && sp == (image.Point{}) && srcImg.Rect == d.rect {
			return d.Blit(srcImg.Pix, 0, 0, d.rect.Dx(), d.rect.Dy())
		}
	}

	region := image16bit.NewBigEndian(image.Rectangle{Max: dst.Size()})
	draw.Draw(region, region.Rect, src, sp, draw.Src)
	return d.Blit(region.Pix, dst.Min.X, dst.Min.Y, dst.Dx(), dst.Dy())
}
