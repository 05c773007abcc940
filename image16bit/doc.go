// Package image16bit provides a 16-bit RGB565 image format for the ILI9225 display controller.
//
// The ILI9225 TFT controller stores one pixel per 16-bit GRAM word in 5-6-5
// layout: 5 bits red, 6 bits green, 5 bits blue. Words travel over the bus
// most-significant-byte first, so pixels are kept as two big-endian bytes,
// the same sample layout the standard library uses for image.Gray16.
//
// Memory layout example for a 3-pixel row:
//
//	Pixels: red     green   blue
//	Words:  0xF800  0x07E0  0x001F
//	Bytes:  0xF8 0x00  0x07 0xE0  0x00 0x1F
//
// This package provides:
//
// - RGB565: a color type holding one packed 5-6-5 word
// - RGB565Model: a color model converting standard Go colors to RGB565
// - BigEndian: an image.Image implementation ready for bus transfer
//
// Example usage:
//
//	// Create a 220x176 image
//	img := image16bit.NewBigEndian(image.Rect(0, 0, 220, 176))
//
//	// Set a pixel to pure red
//	img.SetRGB565(10, 20, image16bit.RGB565(0xF800))
//
//	// Get a pixel
//	c := img.RGB565At(10, 20)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image16bit.RGB565(0x07E0)), image.Point{}, draw.Src)
package image16bit
