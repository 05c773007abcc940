// Package ili9225 controls an ILI9225 TFT LCD via SPI.
//
// The ILI9225 is a 262k-colour single-chip driver for 176×220 TFT panels.
// This driver talks to it over a 4-wire serial interface and presents the
// panel as a landscape 220×176 drawing surface using 16-bit RGB565 pixels.
//
// # Display Characteristics
//
// - 176×220 native resolution, presented rotated as 220×176
// - 16-bit RGB565 pixels, two big endian bytes per pixel on the wire
// - Blocking pixel writes, plus an asynchronous DMA-style write path
// - Built-in 8×8 bitmap font for simple text output
// - Hardware vertical scrolling and partial gate scan
// - Software or hardware reset, backlight control
//
// # Hardware Connection
//
// Connect the display to your system via SPI. Every control line except
// the bus pair is an ordinary GPIO; in particular the chip select is
// driven by the driver itself so that pixel bursts can stay framed across
// multiple bus writes:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	CLK         → SPI Clock (SCLK)
//	SDI         → SPI Data (MOSI)
//	RS          → GPIO (register select, required)
//	CS          → GPIO (chip select, required; do not use the bus CS)
//	RST         → Optional: GPIO for hardware reset
//	LED         → Optional: GPIO for the backlight
//
// # Basic Usage
//
//	package main
//
//	import (
//		"image"
//
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/ili9225"
//		"periph.io/x/devices/v3/ili9225/image16bit"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Control pins
//		rs := gpioreg.ByName("GPIO24")
//		cs := gpioreg.ByName("GPIO25")
//
//		// Create the device; this runs the power-up sequence
//		dev, _ := ili9225.NewSPI(spiBus, rs, cs, nil)
//		defer dev.Halt()
//
//		// Clear to black and write a line of text
//		dev.Fill(image16bit.Black)
//		dev.DrawText("hello", 0, 0, image16bit.White, image16bit.Black)
//
//		// Or draw any image through the display.Drawer interface
//		img := image16bit.NewBigEndian(dev.Bounds())
//		for x := 0; x < 220; x++ {
//			img.SetRGB565(x, 88, image16bit.Red)
//		}
//		dev.Draw(dev.Bounds(), img, image.Point{})
//	}
//
// # Reset and Backlight Pins
//
// If the display's RST pin is wired to a GPIO, pass it in Opts for a
// clean hardware reset during initialization. Without it the driver
// resets the chip through the soft reset register instead. The LED pin,
// when provided, is held off during initialization and switched on once
// the panel shows defined contents:
//
//	dev, _ := ili9225.NewSPI(spiBus, rs, cs, &ili9225.Opts{
//		RST: gpioreg.ByName("GPIO23"),
//		LED: gpioreg.ByName("GPIO18"),
//	})
//
// # Coordinates
//
// Drawing operations (Pixel, FillRect, Blit, DrawText, Draw) take
// landscape coordinates: x grows along the panel's 220 pixel long edge, y
// along the 176 pixel short edge. The low-level window and addressing
// calls (SetWindow, SetAddress, SetX) use the chip's native portrait
// coordinates, 176 columns by 220 lines; the driver performs the mirrored
// mapping between the two internally.
//
// # Asynchronous Writes
//
// DMAWrite pushes a pixel buffer without blocking the caller. Position
// the RAM address first, register a completion handler once, and keep the
// buffer untouched until the handler has fired:
//
//	done := make(chan error, 1)
//	dev.SetDMAHandler(dma.IRQ0, func(err error) { done <- err })
//
//	dev.SetAddress(0, 0)
//	if err := dev.DMAWrite(frame); err != nil {
//		// transfer never started
//	}
//	err := <-done
//
// Only one transfer may be in flight at a time; starting a second one
// before the callback has fired returns an error. The handler may start
// the next transfer directly.
//
// # Colours
//
// Pixels use the RGB565 layout, 5 bits red, 6 bits green, 5 bits blue.
// The image16bit package provides the colour type, ready-made constants
// and an image.Image implementation in the display's wire format:
//
//	image16bit.Black
//	image16bit.White
//	image16bit.Red
//	image16bit.RGB565(0x07FF) // cyan
//
// Standard Go colours are converted when drawn through Draw.
//
// # Datasheet
//
// For register descriptions and timing information, see:
// https://www.displayfuture.com/Display/datasheet/controller/ILI9225.pdf
//
// # Compatibility with periph.io
//
// Dev implements the display.Drawer interface and can be used with any
// periph.io tool or library expecting one.
package ili9225
