package ili9225

import (
	"errors"
	"fmt"
	"image"
	"sync/atomic"

	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"periph.io/x/devices/v3/ili9225/dma"
)

// Screen geometry in the chip's native portrait orientation. The drawing
// surface exposed by Bounds is rotated to landscape: NativeHeight columns
// by NativeWidth rows.
const (
	NativeWidth  = 176
	NativeHeight = 220
)

// Opts is the configuration for the ILI9225 display.
type Opts struct {
	// Freq is the SPI bus speed. Defaults to 30MHz, the maximum the chip
	// is specified for. Lower it for long or noisy wiring.
	Freq physic.Frequency

	// RST is the reset pin. Optional; when nil the driver resets the
	// chip through the soft reset register instead.
	RST gpio.PinIO

	// LED is the backlight enable pin. Optional.
	LED gpio.PinOut

	// VerifyID reads the driver code register after initialization and
	// fails when the chip does not identify as an ILI9225. Requires a
	// bus that supports reads.
	VerifyID bool

	// DMA overrides the transfer channel used by DMAWrite. It defaults
	// to a software channel that writes through the same SPI connection
	// and completes on a background goroutine.
	DMA dma.Channel
}

// Dev is the device handle for the ILI9225 display.
//
// Dev is not safe for concurrent use: the register protocol is stateful
// across bus writes. Serialize access externally, and do not touch the
// device while a DMAWrite is in flight.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI connection
	rs  gpio.PinOut // Register select pin (low: index, high: data)
	cs  gpio.PinOut // Chip select pin, driven by the driver
	rst gpio.PinIO  // Reset pin (optional)
	led gpio.PinOut // Backlight pin (optional)

	// Largest single bus write the connection accepts
	maxTxSize int

	// Clock for the settle delays during initialization
	clock clock.Clock

	// Drawing surface geometry (landscape)
	rect image.Rectangle

	// Shadow of the entry mode register; the burst coordinate transform
	// is derived from it
	mode uint16

	// Last colour mode set through DisplayControl
	colorMode ColorMode

	// DMA transfer channel and state machine
	xfer  dma.Channel
	state atomic.Int32 // transferState
	cb    func(error)

	// Scratch for one register word
	buf [2]byte

	// State
	halted bool
}

// NewSPI creates a new ILI9225 device connected via SPI.
//
// The SPI port is configured for Mode0 (CPOL=0, CPHA=0) and 8-bit
// transfers. The rs (register select) and cs (chip select) pins are both
// driven by the driver: rs distinguishes register indexes from data, cs
// frames transactions that span several bus writes. Wire the display's CS
// to a spare GPIO, not to the port's hardware chip select.
//
// opts can be nil to use defaults.
func NewSPI(p spi.Port, rs, cs gpio.PinOut, opts *Opts) (*Dev, error) {
	if rs == nil {
		return nil, errors.New("ili9225: rs pin is required")
	}
	if cs == nil {
		return nil, errors.New("ili9225: cs pin is required")
	}
	if opts == nil {
		opts = &Opts{}
	}
	freq := opts.Freq
	if freq == 0 {
		freq = 30 * physic.MegaHertz
	}

	c, err := p.Connect(freq, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	maxTxSize := 0
	if limits, ok := c.(conn.Limits); ok {
		maxTxSize = limits.MaxTxSize()
	}
	if maxTxSize == 0 {
		maxTxSize = 4096 // Linux spidev default.
	}

	xfer := opts.DMA
	if xfer == nil {
		xfer = dma.NewSPIChannel(c)
	}

	d := &Dev{
		c:         c,
		rs:        rs,
		cs:        cs,
		rst:       opts.RST,
		led:       opts.LED,
		xfer:      xfer,
		maxTxSize: maxTxSize,
		clock:     clock.New(),
		rect:      image.Rect(0, 0, NativeHeight, NativeWidth),
		mode:      defaultEntryMode,
	}

	if err := d.init(opts.VerifyID); err != nil {
		return nil, err
	}

	return d, nil
}

// init runs the power-up sequence. Stage order and the settle delays
// between stages are chip requirements.
func (d *Dev) init(verify bool) error {
	// Arm the control pins. RST must be high before it can be pulsed.
	if d.rst != nil {
		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ili9225: failed to pull RST high: %w", err)
		}
	}
	if err := d.cs.Out(gpio.High); err != nil {
		return fmt.Errorf("ili9225: failed to pull CS high: %w", err)
	}
	if err := d.rs.Out(gpio.Low); err != nil {
		return fmt.Errorf("ili9225: failed to pull RS low: %w", err)
	}
	if d.led != nil {
		if err := d.led.Out(gpio.Low); err != nil {
			return fmt.Errorf("ili9225: failed to switch backlight off: %w", err)
		}
	}
	d.clock.Sleep(armSettle)

	// Hardware reset pulse, or a soft reset when no pin is wired.
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ili9225: failed to pull RST low: %w", err)
		}
		d.clock.Sleep(resetHold)
		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ili9225: failed to pull RST high: %w", err)
		}
	} else {
		if err := d.setRegister(regSoftReset, softResetKey); err != nil {
			return err
		}
	}
	d.clock.Sleep(resetSettle)

	for _, stage := range initSequence {
		for _, rv := range stage.regs {
			if err := d.setRegister(rv.reg, rv.val); err != nil {
				return err
			}
		}
		d.clock.Sleep(stage.settle)
	}

	if d.led != nil {
		if err := d.led.Out(gpio.High); err != nil {
			return fmt.Errorf("ili9225: failed to switch backlight on: %w", err)
		}
	}

	if verify {
		id, err := d.DriverCode()
		if err != nil {
			return err
		}
		if id != deviceID {
			return fmt.Errorf("ili9225: unexpected device ID 0x%04X", id)
		}
	}

	// The DMA channel is configured once here and only re-armed with a
	// new buffer on each DMAWrite.
	if d.xfer != nil {
		if err := d.xfer.Configure(dma.Config{Width: dma.Width16}); err != nil {
			return fmt.Errorf("ili9225: failed to configure the DMA channel: %w", err)
		}
		d.xfer.Bind(d.dmaFinish)
	}

	return nil
}

// writeRegister transmits a 16-bit register index with rs held low.
func (d *Dev) writeRegister(reg uint16) error {
	if err := d.rs.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.cs.Out(gpio.Low); err != nil {
		return err
	}
	d.buf[0] = byte(reg >> 8)
	d.buf[1] = byte(reg)
	if err := d.c.Tx(d.buf[:], nil); err != nil {
		return err
	}
	return d.cs.Out(gpio.High)
}

// writeData transmits a 16-bit data word with rs held high.
func (d *Dev) writeData(val uint16) error {
	if err := d.rs.Out(gpio.High); err != nil {
		return err
	}
	if err := d.cs.Out(gpio.Low); err != nil {
		return err
	}
	d.buf[0] = byte(val >> 8)
	d.buf[1] = byte(val)
	if err := d.c.Tx(d.buf[:], nil); err != nil {
		return err
	}
	return d.cs.Out(gpio.High)
}

// setRegister writes val into the register at reg.
func (d *Dev) setRegister(reg, val uint16) error {
	if err := d.writeRegister(reg); err != nil {
		return err
	}
	return d.writeData(val)
}

// readData clocks one 16-bit word out of the chip with rs held high.
func (d *Dev) readData() (uint16, error) {
	if err := d.rs.Out(gpio.High); err != nil {
		return 0, err
	}
	if err := d.cs.Out(gpio.Low); err != nil {
		return 0, err
	}
	var rx [2]byte
	if err := d.c.Tx([]byte{0x00, 0x00}, rx[:]); err != nil {
		return 0, err
	}
	if err := d.cs.Out(gpio.High); err != nil {
		return 0, err
	}
	return uint16(rx[0])<<8 | uint16(rx[1]), nil
}

// getRegister reads back the register at reg.
func (d *Dev) getRegister(reg uint16) (uint16, error) {
	if err := d.writeRegister(reg); err != nil {
		return 0, err
	}
	return d.readData()
}

// writeBurst pushes raw bytes while an open burst holds the chip
// selected, splitting at the bus driver's transfer limit.
func (d *Dev) writeBurst(pix []byte) error {
	limit := d.maxTxSize &^ 1
	for len(pix) > 0 {
		n := len(pix)
		if limit > 0 && n > limit {
			n = limit
		}
		if err := d.c.Tx(pix[:n], nil); err != nil {
			return err
		}
		pix = pix[n:]
	}
	return nil
}

// WritePixels streams pixel words, two big endian bytes each, into
// graphics RAM at the current address. The whole burst is framed in a
// single chip select assertion.
func (d *Dev) WritePixels(pix []byte) error {
	if d.halted {
		return errors.New("ili9225: halted")
	}
	if len(pix) == 0 {
		return errors.New("ili9225: empty pixel buffer")
	}
	if len(pix)%2 != 0 {
		return errors.New("ili9225: pixel buffer must hold whole 16-bit words")
	}
	if err := d.WritePixelsStart(); err != nil {
		return err
	}
	if err := d.writeBurst(pix); err != nil {
		return err
	}
	return d.WritePixelsEnd()
}

// WritePixelsStart opens a pixel burst: it issues the graphics RAM write
// index and leaves the chip selected with rs high, so raw pixel words can
// follow over any number of bus writes. The burst must be closed with
// WritePixelsEnd before any other operation touches the bus.
func (d *Dev) WritePixelsStart() error {
	if d.halted {
		return errors.New("ili9225: halted")
	}
	if err := d.writeRegister(regGRAMReadWrite); err != nil {
		return err
	}
	if err := d.rs.Out(gpio.High); err != nil {
		return err
	}
	return d.cs.Out(gpio.Low)
}

// WritePixelsEnd closes a pixel burst by releasing the chip select.
func (d *Dev) WritePixelsEnd() error {
	return d.cs.Out(gpio.High)
}

// DriverCode reads the chip identification register. A genuine ILI9225
// answers 0x9225.
func (d *Dev) DriverCode() (uint16, error) {
	return d.getRegister(regDriverCodeRead)
}

// DrivingLine reads which gate line the panel is driving right now.
func (d *Dev) DrivingLine() (int, error) {
	line, err := d.readData()
	if err != nil {
		return 0, err
	}
	return int(line >> 8), nil
}

// SoftReset resets the chip through the soft reset register instead of
// the reset pin. The chip needs the full initialization sequence to be
// run again afterwards.
func (d *Dev) SoftReset() error {
	return d.setRegister(regSoftReset, softResetKey)
}

// ColorMode selects the colour depth the panel displays.
type ColorMode uint8

const (
	// ColorModeFull drives the panel in full colour.
	ColorModeFull ColorMode = 0
	// ColorMode8 limits the panel to the 8 basic colours.
	ColorMode8 ColorMode = 1
)

// DisplayControl switches the display outputs on with the given
// inversion and colour mode.
func (d *Dev) DisplayControl(invert bool, mode ColorMode) error {
	if d.halted {
		return errors.New("ili9225: halted")
	}
	val := uint16(0x0013)
	if invert {
		val |= 1 << 2
	}
	val |= uint16(mode) << 3
	if err := d.setRegister(regDisplayCtrl, val); err != nil {
		return err
	}
	d.colorMode = mode
	return nil
}

// Invert inverts the display colours (black becomes white and vice
// versa).
func (d *Dev) Invert(invert bool) error {
	return d.DisplayControl(invert, d.colorMode)
}

// PowerControl sets the gate driver strength and optionally puts the
// chip in standby. Graphics RAM is retained in standby.
func (d *Dev) PowerControl(drive uint8, standby bool) error {
	if d.halted {
		return errors.New("ili9225: halted")
	}
	val := uint16(drive) << 8
	if standby {
		val |= 1
	}
	return d.setRegister(regPowerCtrl1, val)
}

// SetGateScan restricts the gate scan to the lines between start and
// end. Positions are rounded down to blocks of 8 lines.
func (d *Dev) SetGateScan(start, end int) error {
	if d.halted {
		return errors.New("ili9225: halted")
	}
	if start < 0 || end < start || end >= NativeHeight {
		return errors.New("ili9225: gate scan range out of range")
	}
	if err := d.setRegister(regDriverOutputCtrl, 0x0100|uint16(end/8)); err != nil {
		return err
	}
	return d.setRegister(regGateScanCtrl, uint16(start/8))
}

// SetDriveFreq selects the oscillator frequency setting, 0 through 15.
// Higher settings raise the frame rate and the power draw.
func (d *Dev) SetDriveFreq(f uint8) error {
	if d.halted {
		return errors.New("ili9225: halted")
	}
	return d.setRegister(regOscCtrl, uint16(f&0x0F)<<8|1)
}

// Scroll shifts the scan of the gate lines between start and end by step
// lines, wrapping inside the region. Graphics RAM is unchanged; a step
// of 0 restores the normal scan.
func (d *Dev) Scroll(start, end, step int) error {
	if d.halted {
		return errors.New("ili9225: halted")
	}
	if start < 0 || end < start || end >= NativeHeight {
		return errors.New("ili9225: scroll range out of range")
	}
	if step < 0 || step >= NativeHeight {
		return errors.New("ili9225: scroll step out of range")
	}
	if err := d.setRegister(regVertScrollCtrl1, uint16(end)); err != nil {
		return err
	}
	if err := d.setRegister(regVertScrollCtrl2, uint16(start)); err != nil {
		return err
	}
	return d.setRegister(regVertScrollCtrl3, uint16(step))
}

// StopScroll stops scrolling and resets the scan to the full screen.
func (d *Dev) StopScroll() error {
	return d.Scroll(0, NativeHeight-1, 0)
}

// Halt blanks the display, switches the backlight off and puts the chip
// in standby. After calling Halt the device rejects further drawing
// calls until it is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	var err error
	if d.led != nil {
		err = multierr.Append(err, d.led.Out(gpio.Low))
	}
	err = multierr.Append(err, d.setRegister(regDisplayCtrl, 0x0000))
	err = multierr.Append(err, d.setRegister(regPowerCtrl1, 0x0001))
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ili9225.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
