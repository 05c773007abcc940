package ili9225

import (
	"errors"

	"go.uber.org/multierr"

	"periph.io/x/devices/v3/ili9225/dma"
)

// Transfer state machine for the asynchronous write path. States only
// move forward; a transfer that fails to arm unwinds to idle after
// closing the framing it opened.
const (
	xferIdle int32 = iota
	xferFramed
	xferArmed
	xferCompleting
)

// SetDMAHandler registers the callback notified when a DMAWrite
// completes, after the burst framing has been closed. line selects the
// interrupt line completions are routed to.
//
// The callback runs on the transfer channel's event goroutine. It must
// not block; by the time it runs the transfer state is idle again, so it
// may start the next DMAWrite directly. Register the handler before the
// first DMAWrite; replacing it while a transfer is in flight is not
// supported.
func (d *Dev) SetDMAHandler(line dma.IRQ, cb func(error)) error {
	if d.xfer == nil {
		return errors.New("ili9225: no DMA channel configured")
	}
	if line != dma.IRQ0 && line != dma.IRQ1 {
		return errors.New("ili9225: invalid DMA interrupt line")
	}
	d.cb = cb
	return nil
}

// DMAWrite pushes pixel words into graphics RAM like WritePixels but
// returns as soon as the transfer channel has been armed. The registered
// completion callback fires exactly once, after the words have gone out
// and the burst framing is closed again. pix must stay untouched until
// then.
//
// Starting another DMAWrite before the previous one's callback has fired
// fails: the chip select framing is still owned by the transfer in
// flight. There is no completion timeout, so a channel that never
// delivers its event leaves the device busy until it does.
func (d *Dev) DMAWrite(pix []byte) error {
	if d.halted {
		return errors.New("ili9225: halted")
	}
	if d.xfer == nil {
		return errors.New("ili9225: no DMA channel configured")
	}
	if len(pix) == 0 {
		return errors.New("ili9225: empty pixel buffer")
	}
	if len(pix)%2 != 0 {
		return errors.New("ili9225: pixel buffer must hold whole 16-bit words")
	}
	if !d.state.CompareAndSwap(xferIdle, xferFramed) {
		return errors.New("ili9225: DMA transfer already in flight")
	}
	if err := d.WritePixelsStart(); err != nil {
		d.state.Store(xferIdle)
		return err
	}
	// Armed before Start: the channel may complete, and call dmaFinish,
	// before Start returns.
	d.state.Store(xferArmed)
	if err := d.xfer.Start(pix); err != nil {
		err = multierr.Append(err, d.WritePixelsEnd())
		d.state.Store(xferIdle)
		return err
	}
	return nil
}

// dmaFinish is bound to the transfer channel during initialization. It
// closes the burst framing the matching DMAWrite opened, returns the
// state machine to idle and only then notifies the registered callback.
func (d *Dev) dmaFinish(ev dma.Event) {
	if !d.state.CompareAndSwap(xferArmed, xferCompleting) {
		return
	}
	err := multierr.Append(ev.Err, d.WritePixelsEnd())
	d.state.Store(xferIdle)
	if d.cb != nil {
		d.cb(err)
	}
}
