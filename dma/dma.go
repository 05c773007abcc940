// Package dma models a memory-to-peripheral bulk transfer channel.
//
// The ILI9225 driver pushes pixel bursts through a single shared channel so
// the caller does not block on large writes. On microcontrollers this is a
// hardware DMA engine paced by the bus's data-request line; on a host the
// same contract is provided by SPIChannel, which copies the buffer to the
// SPI connection from a dedicated goroutine and reports completion through
// a bound handler, standing in for the completion interrupt.
package dma

import (
	"errors"
	"sync"

	"periph.io/x/conn/v3"
)

// Width is the element size moved per transfer beat, in bytes.
type Width uint8

const (
	Width8  Width = 1
	Width16 Width = 2
	Width32 Width = 4
)

// Config holds the per-channel parameters that stay fixed across
// transfers. A channel is configured once and then re-armed with a new
// buffer for every transfer.
type Config struct {
	// Width is the element size. Buffers passed to Start must be a
	// multiple of it.
	Width Width
}

// Event reports the completion of one transfer.
type Event struct {
	// Elems is the number of elements moved.
	Elems int
	// Err is the bus error that ended the transfer, nil on success.
	Err error
}

// Handler consumes completion events. It runs on the channel's event
// goroutine and must not block; the channel is idle again by the time the
// handler runs, so a handler may arm the next transfer.
type Handler func(Event)

// IRQ selects which of the two interrupt lines a channel's completion
// events are routed to. On hosts without interrupt routing the selector
// is validated but both lines behave the same.
type IRQ uint8

const (
	IRQ0 IRQ = 0
	IRQ1 IRQ = 1
)

// Channel is a single one-direction transfer channel feeding a
// peripheral. Implementations deliver exactly one Event per successful
// Start call.
type Channel interface {
	// Configure fixes the element width. It must be called before the
	// first Start and must not be called while a transfer is in flight.
	Configure(Config) error
	// Bind registers the completion handler, replacing any previous one.
	// Rebinding while a transfer is in flight is not supported.
	Bind(Handler)
	// Start begins moving buf to the peripheral and returns immediately.
	// buf must stay unmodified until the completion event arrives.
	Start(buf []byte) error
}

// SPIChannel is a Channel that copies buffers to an SPI connection.
type SPIChannel struct {
	c conn.Conn

	mu      sync.Mutex
	width   Width
	handler Handler
	busy    bool
}

// NewSPIChannel returns an unconfigured channel writing to c.
func NewSPIChannel(c conn.Conn) *SPIChannel {
	return &SPIChannel{c: c}
}

// Configure implements Channel.
func (ch *SPIChannel) Configure(cfg Config) error {
	switch cfg.Width {
	case Width8, Width16, Width32:
	default:
		return errors.New("dma: unsupported element width")
	}

	ch.mu.Lock()
	defer ch.mu.Unlock()
	if ch.busy {
		return errors.New("dma: transfer in flight")
	}
	ch.width = cfg.Width
	return nil
}

// Bind implements Channel.
func (ch *SPIChannel) Bind(h Handler) {
	ch.mu.Lock()
	ch.handler = h
	ch.mu.Unlock()
}

// Start implements Channel. The returned error covers arming only;
// errors from the transfer itself are delivered in the completion event.
func (ch *SPIChannel) Start(buf []byte) error {
	ch.mu.Lock()
	if ch.width == 0 {
		ch.mu.Unlock()
		return errors.New("dma: channel not configured")
	}
	if len(buf) == 0 {
		ch.mu.Unlock()
		return errors.New("dma: empty buffer")
	}
	if len(buf)%int(ch.width) != 0 {
		ch.mu.Unlock()
		return errors.New("dma: buffer not a multiple of the element width")
	}
	if ch.busy {
		ch.mu.Unlock()
		return errors.New("dma: transfer in flight")
	}
	ch.busy = true
	elems := len(buf) / int(ch.width)
	ch.mu.Unlock()

	go func() {
		err := ch.c.Tx(buf, nil)

		ch.mu.Lock()
		h := ch.handler
		ch.busy = false
		ch.mu.Unlock()

		if h != nil {
			h(Event{Elems: elems, Err: err})
		}
	}()
	return nil
}
