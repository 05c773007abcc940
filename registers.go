package ili9225

import "time"

// Register indexes of the ILI9225 instruction set.
const (
	regDriverCodeRead   = 0x00
	regDriverOutputCtrl = 0x01
	regLCDACDrivingCtrl = 0x02
	regEntryMode        = 0x03
	regDisplayCtrl      = 0x07
	regBlankPeriodCtrl  = 0x08
	regFrameCycleCtrl   = 0x0B
	regInterfaceCtrl    = 0x0C
	regOscCtrl          = 0x0F
	regPowerCtrl1       = 0x10
	regPowerCtrl2       = 0x11
	regPowerCtrl3       = 0x12
	regPowerCtrl4       = 0x13
	regPowerCtrl5       = 0x14
	regVCIRecycling     = 0x15
	regRAMAddrSet1      = 0x20
	regRAMAddrSet2      = 0x21
	regGRAMReadWrite    = 0x22
	regSoftReset        = 0x28
	regGateScanCtrl     = 0x30
	regVertScrollCtrl1  = 0x31
	regVertScrollCtrl2  = 0x32
	regVertScrollCtrl3  = 0x33
	regPartialDriving1  = 0x34
	regPartialDriving2  = 0x35
	regHorWindowAddr1   = 0x36
	regHorWindowAddr2   = 0x37
	regVertWindowAddr1  = 0x38
	regVertWindowAddr2  = 0x39
	regGammaCtrl1       = 0x50
	regGammaCtrl2       = 0x51
	regGammaCtrl3       = 0x52
	regGammaCtrl4       = 0x53
	regGammaCtrl5       = 0x54
	regGammaCtrl6       = 0x55
	regGammaCtrl7       = 0x56
	regGammaCtrl8       = 0x57
	regGammaCtrl9       = 0x58
	regGammaCtrl10      = 0x59
)

// deviceID is the value the driver code register reads back on a genuine
// chip.
const deviceID = 0x9225

// softResetKey is the only value the soft reset register accepts.
const softResetKey = 0x00CE

// defaultEntryMode selects a vertical image with incrementing address
// counters. The burst coordinate transform in graphics.go is derived from
// it and the two must never be changed independently.
const defaultEntryMode = 0x1018

// Power-up timing. The datasheet minimum for the reset pulse is 1ms; the
// driver holds longer.
const (
	armSettle   = 1 * time.Millisecond
	resetHold   = 10 * time.Millisecond
	resetSettle = 50 * time.Millisecond
)

// regValue is a single register write within an initialization stage.
type regValue struct {
	reg uint16
	val uint16
}

// initStage is a run of register writes followed by a settle delay the
// chip needs before the next stage may start.
type initStage struct {
	regs   []regValue
	settle time.Duration
}

// initSequence drives the chip from reset into an operating state. Stage
// order, register values and delays are fixed chip constants and must be
// reproduced bit for bit.
var initSequence = []initStage{
	{
		// Discharge all supplies before raising them.
		regs: []regValue{
			{regPowerCtrl1, 0x0000},
			{regPowerCtrl2, 0x0000},
			{regPowerCtrl3, 0x0000},
			{regPowerCtrl4, 0x0000},
			{regPowerCtrl5, 0x0000},
		},
		settle: 40 * time.Millisecond,
	},
	{
		// Operating voltages. VCI 2.58V, VGH/VGL from the 6x/-4x
		// multipliers, GVDD 4.68V, VCM 0.8030V, VML 1.104V, medium
		// fast driving. Control register 1 goes last.
		regs: []regValue{
			{regPowerCtrl2, 0x0018},
			{regPowerCtrl3, 0x6121},
			{regPowerCtrl4, 0x006F},
			{regPowerCtrl5, 0x495F},
			{regPowerCtrl1, 0x0800},
		},
		settle: 10 * time.Millisecond,
	},
	{
		// Automatic booster operation and amplifiers, VCI1 2.76V.
		regs: []regValue{
			{regPowerCtrl2, 0x103B},
		},
		settle: 50 * time.Millisecond,
	},
	{
		regs: []regValue{
			// Shift direction S528 to S1, 220 active lines.
			{regDriverOutputCtrl, 0x011C},
			// Line inversion off.
			{regLCDACDrivingCtrl, 0x0100},
			{regEntryMode, defaultEntryMode},
			// Outputs off while configuring.
			{regDisplayCtrl, 0x0000},
			// 8 line porches.
			{regBlankPeriodCtrl, 0x0808},
			// 1 clock delay to gate output and edge.
			{regFrameCycleCtrl, 0x1100},
			// RGB interface unused.
			{regInterfaceCtrl, 0x0000},
			// 266.6kHz oscillation.
			{regOscCtrl, 0x0701},
			// VCI recycling 2 clocks.
			{regVCIRecycling, 0x0020},
			// RAM address to the origin.
			{regRAMAddrSet1, 0x0000},
			{regRAMAddrSet2, 0x0000},
			// Scan, scroll and partial driving across the full
			// 220 line extent, no scroll step.
			{regGateScanCtrl, 0x0000},
			{regVertScrollCtrl1, 0x00DB},
			{regVertScrollCtrl2, 0x0000},
			{regVertScrollCtrl3, 0x0000},
			{regPartialDriving1, 0x00DB},
			{regPartialDriving2, 0x0000},
			// Window bounds at the full 176x220 screen.
			{regHorWindowAddr1, 0x00AF},
			{regHorWindowAddr2, 0x0000},
			{regVertWindowAddr1, 0x00DB},
			{regVertWindowAddr2, 0x0000},
			// Gamma curve.
			{regGammaCtrl1, 0x0000},
			{regGammaCtrl2, 0x0808},
			{regGammaCtrl3, 0x080A},
			{regGammaCtrl4, 0x000A},
			{regGammaCtrl5, 0x0A08},
			{regGammaCtrl6, 0x0808},
			{regGammaCtrl7, 0x0000},
			{regGammaCtrl8, 0x0A00},
			{regGammaCtrl9, 0x0710},
			{regGammaCtrl10, 0x0710},
			// Full colour.
			{regDisplayCtrl, 0x0012},
		},
		settle: 50 * time.Millisecond,
	},
	{
		// Display on with full colour and reversed greyscale.
		regs: []regValue{
			{regDisplayCtrl, 0x1017},
		},
		settle: 50 * time.Millisecond,
	},
}
