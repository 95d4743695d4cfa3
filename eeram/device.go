// Package eeram drives Microchip 47x04 and 47x16 I2C serial EERAM chips
// (47L04, 47C04, 47L16, 47C16): an SRAM array with an EEPROM shadow that
// is saved automatically on power loss or on command.
//
// A Device speaks to the chip through two 7-bit bus addresses: one for
// the SRAM array and one for the control register. Both are derived from
// the chip's A0/A1 address pin strapping.
package eeram

import (
	"eeram47/i2c"
)

// Size is the declared chip capacity in kilobits. Only the two members
// of the 47x family are valid.
type Size int

const (
	Size4Kbit  Size = 4  // 47L04/47C04: addresses 0x0000-0x01FF
	Size16Kbit Size = 16 // 47L16/47C16: addresses 0x0000-0x07FF
)

const (
	sramAddrBase    uint8 = 0x50 // 0b1010_xx0 >> 1
	controlAddrBase uint8 = 0x18 // 0b0011_xx0 >> 1

	mask16Kbit uint8 = 0xF8
	mask4Kbit  uint8 = 0xFE
)

// Config selects which chip on the bus to talk to and how big it is.
// A0 and A1 mirror the chip's address pin strapping.
type Config struct {
	A0   bool
	A1   bool
	Size Size
}

// Device is a single EERAM chip on a bus. It holds no chip state beyond
// the computed addresses and capacity mask; the memory array and control
// register live on the chip itself.
//
// A Device is not safe for concurrent use: the control-register updates
// are multi-transaction read-modify-write sequences with no locking.
type Device struct {
	bus i2c.Bus

	sramAddr    uint8
	controlAddr uint8

	// ANDed against the high byte of a data address; a nonzero result
	// means the address is beyond the chip's array.
	addrMask uint8
}

// New computes the device addresses for cfg and returns a Device bound
// to bus. An unsupported Size yields ErrInvalidSize; the returned Device
// is still usable but bound-checks with the conservative 16Kbit mask.
func New(bus i2c.Bus, cfg Config) (*Device, error) {
	sel := selector(cfg.A0, cfg.A1)
	d := &Device{
		bus:         bus,
		sramAddr:    sramAddrBase | sel,
		controlAddr: controlAddrBase | sel,
	}

	switch cfg.Size {
	case Size16Kbit:
		d.addrMask = mask16Kbit
	case Size4Kbit:
		d.addrMask = mask4Kbit
	default:
		d.addrMask = mask16Kbit
		return d, ErrInvalidSize
	}

	return d, nil
}

func selector(a0, a1 bool) uint8 {
	var sel uint8
	if a0 {
		sel |= 2
	}
	if a1 {
		sel |= 1
	}
	return sel << 1
}

// inRange reports whether a data address falls inside the chip's array.
func (d *Device) inRange(addr uint16) bool {
	return uint8(addr>>8)&d.addrMask == 0
}
