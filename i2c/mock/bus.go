// Package mock implements i2c.Bus over an in-memory model of a 47x04 or
// 47x16 EERAM chip: the SRAM array, its EEPROM shadow, the control
// register, and the store/recall commands. Every transaction is recorded
// so tests can assert exact wire traffic.
package mock

import (
	"eeram47/i2c"
)

// Transaction is one flushed write transaction: the 7-bit target address
// and the raw bytes that were sent.
type Transaction struct {
	Addr  uint8
	Bytes []byte
}

// Request is one read transaction: the 7-bit target address and the
// number of bytes asked for.
type Request struct {
	Addr uint8
	N    int
}

type Bus struct {
	sram   []byte
	eeprom []byte

	// control register; bit 7 is the array-mismatch flag.
	control byte

	// 16-bit address latch, auto-incrementing across sequential reads
	// and writes.
	latch uint16

	sramAddr    uint8
	controlAddr uint8

	txAddr uint8
	txBuf  []byte
	rxBuf  []byte

	closed bool

	// Wire traffic log.
	Transactions []Transaction
	Requests     []Request

	// FailNext, when not OK, is returned by the next EndTransmission
	// instead of executing the transaction.
	FailNext i2c.Status

	// ShortReads makes RequestFrom report one byte fewer than asked.
	ShortReads bool
}

const (
	eventBit     byte = 0x01
	autoStoreBit byte = 0x02
	protectMask  byte = 0x1C
	mismatchBit  byte = 0x80
)

// NewBus returns a simulated chip of the given capacity, strapped to the
// given A0/A1 pin values.
func NewBus(sizeKbits int, a0, a1 bool) *Bus {
	n := 2048
	if sizeKbits == 4 {
		n = 512
	}

	var sel uint8
	if a0 {
		sel |= 2
	}
	if a1 {
		sel |= 1
	}
	sel <<= 1

	return &Bus{
		sram:        make([]byte, n),
		eeprom:      make([]byte, n),
		sramAddr:    0x50 | sel,
		controlAddr: 0x18 | sel,
	}
}

func (b *Bus) BeginTransmission(addr uint8) {
	b.txAddr = addr
	b.txBuf = b.txBuf[:0]
}

func (b *Bus) Write(p []byte) int {
	b.txBuf = append(b.txBuf, p...)
	return len(p)
}

func (b *Bus) EndTransmission() i2c.Status {
	sent := make([]byte, len(b.txBuf))
	copy(sent, b.txBuf)
	b.Transactions = append(b.Transactions, Transaction{Addr: b.txAddr, Bytes: sent})
	b.txBuf = b.txBuf[:0]

	if b.FailNext != i2c.OK {
		s := b.FailNext
		b.FailNext = i2c.OK
		return s
	}

	switch b.txAddr {
	case b.sramAddr:
		return b.sramTransaction(sent)
	case b.controlAddr:
		return b.controlTransaction(sent)
	}
	return i2c.StatusAddrNACK
}

func (b *Bus) sramTransaction(sent []byte) i2c.Status {
	if len(sent) < 2 {
		return i2c.StatusDataNACK
	}
	b.latch = uint16(sent[0])<<8 | uint16(sent[1])
	for _, v := range sent[2:] {
		b.writeSRAM(b.latch, v)
		b.latch++
	}
	return i2c.OK
}

func (b *Bus) controlTransaction(sent []byte) i2c.Status {
	switch {
	case len(sent) == 2 && sent[0] == 0x55:
		switch sent[1] {
		case 0x33:
			copy(b.eeprom, b.sram)
			b.control &^= mismatchBit
			return i2c.OK
		case 0xDD:
			copy(b.sram, b.eeprom)
			b.control &^= mismatchBit
			return i2c.OK
		}
		return i2c.StatusDataNACK

	case len(sent) == 1 && sent[0] == 0x00:
		// Register read setup; the data comes back via RequestFrom.
		return i2c.OK

	case len(sent) == 2 && sent[0] == 0x00:
		// Bit 7 is read-only.
		b.control = (sent[1] &^ mismatchBit) | (b.control & mismatchBit)
		return i2c.OK
	}
	return i2c.StatusDataNACK
}

// writeSRAM applies a single byte write, honoring the write-protect
// level and tracking the array-mismatch flag. Addresses wrap around the
// array like the chip's internal address counter.
func (b *Bus) writeSRAM(addr uint16, v byte) {
	i := int(addr) % len(b.sram)
	if i >= b.protectedStart() {
		return
	}
	if b.sram[i] != v {
		b.control |= mismatchBit
	}
	b.sram[i] = v
}

// protectedStart returns the first protected index. PRO level 0 protects
// nothing; level n protects the upper 2^(n-1)/64 of the array, so level
// 7 protects all of it.
func (b *Bus) protectedStart() int {
	level := uint((b.control & protectMask) >> 2)
	if level == 0 {
		return len(b.sram)
	}
	return len(b.sram) - len(b.sram)>>(7-level)
}

func (b *Bus) RequestFrom(addr uint8, n int) int {
	b.Requests = append(b.Requests, Request{Addr: addr, N: n})

	avail := n
	if b.ShortReads && avail > 0 {
		avail--
	}

	b.rxBuf = b.rxBuf[:0]
	switch addr {
	case b.sramAddr:
		for i := 0; i < avail; i++ {
			b.rxBuf = append(b.rxBuf, b.sram[int(b.latch)%len(b.sram)])
			b.latch++
		}
	case b.controlAddr:
		for i := 0; i < avail; i++ {
			b.rxBuf = append(b.rxBuf, b.control)
		}
	default:
		return 0
	}
	return avail
}

func (b *Bus) ReadByte() byte {
	if len(b.rxBuf) == 0 {
		return 0
	}
	v := b.rxBuf[0]
	b.rxBuf = b.rxBuf[1:]
	return v
}

func (b *Bus) Close() error {
	b.closed = true
	return nil
}

// PowerCycle models a power loss and restart. With auto-store enabled
// the SRAM array is saved to EEPROM on the way down; either way the chip
// recalls the EEPROM image on power-up.
func (b *Bus) PowerCycle() {
	if b.control&autoStoreBit != 0 {
		copy(b.eeprom, b.sram)
	}
	copy(b.sram, b.eeprom)
	b.control &^= mismatchBit
}

// SRAM exposes the simulated array for test assertions.
func (b *Bus) SRAM() []byte { return b.sram }

// Control exposes the simulated control register for test assertions.
func (b *Bus) Control() byte { return b.control }
