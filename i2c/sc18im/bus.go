package sc18im

import (
	log "github.com/sirupsen/logrus"
	"go.bug.st/serial"

	"eeram47/i2c"
)

// Bridge framing bytes and registers.
const (
	frameStart    byte = 'S'
	frameStop     byte = 'P'
	frameReadReg  byte = 'R'
	regI2CStat    byte = 0x0A
	readDirection byte = 0x01 // ORed into the shifted bus address

	// I2CStat values reported by the bridge after a transaction.
	statOK          byte = 0xF0
	statNACKAddress byte = 0xF1
	statNACKData    byte = 0xF2
	statTimeout     byte = 0xF8

	// The bridge buffers at most this many payload bytes per
	// transaction.
	maxPayload = 96
)

type Bus struct {
	f serial.Port

	txAddr uint8
	txBuf  []byte
	rxBuf  []byte
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
	if len(b.txBuf) > maxPayload {
		b.txBuf = b.txBuf[:0]
		return i2c.StatusDataTooLong
	}

	frame := writeFrame(b.txAddr, b.txBuf)
	b.txBuf = b.txBuf[:0]

	if err := sendSerial(b.f, frame); err != nil {
		log.Debugf("sc18im: send failed: %v", err)
		return i2c.StatusOther
	}
	return b.transactionStatus()
}

// transactionStatus reads the bridge's I2CStat register and maps it onto
// the transport status codes.
func (b *Bus) transactionStatus() i2c.Status {
	if err := sendSerial(b.f, []byte{frameReadReg, regI2CStat, frameStop}); err != nil {
		log.Debugf("sc18im: status query failed: %v", err)
		return i2c.StatusOther
	}

	stat := make([]byte, 1)
	if err := recvSerial(b.f, stat, 1); err != nil {
		log.Debugf("sc18im: status read failed: %v", err)
		return i2c.StatusOther
	}

	switch stat[0] {
	case statOK:
		return i2c.OK
	case statNACKAddress:
		return i2c.StatusAddrNACK
	case statNACKData:
		return i2c.StatusDataNACK
	case statTimeout:
		return i2c.StatusOther
	}
	return i2c.StatusOther
}

func (b *Bus) RequestFrom(addr uint8, n int) int {
	if n <= 0 || n > maxPayload {
		return 0
	}

	if err := sendSerial(b.f, readFrame(addr, n)); err != nil {
		log.Debugf("sc18im: read request failed: %v", err)
		return 0
	}

	if cap(b.rxBuf) < n {
		b.rxBuf = make([]byte, n)
	}
	b.rxBuf = b.rxBuf[:n]
	if err := recvSerial(b.f, b.rxBuf, n); err != nil {
		log.Debugf("sc18im: read failed: %v", err)
		b.rxBuf = b.rxBuf[:0]
		return 0
	}
	return n
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
	return b.f.Close()
}

// writeFrame builds a bridge write transaction: start, shifted address
// with the write direction, payload length, payload, stop.
func writeFrame(addr uint8, payload []byte) []byte {
	frame := make([]byte, 0, len(payload)+4)
	frame = append(frame, frameStart, addr<<1, byte(len(payload)))
	frame = append(frame, payload...)
	return append(frame, frameStop)
}

// readFrame builds a bridge read transaction for n bytes.
func readFrame(addr uint8, n int) []byte {
	return []byte{frameStart, addr<<1 | readDirection, byte(n), frameStop}
}
