package eeram

import (
	"bytes"
	"errors"
	"testing"

	"eeram47/i2c"
	"eeram47/i2c/mock"
)

func newTestDevice(t *testing.T, size Size) (*Device, *mock.Bus) {
	t.Helper()
	kbits := 16
	if size == Size4Kbit {
		kbits = 4
	}
	bus := mock.NewBus(kbits, false, false)
	d, err := New(bus, Config{Size: size})
	if err != nil {
		t.Fatal(err)
	}
	return d, bus
}

func TestByteRoundTrip(t *testing.T) {
	d, _ := newTestDevice(t, Size16Kbit)

	addrs := []uint16{0x0000, 0x0001, 0x01FF, 0x0400, 0x07FF}
	for _, addr := range addrs {
		for _, v := range []byte{0x00, 0x01, 0x7F, 0xAA, 0xFF} {
			if err := d.WriteByte(addr, v); err != nil {
				t.Fatalf("WriteByte(%#04x, %#02x): %v", addr, v, err)
			}
			actual, err := d.ReadByte(addr)
			if err != nil {
				t.Fatalf("ReadByte(%#04x): %v", addr, err)
			}
			if actual != v {
				t.Errorf("ReadByte(%#04x), actual = %#02x, expected = %#02x", addr, actual, v)
			}
		}
	}
}

func TestOutOfRangeShortCircuits(t *testing.T) {
	tests := []struct {
		name string
		size Size
		addr uint16
	}{
		{"16 kbit just past end", Size16Kbit, 0x0800},
		{"16 kbit high address", Size16Kbit, 0xFFFF},
		{"4 kbit just past end", Size4Kbit, 0x0200},
		{"4 kbit in 16 kbit range", Size4Kbit, 0x07FF},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, bus := newTestDevice(t, test.size)

			if err := d.WriteByte(test.addr, 0x42); err != ErrAddressRange {
				t.Errorf("WriteByte error, actual = %v, expected = %v", err, ErrAddressRange)
			}
			if _, err := d.ReadByte(test.addr); err != ErrAddressRange {
				t.Errorf("ReadByte error, actual = %v, expected = %v", err, ErrAddressRange)
			}
			if err := d.WriteBlock(test.addr, []byte{1, 2}); err != ErrAddressRange {
				t.Errorf("WriteBlock error, actual = %v, expected = %v", err, ErrAddressRange)
			}
			if err := d.ReadBlock(test.addr, make([]byte, 2)); err != ErrAddressRange {
				t.Errorf("ReadBlock error, actual = %v, expected = %v", err, ErrAddressRange)
			}

			// No wire traffic may occur for a rejected address.
			if actual := len(bus.Transactions); actual != 0 {
				t.Errorf("transactions issued, actual = %d, expected = 0", actual)
			}
			if actual := len(bus.Requests); actual != 0 {
				t.Errorf("read requests issued, actual = %d, expected = 0", actual)
			}
		})
	}
}

func TestWriteByteTransactionShape(t *testing.T) {
	d, bus := newTestDevice(t, Size16Kbit)

	if err := d.WriteByte(0x0123, 0x42); err != nil {
		t.Fatal(err)
	}

	if len(bus.Transactions) != 1 {
		t.Fatalf("transaction count, actual = %d, expected = 1", len(bus.Transactions))
	}
	tx := bus.Transactions[0]
	if actual, expected := tx.Addr, uint8(0x50); actual != expected {
		t.Errorf("transaction address, actual = %#02x, expected = %#02x", actual, expected)
	}
	// Big-endian address on the wire: high byte first.
	if expected := []byte{0x01, 0x23, 0x42}; !bytes.Equal(tx.Bytes, expected) {
		t.Errorf("transaction bytes, actual = % x, expected = % x", tx.Bytes, expected)
	}
}

func TestWriteBlockTransactionShape(t *testing.T) {
	for _, n := range []int{0, 1, 2, 31, 94} {
		d, bus := newTestDevice(t, Size16Kbit)

		payload := make([]byte, n)
		for i := range payload {
			payload[i] = byte(i)
		}

		if err := d.WriteBlock(0x0200, payload); err != nil {
			t.Fatalf("WriteBlock(n=%d): %v", n, err)
		}

		if len(bus.Transactions) != 1 {
			t.Fatalf("transaction count (n=%d), actual = %d, expected = 1", n, len(bus.Transactions))
		}
		tx := bus.Transactions[0]
		expected := append([]byte{0x02, 0x00}, payload...)
		if !bytes.Equal(tx.Bytes, expected) {
			t.Errorf("transaction bytes (n=%d), actual = % x, expected = % x", n, tx.Bytes, expected)
		}
	}
}

func TestBlockRoundTrip(t *testing.T) {
	d, _ := newTestDevice(t, Size4Kbit)

	payload := []byte("the quick brown fox jumps over the lazy dog")
	if err := d.WriteBlock(0x0100, payload); err != nil {
		t.Fatal(err)
	}

	actual := make([]byte, len(payload))
	if err := d.ReadBlock(0x0100, actual); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(actual, payload) {
		t.Errorf("ReadBlock, actual = %q, expected = %q", actual, payload)
	}
}

func TestReadBlockShortRead(t *testing.T) {
	d, bus := newTestDevice(t, Size16Kbit)
	bus.ShortReads = true

	err := d.ReadBlock(0x0000, make([]byte, 4))
	if !errors.Is(err, i2c.ErrBus) {
		t.Errorf("ReadBlock error, actual = %v, expected wrapped %v", err, i2c.ErrBus)
	}
}

func TestTransportErrorsSurface(t *testing.T) {
	tests := []struct {
		name     string
		status   i2c.Status
		expected error
	}{
		{"address NACK", i2c.StatusAddrNACK, i2c.ErrAddrNACK},
		{"data NACK", i2c.StatusDataNACK, i2c.ErrDataNACK},
		{"data too long", i2c.StatusDataTooLong, i2c.ErrDataTooLong},
		{"other", i2c.StatusOther, i2c.ErrBus},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, bus := newTestDevice(t, Size16Kbit)
			bus.FailNext = test.status

			if err := d.WriteByte(0x0000, 0x01); err != test.expected {
				t.Errorf("WriteByte error, actual = %v, expected = %v", err, test.expected)
			}
		})
	}
}
