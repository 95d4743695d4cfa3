package eeram

// WriteByte stores v at the given SRAM address in a single transaction:
// high address byte, low address byte, then the data byte.
func (d *Device) WriteByte(addr uint16, v byte) error {
	if !d.inRange(addr) {
		return ErrAddressRange
	}

	d.bus.BeginTransmission(d.sramAddr)
	d.bus.Write([]byte{byte(addr >> 8), byte(addr), v})
	return d.bus.EndTransmission().Err()
}

// ReadByte returns the byte stored at the given SRAM address.
func (d *Device) ReadByte(addr uint16) (byte, error) {
	if !d.inRange(addr) {
		return 0, ErrAddressRange
	}

	// Address phase:
	d.bus.BeginTransmission(d.sramAddr)
	d.bus.Write([]byte{byte(addr >> 8), byte(addr)})
	if err := d.bus.EndTransmission().Err(); err != nil {
		return 0, err
	}

	// Data phase:
	if avail := d.bus.RequestFrom(d.sramAddr, 1); avail < 1 {
		return 0, i2cShortRead(1, avail)
	}
	return d.bus.ReadByte(), nil
}

// WriteBlock stores p starting at the given SRAM address, in one
// transaction carrying the two address bytes followed by the payload.
//
// Only the starting address is bound-checked; a block that runs past the
// end of the array wraps around inside the chip.
func (d *Device) WriteBlock(addr uint16, p []byte) error {
	if !d.inRange(addr) {
		return ErrAddressRange
	}

	d.bus.BeginTransmission(d.sramAddr)
	d.bus.Write([]byte{byte(addr >> 8), byte(addr)})
	d.bus.Write(p)
	return d.bus.EndTransmission().Err()
}

// ReadBlock fills p with len(p) bytes starting at the given SRAM
// address. As with WriteBlock, only the starting address is checked.
func (d *Device) ReadBlock(addr uint16, p []byte) error {
	if !d.inRange(addr) {
		return ErrAddressRange
	}

	d.bus.BeginTransmission(d.sramAddr)
	d.bus.Write([]byte{byte(addr >> 8), byte(addr)})
	if err := d.bus.EndTransmission().Err(); err != nil {
		return err
	}

	if avail := d.bus.RequestFrom(d.sramAddr, len(p)); avail < len(p) {
		return i2cShortRead(len(p), avail)
	}
	for i := range p {
		p[i] = d.bus.ReadByte()
	}
	return nil
}
