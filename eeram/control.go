package eeram

// Control register layout (sub-address 0x00 at the control device
// address):
//
//	bit 0    EVENT  hardware event detect
//	bit 1    ASE    auto-store enable
//	bits 2-4 PRO    write-protect level
//	bit 7    AM     array mismatch (read-only; 0 means SRAM == EEPROM)
const (
	controlSubAddr byte = 0x00

	eventBit     byte = 0x01
	autoStoreBit byte = 0x02
	protectMask  byte = 0x1C
	mismatchBit  byte = 0x80

	protectShift = 2
)

// Store/recall command bytes, sent to the control device address.
const (
	commandPrefix byte = 0x55
	commandStore  byte = 0x33
	commandRecall byte = 0xDD
)

func (d *Device) readControlRegister() (byte, error) {
	d.bus.BeginTransmission(d.controlAddr)
	d.bus.Write([]byte{controlSubAddr})
	if err := d.bus.EndTransmission().Err(); err != nil {
		return 0, err
	}

	if avail := d.bus.RequestFrom(d.controlAddr, 1); avail < 1 {
		return 0, i2cShortRead(1, avail)
	}
	return d.bus.ReadByte(), nil
}

func (d *Device) writeControlRegister(v byte) error {
	d.bus.BeginTransmission(d.controlAddr)
	d.bus.Write([]byte{controlSubAddr, v})
	return d.bus.EndTransmission().Err()
}

// updateControlRegister reads the register, applies f, and writes the
// result back. The two transactions are not atomic with respect to
// another bus master.
func (d *Device) updateControlRegister(f func(byte) byte) error {
	reg, err := d.readControlRegister()
	if err != nil {
		return err
	}
	return d.writeControlRegister(f(reg))
}

// AutoStore reports whether the chip saves SRAM to EEPROM automatically
// on power loss.
func (d *Device) AutoStore() (bool, error) {
	reg, err := d.readControlRegister()
	return reg&autoStoreBit != 0, err
}

// SetAutoStore enables or disables automatic store on power loss.
func (d *Device) SetAutoStore(enable bool) error {
	return d.updateControlRegister(func(reg byte) byte {
		if enable {
			return reg | autoStoreBit
		}
		return reg &^ autoStoreBit
	})
}

// WriteProtect returns the current write-protect level (0-7). Level 0
// protects nothing; each level up doubles the protected upper fraction
// of the array, up to level 7 protecting all of it.
func (d *Device) WriteProtect() (uint8, error) {
	reg, err := d.readControlRegister()
	return (reg & protectMask) >> protectShift, err
}

// SetWriteProtect sets the write-protect level. Levels above 7 yield
// ErrProtectLevel without touching the chip.
func (d *Device) SetWriteProtect(level uint8) error {
	if level > 7 {
		return ErrProtectLevel
	}
	return d.updateControlRegister(func(reg byte) byte {
		return (reg &^ protectMask) | (level << protectShift)
	})
}

// EventBit reports the state of the hardware event detect bit.
func (d *Device) EventBit() (bool, error) {
	reg, err := d.readControlRegister()
	return reg&eventBit != 0, err
}

// SetEventBit sets or clears the hardware event detect bit.
func (d *Device) SetEventBit(set bool) error {
	return d.updateControlRegister(func(reg byte) byte {
		if set {
			return reg | eventBit
		}
		return reg &^ eventBit
	})
}

// MatchStatus reports whether the SRAM array and its EEPROM shadow hold
// the same contents.
func (d *Device) MatchStatus() (bool, error) {
	reg, err := d.readControlRegister()
	return reg&mismatchBit == 0, err
}

// Store commands the chip to copy the SRAM array into EEPROM.
func (d *Device) Store() error {
	return d.command(commandStore)
}

// Recall commands the chip to copy the EEPROM shadow back into SRAM.
func (d *Device) Recall() error {
	return d.command(commandRecall)
}

func (d *Device) command(cmd byte) error {
	d.bus.BeginTransmission(d.controlAddr)
	d.bus.Write([]byte{commandPrefix, cmd})
	return d.bus.EndTransmission().Err()
}
