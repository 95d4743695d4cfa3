package eeram

import (
	"errors"
	"fmt"

	"eeram47/i2c"
)

var (
	// ErrAddressRange is returned when a data address falls outside the
	// chip's array. No bus transaction is issued.
	ErrAddressRange = errors.New("eeram: address out of range")

	// ErrInvalidSize is returned by New for a capacity other than
	// Size4Kbit or Size16Kbit.
	ErrInvalidSize = errors.New("eeram: unsupported chip size (want 4 or 16 kbit)")

	// ErrProtectLevel is returned by SetWriteProtect for a level above 7.
	// The control register is left untouched.
	ErrProtectLevel = errors.New("eeram: write-protect level out of range (want 0-7)")
)

// i2cShortRead wraps i2c.ErrBus for a read transaction that returned
// fewer bytes than requested.
func i2cShortRead(want, got int) error {
	return fmt.Errorf("%w: short read, requested %d bytes, got %d", i2c.ErrBus, want, got)
}
