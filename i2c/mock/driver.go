package mock

import (
	"strconv"

	"eeram47/i2c"
)

const driverName = "mock"

type Driver struct{}

// Open accepts the chip capacity in kbits as the port name ("16" or
// "4"); empty means 16.
func (d *Driver) Open(name string) (i2c.Bus, error) {
	size := 16
	if name != "" {
		if n, err := strconv.Atoi(name); err == nil {
			size = n
		}
	}
	return NewBus(size, false, false), nil
}

func init() {
	i2c.Register(driverName, &Driver{})
}
