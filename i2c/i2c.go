package i2c

import (
	"fmt"
	"sort"
	"sync"
)

// Bus is a blocking, transactional two-wire master in the classic
// begin/write/end shape. A write transaction is opened with
// BeginTransmission, filled with Write, and flushed by EndTransmission,
// which reports the chip's response as a Status code. A read transaction
// is a single RequestFrom followed by ReadByte calls draining the
// receive buffer.
//
// A Bus is not safe for concurrent use; callers that share one across
// goroutines must serialize access themselves.
type Bus interface {
	// Opens an outgoing transaction to the given 7-bit device address.
	BeginTransmission(addr uint8)

	// Queues outgoing bytes for the open transaction and returns the
	// number of bytes accepted.
	Write(p []byte) int

	// Flushes the open transaction to the device and reports the result.
	EndTransmission() Status

	// Issues a read transaction for n bytes from the given 7-bit device
	// address and returns the number of bytes actually available.
	RequestFrom(addr uint8, n int) int

	// Returns the next byte from the receive buffer.
	ReadByte() byte

	// Closes the underlying transport.
	Close() error
}

type Driver interface {
	Open(name string) (Bus, error)
}

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]Driver)
)

// Register makes a bus driver available by the provided name.
// If Register is called twice with the same name or if driver is nil,
// it panics.
func Register(name string, driver Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if driver == nil {
		panic("i2c: Register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("i2c: Register called twice for driver " + name)
	}
	drivers[name] = driver
}

func unregisterAllDrivers() {
	driversMu.Lock()
	defer driversMu.Unlock()
	// For tests.
	drivers = make(map[string]Driver)
}

// Drivers returns a sorted list of the names of the registered drivers.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	list := make([]string, 0, len(drivers))
	for name := range drivers {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}

func Open(driverName, portName string) (Bus, error) {
	driversMu.RLock()
	driveri, ok := drivers[driverName]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("i2c: unknown driver %q (forgotten import?)", driverName)
	}

	return driveri.Open(portName)
}
