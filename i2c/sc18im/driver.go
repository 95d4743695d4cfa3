// Package sc18im implements i2c.Bus over an NXP SC18IM700 UART-to-I2C
// bridge attached to a serial port. The bridge speaks a simple ASCII
// framing: 'S' <addr> <len> <payload> 'P' for bus transactions and
// 'R' <reg> 'P' for reading its internal registers.
package sc18im

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"

	"eeram47/i2c"
)

const driverName = "sc18im"

type Driver struct{}

var ErrNoBridgeFound = errors.New("sc18im: no USB serial port found")

// The bridge powers up at 9600 baud; higher rates require reprogramming
// its BRG registers first.
const defaultBaudRate = 9600

// DetectPort returns the name of the first USB serial port, for setups
// where the bridge sits behind the only USB-serial adapter present.
func DetectPort() (portName string, err error) {
	var ports []*enumerator.PortDetails

	ports, err = enumerator.GetDetailedPortsList()
	if err != nil {
		return
	}

	for _, port := range ports {
		if !port.IsUSB {
			continue
		}
		log.Debugf("sc18im: found USB port %s (%s:%s)", port.Name, port.VID, port.PID)
		return port.Name, nil
	}

	return "", ErrNoBridgeFound
}

// Open opens a bridge at "port[;baud]". An empty port name triggers USB
// port detection.
func (d *Driver) Open(name string) (i2c.Bus, error) {
	var err error

	parts := strings.Split(name, ";")

	portName := parts[0]
	if portName == "" {
		portName, err = DetectPort()
		if err != nil {
			return nil, err
		}
	}

	baud := defaultBaudRate
	if len(parts) > 1 {
		if n, e := strconv.Atoi(parts[1]); e == nil {
			baud = n
		}
	}

	f, err := serial.Open(portName, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("sc18im: failed to open serial port %s: %w", portName, err)
	}

	log.Debugf("sc18im: opened %s at %d baud", portName, baud)
	return &Bus{f: f}, nil
}

func init() {
	i2c.Register(driverName, &Driver{})
}
