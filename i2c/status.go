package i2c

import "errors"

// Status is the result of a flushed write transaction. The values match
// the status codes reported by common two-wire master implementations:
// 0 success, 1 transmit buffer overflow, 2 NACK on address, 3 NACK on
// data, 4 other bus error.
type Status uint8

const (
	OK Status = iota
	StatusDataTooLong
	StatusAddrNACK
	StatusDataNACK
	StatusOther
)

var (
	ErrDataTooLong = errors.New("i2c: data too long for transmit buffer")
	ErrAddrNACK    = errors.New("i2c: NACK received on address transmit")
	ErrDataNACK    = errors.New("i2c: NACK received on data transmit")
	ErrBus         = errors.New("i2c: bus error")
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case StatusDataTooLong:
		return "data too long"
	case StatusAddrNACK:
		return "address NACK"
	case StatusDataNACK:
		return "data NACK"
	}
	return "bus error"
}

// Err maps a Status onto the package's sentinel errors. OK maps to nil;
// any code outside the enumeration maps to ErrBus.
func (s Status) Err() error {
	switch s {
	case OK:
		return nil
	case StatusDataTooLong:
		return ErrDataTooLong
	case StatusAddrNACK:
		return ErrAddrNACK
	case StatusDataNACK:
		return ErrDataNACK
	}
	return ErrBus
}
