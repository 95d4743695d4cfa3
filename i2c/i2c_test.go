package i2c

import (
	"testing"
)

type fakeDriver struct{}

func (d *fakeDriver) Open(name string) (Bus, error) { return nil, nil }

func TestRegister(t *testing.T) {
	defer unregisterAllDrivers()

	Register("a", &fakeDriver{})
	Register("b", &fakeDriver{})

	if actual, expected := len(Drivers()), 2; actual != expected {
		t.Errorf("Drivers() length, actual = %v, expected = %v", actual, expected)
	}
	if actual, expected := Drivers()[0], "a"; actual != expected {
		t.Errorf("Drivers() order, actual = %v, expected = %v", actual, expected)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer unregisterAllDrivers()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate Register")
		}
	}()

	Register("dup", &fakeDriver{})
	Register("dup", &fakeDriver{})
}

func TestOpenUnknownDriver(t *testing.T) {
	defer unregisterAllDrivers()

	_, err := Open("nonexistent", "")
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestStatusErr(t *testing.T) {
	tests := []struct {
		status   Status
		expected error
	}{
		{OK, nil},
		{StatusDataTooLong, ErrDataTooLong},
		{StatusAddrNACK, ErrAddrNACK},
		{StatusDataNACK, ErrDataNACK},
		{StatusOther, ErrBus},
		{Status(99), ErrBus},
	}
	for _, test := range tests {
		if actual := test.status.Err(); actual != test.expected {
			t.Errorf("Status(%d).Err(), actual = %v, expected = %v", test.status, actual, test.expected)
		}
	}
}
