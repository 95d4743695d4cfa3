package sc18im

import (
	"bytes"
	"testing"
)

func TestWriteFrame(t *testing.T) {
	tests := []struct {
		name     string
		addr     uint8
		payload  []byte
		expected []byte
	}{
		{
			name:     "empty payload",
			addr:     0x50,
			payload:  nil,
			expected: []byte{'S', 0xA0, 0x00, 'P'},
		},
		{
			name:     "byte write to EERAM",
			addr:     0x50,
			payload:  []byte{0x01, 0x23, 0x42},
			expected: []byte{'S', 0xA0, 0x03, 0x01, 0x23, 0x42, 'P'},
		},
		{
			name:     "control register write",
			addr:     0x18,
			payload:  []byte{0x00, 0x02},
			expected: []byte{'S', 0x30, 0x02, 0x00, 0x02, 'P'},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if actual := writeFrame(test.addr, test.payload); !bytes.Equal(actual, test.expected) {
				t.Errorf("writeFrame, actual = % x, expected = % x", actual, test.expected)
			}
		})
	}
}

func TestReadFrame(t *testing.T) {
	expected := []byte{'S', 0xA1, 0x08, 'P'}
	if actual := readFrame(0x50, 8); !bytes.Equal(actual, expected) {
		t.Errorf("readFrame, actual = % x, expected = % x", actual, expected)
	}
}
