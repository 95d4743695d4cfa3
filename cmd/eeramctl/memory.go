package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// parseAddr accepts decimal or 0x-prefixed hex data addresses.
func parseAddr(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("bad address %q: %w", s, err)
	}
	return uint16(n), nil
}

var readCmd = &cobra.Command{
	Use:   "read <addr>",
	Short: "Read one byte from the SRAM array.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := parseAddr(args[0])
		if err != nil {
			return err
		}

		dev, bus, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer bus.Close()

		v, err := dev.ReadByte(addr)
		if err != nil {
			return err
		}
		fmt.Printf("0x%04X: 0x%02X\n", addr, v)
		return nil
	},
}

var writeCmd = &cobra.Command{
	Use:   "write <addr> <byte>...",
	Short: "Write one or more bytes to the SRAM array.",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := parseAddr(args[0])
		if err != nil {
			return err
		}

		data := make([]byte, 0, len(args)-1)
		for _, arg := range args[1:] {
			n, err := strconv.ParseUint(arg, 0, 8)
			if err != nil {
				return fmt.Errorf("bad byte %q: %w", arg, err)
			}
			data = append(data, byte(n))
		}

		dev, bus, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer bus.Close()

		if len(data) == 1 {
			return dev.WriteByte(addr, data[0])
		}
		return dev.WriteBlock(addr, data)
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump <addr> <len>",
	Short: "Hex-dump a region of the SRAM array.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := parseAddr(args[0])
		if err != nil {
			return err
		}
		length, err := strconv.Atoi(args[1])
		if err != nil || length < 0 {
			return fmt.Errorf("bad length %q", args[1])
		}

		dev, bus, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer bus.Close()

		buf := make([]byte, length)
		if err := dev.ReadBlock(addr, buf); err != nil {
			return err
		}

		d := hex.Dumper(os.Stdout)
		defer d.Close()
		_, err = d.Write(buf)
		return err
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(dumpCmd)
}
