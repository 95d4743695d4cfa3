package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"eeram47/eeram"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the decoded control register.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, bus, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer bus.Close()

		autoStore, err := dev.AutoStore()
		if err != nil {
			return err
		}
		level, err := dev.WriteProtect()
		if err != nil {
			return err
		}
		event, err := dev.EventBit()
		if err != nil {
			return err
		}
		match, err := dev.MatchStatus()
		if err != nil {
			return err
		}

		fmt.Printf("auto-store:    %v\n", autoStore)
		fmt.Printf("write-protect: level %d\n", level)
		fmt.Printf("event bit:     %v\n", event)
		fmt.Printf("arrays match:  %v\n", match)
		return nil
	},
}

var protectCmd = &cobra.Command{
	Use:   "protect [level]",
	Short: "Get or set the write-protect level (0-7).",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, bus, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer bus.Close()

		if len(args) == 0 {
			level, err := dev.WriteProtect()
			if err != nil {
				return err
			}
			fmt.Printf("write-protect: level %d\n", level)
			return nil
		}

		level, err := strconv.ParseUint(args[0], 0, 8)
		if err != nil {
			return fmt.Errorf("bad level %q: %w", args[0], err)
		}
		return dev.SetWriteProtect(uint8(level))
	},
}

var autostoreCmd = &cobra.Command{
	Use:   "autostore [on|off]",
	Short: "Get or set the auto-store enable bit.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, bus, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer bus.Close()

		if len(args) == 0 {
			on, err := dev.AutoStore()
			if err != nil {
				return err
			}
			fmt.Printf("auto-store: %v\n", on)
			return nil
		}
		on, err := parseOnOff(args[0])
		if err != nil {
			return err
		}
		return dev.SetAutoStore(on)
	},
}

var eventCmd = &cobra.Command{
	Use:   "event [on|off]",
	Short: "Get or set the hardware event bit.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, bus, err := openDevice(cmd)
		if err != nil {
			return err
		}
		defer bus.Close()

		if len(args) == 0 {
			set, err := dev.EventBit()
			if err != nil {
				return err
			}
			fmt.Printf("event bit: %v\n", set)
			return nil
		}
		set, err := parseOnOff(args[0])
		if err != nil {
			return err
		}
		return dev.SetEventBit(set)
	},
}

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Copy the SRAM array into the EEPROM shadow.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, (*eeram.Device).Store)
	},
}

var recallCmd = &cobra.Command{
	Use:   "recall",
	Short: "Copy the EEPROM shadow back into the SRAM array.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, (*eeram.Device).Recall)
	},
}

func runCommand(cmd *cobra.Command, op func(*eeram.Device) error) error {
	dev, bus, err := openDevice(cmd)
	if err != nil {
		return err
	}
	defer bus.Close()
	return op(dev)
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("bad value %q (want on or off)", s)
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(protectCmd)
	rootCmd.AddCommand(autostoreCmd)
	rootCmd.AddCommand(eventCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(recallCmd)
}
