package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"eeram47/eeram"
	"eeram47/i2c"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "eeramctl",
	Short: "Read, write and manage Microchip 47x04/47x16 I2C EERAM chips.",
	Long: "A command-line tool for Microchip 47x04/47x16 serial EERAM chips: " +
		"byte and block access to the SRAM array, control-register bits, and " +
		"the store/recall commands.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("driver", "sc18im",
		"bus driver to use ("+strings.Join(i2c.Drivers(), ", ")+")")
	rootCmd.PersistentFlags().String("port", "", "serial port of the bus bridge (empty = autodetect)")
	rootCmd.PersistentFlags().Bool("a0", false, "state of the chip's A0 address pin")
	rootCmd.PersistentFlags().Bool("a1", false, "state of the chip's A1 address pin")
	rootCmd.PersistentFlags().Int("size", 16, "chip capacity in kbits (16 or 4)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}

// openDevice opens the configured bus and binds an eeram.Device to it.
// The caller owns the returned bus and must Close it.
func openDevice(cmd *cobra.Command) (*eeram.Device, i2c.Bus, error) {
	driver, _ := cmd.Flags().GetString("driver")
	port, _ := cmd.Flags().GetString("port")
	a0, _ := cmd.Flags().GetBool("a0")
	a1, _ := cmd.Flags().GetBool("a1")
	size, _ := cmd.Flags().GetInt("size")

	bus, err := i2c.Open(driver, port)
	if err != nil {
		return nil, nil, err
	}

	dev, err := eeram.New(bus, eeram.Config{A0: a0, A1: a1, Size: eeram.Size(size)})
	if err != nil {
		bus.Close()
		return nil, nil, fmt.Errorf("bad device configuration: %w", err)
	}

	log.Debugf("opened %s device, %d kbit, pins a0=%v a1=%v", driver, size, a0, a1)
	return dev, bus, nil
}
