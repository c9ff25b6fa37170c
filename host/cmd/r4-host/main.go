// r4-host is the host-side companion for r4rt firmware: it audits vector
// tables in built images, prints the board pin map, computes SysTick
// reload values and resets the board over USB serial.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

// deviceEnv overrides the default serial device
const deviceEnv = "R4HOST_DEVICE"

func defaultDevice() string {
	if d := os.Getenv(deviceEnv); d != "" {
		return d
	}
	return "/dev/ttyACM0"
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "r4-host",
		Short:         "Host tools for r4rt firmware on the Arduino UNO R4",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newVectorsCmd(),
		newPinsCmd(),
		newReloadCmd(),
		newResetCmd(),
		newMonitorCmd(),
	)
	return root
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("r4-host: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
