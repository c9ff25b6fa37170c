package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"r4rt/host/serial"
)

// open is replaced in tests
var open serial.Opener = serial.Open

func newResetCmd() *cobra.Command {
	var device string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the board into its bootloader with a 1200 baud touch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := serial.Touch(open, device); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: reset to bootloader\n", device)
			return nil
		},
	}
	cmd.Flags().StringVar(&device, "device", defaultDevice(), "serial device (env "+deviceEnv+")")
	return cmd
}

func newMonitorCmd() *cobra.Command {
	var (
		device string
		baud   int
	)

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Print lines from the board's serial console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := serial.MonitorConfig(device)
			cfg.Baud = baud
			p, err := open(cfg)
			if err != nil {
				return err
			}
			defer p.Close()

			if err := serial.Monitor(p, cmd.OutOrStdout()); err != nil && err != io.EOF {
				return fmt.Errorf("%s: %w", device, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&device, "device", defaultDevice(), "serial device (env "+deviceEnv+")")
	cmd.Flags().IntVar(&baud, "baud", serial.DefaultConfig("").Baud, "baud rate")
	return cmd
}
