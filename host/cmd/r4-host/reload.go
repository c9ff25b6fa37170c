package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"r4rt/reg/sim"
	"r4rt/systick"
)

func newReloadCmd() *cobra.Command {
	var (
		period time.Duration
		tenms  uint32
	)

	cmd := &cobra.Command{
		Use:   "reload",
		Short: "Compute the SysTick reload value for a period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := systick.ReloadFor(period, tenms)
			if err != nil {
				return fmt.Errorf("period %v with TENMS %d: %w", period, tenms, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d (%#x)\n", v, v)
			return nil
		},
	}
	cmd.Flags().DurationVar(&period, "period", 10*time.Millisecond, "time between wraps")
	cmd.Flags().Uint32Var(&tenms, "ticks-per-10ms", sim.DefaultCalibration, "SysTick TENMS calibration value")
	return cmd
}
