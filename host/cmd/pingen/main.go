// pingen generates the per-pin identity and port types of package pins
// from a YAML chip description.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:           "pingen",
		Short:         "Generate pin and port types from a chip description",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(in)
			if err != nil {
				return err
			}
			chip, err := Parse(data)
			if err != nil {
				return err
			}
			src, err := Generate(chip, filepath.Base(in))
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			return os.WriteFile(out, src, 0o644)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "chip description (YAML)")
	cmd.Flags().StringVar(&out, "out", "", "output file; stdout if empty")
	cmd.MarkFlagRequired("in")
	return cmd
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("pingen: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
