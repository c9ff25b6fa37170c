package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"r4rt/pins"
)

// pinRow is one header pin as printed by the pins command
type pinRow struct {
	Name     string `yaml:"name"`
	Physical string `yaml:"physical"`
	Port     uint32 `yaml:"port"`
	Pin      uint32 `yaml:"pin"`
	Note     string `yaml:"note,omitempty"`
}

func newPinsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "pins",
		Short: "Print the header pin to RA4M1 pin map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([]pinRow, 0, len(pins.BoardMap))
			for _, bp := range pins.BoardMap {
				rows = append(rows, pinRow{
					Name:     bp.Name,
					Physical: bp.Physical(),
					Port:     bp.Port,
					Pin:      bp.Pin,
					Note:     bp.Note,
				})
			}

			switch format {
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(rows); err != nil {
					return err
				}
				return enc.Close()
			case "table":
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "HEADER\tPIN\tNOTE")
				for _, r := range rows {
					fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, r.Physical, r.Note)
				}
				return w.Flush()
			default:
				return fmt.Errorf("unknown format %q (want table or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "output format: table or yaml")
	return cmd
}
