package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"r4rt/host/vectab"
	"r4rt/rt"
)

func newVectorsCmd() *cobra.Command {
	var elfPath string

	cmd := &cobra.Command{
		Use:   "vectors",
		Short: "Print the vector table layout, or audit the table in a firmware image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if elfPath == "" {
				fmt.Fprintln(w, "SLOT\tNAME\tKIND")
				for _, s := range rt.Layout {
					fmt.Fprintf(w, "%d\t%s\t%s\n", s.Index, s.Name, s.Kind)
				}
				return w.Flush()
			}

			img, err := vectab.Read(elfPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "SLOT\tNAME\tVALUE\n")
			for i, s := range rt.Layout {
				fmt.Fprintf(w, "%d\t%s\t%#08x\n", s.Index, s.Name, img.Table[i])
			}
			if err := w.Flush(); err != nil {
				return err
			}

			findings := img.Audit()
			for _, f := range findings {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			if len(findings) > 0 {
				return fmt.Errorf("%s: %d vector table problems", elfPath, len(findings))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: vector table at %#x ok\n", elfPath, img.Base)
			return nil
		},
	}
	cmd.Flags().StringVar(&elfPath, "elf", "", "firmware ELF image to audit")
	return cmd
}
