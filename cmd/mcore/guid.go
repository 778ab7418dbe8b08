package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcore/guid"
)

func newGUIDCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "guid",
		Short: "Print random GUIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if n < 1 {
				return fmt.Errorf("-n must be positive, got %d", n)
			}
			buf := make([]byte, guid.FormatSize)
			for i := 0; i < n; i++ {
				g, err := guid.Generate()
				if err != nil {
					return err
				}
				if err := g.Format(buf); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(buf[:guid.Length]))
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 1, "number of GUIDs")

	return cmd
}
