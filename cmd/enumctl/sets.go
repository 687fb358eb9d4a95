package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ahrav/enumkit/pkg/enum"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List the registered enumeration sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tENTRIES\tDEFAULT")

		for _, view := range enum.Sets() {
			def := "-"
			if id, ok := view.DefaultIdentity(); ok {
				def = id.Text
			}
			fmt.Fprintf(tw, "%s\t%d\t%s\n", view.Name(), view.Len(), def)
		}

		return tw.Flush()
	},
}
