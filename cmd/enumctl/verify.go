package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ahrav/enumkit/pkg/catalog"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <dir>",
	Short: "Compare deployed catalog files against the registered sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		deployed, err := catalog.LoadDir(ctx, args[0])
		if err != nil {
			return err
		}

		for name, recs := range deployed {
			if err := catalog.Check(recs); err != nil {
				return fmt.Errorf("catalog %q: %w", name, err)
			}
		}

		drift := newCLIService().Drift(ctx, deployed)
		if len(drift) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no drift")
			return nil
		}

		names := make([]string, 0, len(drift))
		for name := range drift {
			names = append(names, name)
		}
		sort.Strings(names)

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SET\tOID\tFIELD\tHAVE\tWANT")
		total := 0
		for _, name := range names {
			for _, change := range drift[name] {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", name, change.OID, change.Field, change.Have, change.Want)
				total++
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		return fmt.Errorf("%d change(s) across %d set(s)", total, len(names))
	},
}
