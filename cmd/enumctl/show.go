package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appcatalog "github.com/ahrav/enumkit/internal/app/catalog"
	"github.com/ahrav/enumkit/pkg/catalog"
	"github.com/ahrav/enumkit/pkg/enum"
)

var showCmd = &cobra.Command{
	Use:   "show <set>",
	Short: "Print one set's entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		view, ok := enum.Lookup(name)
		if !ok {
			return fmt.Errorf("set %q is not registered", name)
		}

		which, err := appcatalog.ParseView(viper.GetString("view"))
		if err != nil {
			return err
		}

		var ids []enum.Identity
		switch which {
		case appcatalog.ViewRegistration:
			ids = view.Identities()
		case appcatalog.ViewVisible:
			ids = view.VisibleIdentities()
		default:
			ids = view.SortedIdentities()
		}

		recs := make([]catalog.Record, len(ids))
		for i, id := range ids {
			recs[i] = catalog.RecordOf(id)
		}

		switch format := viper.GetString("format"); format {
		case "json":
			return catalog.EncodeJSON(cmd.OutOrStdout(), recs)
		case "yaml":
			return catalog.EncodeYAML(cmd.OutOrStdout(), recs)
		case "table":
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TEXT\tVALUE\tINDEX\tOID\tVISIBLE")
			for _, rec := range recs {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%t\n", rec.Text, rec.Value, rec.Index, rec.OID, rec.Visible)
			}
			return tw.Flush()
		default:
			return fmt.Errorf("unknown format %q", format)
		}
	},
}

func init() {
	showCmd.Flags().String("view", "sorted", "ordering: sorted, visible, or registration")
	showCmd.Flags().String("format", "table", "output format: table, json, or yaml")
	viper.BindPFlag("view", showCmd.Flags().Lookup("view"))
	viper.BindPFlag("format", showCmd.Flags().Lookup("format"))
}
