package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ahrav/enumkit/pkg/catalog"
	"github.com/ahrav/enumkit/pkg/enum"
)

var parseCmd = &cobra.Command{
	Use:   "parse <set> <input>",
	Short: "Resolve an input against a set by OID, value, or text",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, input := args[0], args[1]

		view, ok := enum.Lookup(name)
		if !ok {
			return fmt.Errorf("set %q is not registered", name)
		}

		mode := enum.MatchExact
		if viper.GetBool("fold") {
			mode = enum.MatchFold
		}

		id, hit := view.ParseIdentity(input, mode)
		if !hit {
			return fmt.Errorf("set %q: no entry matches %q", name, input)
		}

		return catalog.EncodeJSON(cmd.OutOrStdout(), []catalog.Record{catalog.RecordOf(id)})
	},
}

func init() {
	parseCmd.Flags().Bool("fold", false, "compare text case-insensitively")
	viper.BindPFlag("fold", parseCmd.Flags().Lookup("fold"))
}
