// enumctl inspects, parses, exports, and drift-verifies the enumeration
// sets registered in this build.
package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	_ "github.com/ahrav/enumkit/internal/refdata"
)

var rootCmd = &cobra.Command{
	Use:           "enumctl",
	Short:         "Inspect and export the registered enumeration sets",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	viper.SetEnvPrefix("ENUMCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(setsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(verifyCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
