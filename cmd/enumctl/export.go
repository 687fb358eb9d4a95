package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	appcatalog "github.com/ahrav/enumkit/internal/app/catalog"
	"github.com/ahrav/enumkit/internal/infra/blob"
	"github.com/ahrav/enumkit/internal/infra/blob/core"
	"github.com/ahrav/enumkit/pkg/common/logger"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every registered set to blob storage as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		store, err := blob.Open(ctx, blob.Config{
			Driver:   core.Driver(viper.GetString("driver")),
			Root:     viper.GetString("out"),
			Bucket:   viper.GetString("bucket"),
			Region:   viper.GetString("region"),
			Endpoint: viper.GetString("endpoint"),
		})
		if err != nil {
			return err
		}

		keys, err := newCLIService().Export(ctx, store, viper.GetString("prefix"))
		if err != nil {
			return err
		}

		for _, key := range keys {
			fmt.Fprintln(cmd.OutOrStdout(), key)
		}
		return nil
	},
}

// newCLIService builds a catalog service wired for one-shot CLI use: quiet
// logger, no tracing, no metrics backend.
func newCLIService() *appcatalog.Service {
	log := logger.New(io.Discard, logger.LevelError, "enumctl", nil)
	return appcatalog.NewService(log, tracenoop.NewTracerProvider().Tracer("enumctl"), noMetrics{})
}

type noMetrics struct{}

func (noMetrics) IncLookup(ctx context.Context, set string)      {}
func (noMetrics) IncParseMiss(ctx context.Context, set string)   {}
func (noMetrics) IncExportedSets(ctx context.Context, count int) {}

func init() {
	exportCmd.Flags().String("driver", "fs", "blob driver: fs, memory, or s3")
	exportCmd.Flags().String("out", "catalogs", "output directory for the fs driver")
	exportCmd.Flags().String("bucket", "", "bucket for the s3 driver")
	exportCmd.Flags().String("region", "", "region for the s3 driver")
	exportCmd.Flags().String("endpoint", "", "custom endpoint for the s3 driver")
	exportCmd.Flags().String("prefix", "", "key prefix exported catalogs are written under")
	viper.BindPFlags(exportCmd.Flags())
}
