package cmd

import (
	"context"
	"errors"
	"fmt"

	"stock-counter/core/database"
	"stock-counter/core/storage"
	"stock-counter/feature/product"
	"stock-counter/feature/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCmd writes a stock snapshot to object storage.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full stock listing to object storage",
	Long:  `Writes snapshots/estoque-<time>-<id>.json to the configured bucket, creating the bucket if needed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		if cfg.Storage.Bucket == "" {
			return errors.New("storage bucket is not configured")
		}

		db, err := openStore(cfg.Database, l)
		if err != nil {
			return err
		}
		defer database.Close(db)

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		svc := snapshot.NewService(product.NewService(db, l), client, cfg.Storage, l)
		info, err := svc.Export(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), info.Key)
		l.Info("Export completed", zap.String("bucket", cfg.Storage.Bucket), zap.Int64("bytes", info.Size))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)
}
