package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"stock-counter/core/database"
	"stock-counter/core/storage"
	"stock-counter/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the verify command
	verifyStorage bool
	fixFlag       bool
	jsonOutput    bool
)

// errVerifyFailed is returned when a check finds a problem.
var errVerifyFailed = errors.New("integrity check failed")

// verifyCmd runs the integrity checks from the command line.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the stock schema, the stock ledger and optionally snapshot storage",
	Long: `Checks that the tables match the models and that every product's stock
equals the sum of its counted quantities. With --storage the snapshot bucket
is checked too, and --fix creates whatever is missing there.

Exits with an error when any check fails.`,
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

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}
		defer database.Close(db)

		var client storage.Client
		if verifyStorage {
			if client, err = storage.NewClient(cfg.Storage); err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
		}
		svc := integrity.NewService(client, cfg.Storage.Bucket, l, db)

		failed := false
		report := map[string]any{}

		schema, err := svc.CheckSchema()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		report["schema"] = schema
		if !schema.Matched {
			failed = true
			l.Warn("Schema mismatch", zap.Any("tables", schema.Tables), zap.Strings("errors", schema.Errors))
		}

		ledger, err := svc.CheckLedger(ctx)
		if err != nil {
			return fmt.Errorf("ledger check failed: %w", err)
		}
		report["ledger"] = ledger
		if !ledger.Matched {
			failed = true
			for _, issue := range ledger.Issues {
				l.Warn("Stock differs from history",
					zap.String("barcode", issue.Barcode),
					zap.Int("stock", issue.Stock),
					zap.Int64("history_total", issue.HistoryTotal))
			}
		}

		if verifyStorage {
			st, err := svc.CheckStorage(ctx)
			if err != nil {
				return fmt.Errorf("storage check failed: %w", err)
			}
			if !st.OK() && fixFlag {
				if err := svc.FixStorage(ctx, st); err != nil {
					return fmt.Errorf("failed to fix storage: %w", err)
				}
				st, err = svc.CheckStorage(ctx)
				if err != nil {
					return fmt.Errorf("storage check failed: %w", err)
				}
			}
			report["storage"] = st
			if !st.OK() {
				failed = true
				l.Warn("Snapshot storage incomplete",
					zap.Bool("bucket_exists", st.BucketExists),
					zap.Strings("missing", st.MissingFolders))
			}
		}

		if jsonOutput {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		}

		l.Info("Integrity check completed",
			zap.Int("products", ledger.Products),
			zap.Int("ledger_issues", len(ledger.Issues)),
			zap.Bool("schema_matched", schema.Matched))

		if failed {
			return errVerifyFailed
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().BoolVar(&verifyStorage, "storage", false, "Also check the snapshot bucket")
	verifyCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create a missing bucket or folder (with --storage)")
	verifyCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the full report as JSON")

	RootCmd.AddCommand(verifyCmd)
}
