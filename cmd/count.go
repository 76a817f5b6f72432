package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"stock-counter/core/database"
	"stock-counter/feature/counting"
	"stock-counter/feature/product"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the count command
	countFile   string
	countDryRun bool
	yesConfirm  bool
)

// countCmd applies a counting session stored in a JSON file.
var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Apply a counting session file to stock",
	Long: `Applies a counting session to stock, exactly as POST /api/salvar_contagem does.

The file holds a JSON object of barcode -> {"quantidade": n}. Repeated
barcodes are applied in file order. Unregistered barcodes are skipped.

Examples:
  # Preview which barcodes are registered (no writes)
  count --file sessao.json --dry-run

  # Apply with interactive confirmation
  count --file sessao.json

  # Apply from stdin without prompting
  cat sessao.json | count --file - --yes`,
	RunE: runCount,
}

func init() {
	countCmd.Flags().StringVarP(&countFile, "file", "f", "", "Session file (- for stdin)")
	countCmd.Flags().BoolVar(&countDryRun, "dry-run", false, "Only report what would be applied")
	countCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm (non-interactive)")
	_ = countCmd.MarkFlagRequired("file")

	RootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	session, err := readSession(countFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	db, err := openStore(cfg.Database, l)
	if err != nil {
		return err
	}
	defer database.Close(db)

	products := product.NewService(db, l)
	known, unknown := 0, []string{}
	for _, e := range session {
		_, err := products.FindByBarcode(ctx, e.Barcode)
		switch {
		case err == nil:
			known++
		case errors.Is(err, product.ErrNotFound):
			unknown = append(unknown, e.Barcode)
		default:
			return fmt.Errorf("failed to look up %s: %w", e.Barcode, err)
		}
	}

	l.Info("Counting session loaded",
		zap.Int("entries", len(session)),
		zap.Int("registered", known),
		zap.Strings("unregistered", unknown))

	if countDryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if known == 0 {
		l.Info("Nothing to apply.")
		return nil
	}
	if !confirmAction(cmd.OutOrStdout(), cmd.InOrStdin(), fmt.Sprintf("apply %d counted entries to stock", known)) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	result, err := counting.NewService(db, l).SaveSession(ctx, session)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), counting.MsgSaved)
	l.Info("Counting session applied",
		zap.Int("applied", result.Applied),
		zap.Strings("skipped", result.Skipped),
		zap.Time("counted_at", result.CountedAt))
	return nil
}

// readSession decodes a session from a file, or from stdin when path is "-".
func readSession(path string, stdin io.Reader) (counting.Session, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open session file: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session counting.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return session, nil
}

// confirmAction prompts the user for confirmation or uses the --yes flag.
func confirmAction(out io.Writer, in io.Reader, what string) bool {
	if yesConfirm {
		fmt.Fprintln(out, "Auto-confirmed via --yes flag")
		return true
	}

	fmt.Fprintf(out, "Type 'yes' to %s: ", what)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
