package cmd

import (
	"stock-counter/core/database"

	"github.com/spf13/cobra"
)

// migrateCmd creates or updates the stock tables and exits.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the Produtos and Historico_Contagem tables",
	Long:  `Creates the stock tables if they do not exist. Running it again is a no-op.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		db, err := openStore(cfg.Database, l)
		if err != nil {
			return err
		}
		l.Info("Schema is up to date")
		return database.Close(db)
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
