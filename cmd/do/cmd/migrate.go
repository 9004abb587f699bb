package cmd

import (
	"fmt"

	"github.com/nzoschke/productivity/internal/config"
	"github.com/nzoschke/productivity/internal/db"
	"github.com/spf13/cobra"
)

// MigrateCmd applies the bundled migrations, the same step the server runs
// on startup.
func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the bundled tracker schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if !cfg.BackendEnabled() {
				return fmt.Errorf("no database configured (DB_DRIVER=%s)", cfg.DBDriver)
			}

			database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close(database) }()

			return db.RunMigrations(database.DB, cfg.DBDriver)
		},
	}
}
