package main

import (
	"github.com/spf13/cobra"

	database "asafs_backend/internals/databases"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update every table",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, log, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			if err := database.AutoMigrate(db); err != nil {
				return err
			}
			log.Info().Int("models", len(database.Models())).Msg("migration complete")
			return nil
		},
	}
}
