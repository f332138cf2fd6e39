package main

import (
	"github.com/spf13/cobra"

	database "asafs_backend/internals/databases"
	"asafs_backend/internals/seeds"
)

func seedCmd() *cobra.Command {
	var files seeds.Files

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the settings row and optional users and posts from JSON",
		Long: `Insert the default settings row, then the users and posts listed in
the given JSON files. Rows that already exist are skipped, so the command
can be re-run.

Examples:
  asafsctl seed --posts internals/seeds/data/data_posts.json
  asafsctl seed --users staff.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, log, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			if err := database.AutoMigrate(db); err != nil {
				return err
			}
			if err := seeds.RunAllSeeds(cmd.Context(), db, files, log); err != nil {
				return err
			}
			log.Info().Msg("seed complete")
			return nil
		},
	}

	cmd.Flags().StringVar(&files.Users, "users", "", "JSON file of staff accounts")
	cmd.Flags().StringVar(&files.Posts, "posts", "", "JSON file of posts")
	return cmd
}
