package seeds

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	settingsService "asafs_backend/internals/features/settings/site_settings/service"
	posts "asafs_backend/internals/seeds/content/posts"
	users "asafs_backend/internals/seeds/users/auth"
)

// Files points at the JSON seed files; empty paths are skipped.
type Files struct {
	Users string
	Posts string
}

func RunAllSeeds(ctx context.Context, db *gorm.DB, files Files, log zerolog.Logger) error {
	//* Settings
	if _, err := settingsService.NewSettingsService(db).GetSettings(ctx); err != nil {
		return err
	}

	//* Users
	if files.Users != "" {
		if _, err := users.SeedUsersFromJSON(ctx, db, files.Users, log); err != nil {
			return err
		}
	}

	//* Content
	if files.Posts != "" {
		if _, err := posts.SeedPostsFromJSON(ctx, db, files.Posts, log); err != nil {
			return err
		}
	}
	return nil
}
