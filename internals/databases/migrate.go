package database

import (
	"fmt"

	"gorm.io/gorm"

	contactModel "asafs_backend/internals/features/communication/contacts/model"
	newsletterModel "asafs_backend/internals/features/communication/newsletters/model"
	postModel "asafs_backend/internals/features/content/posts/model"
	settingsModel "asafs_backend/internals/features/settings/site_settings/model"
	userModel "asafs_backend/internals/features/users/user/model"
)

// Models lists every persisted table.
func Models() []any {
	return []any{
		&userModel.UserModel{},
		&postModel.PostModel{},
		&contactModel.ContactMessageModel{},
		&newsletterModel.NewsletterSubscriptionModel{},
		&settingsModel.SiteSettingsModel{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
