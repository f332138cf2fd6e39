package service

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"asafs_backend/internals/features/settings/site_settings/dto"
	"asafs_backend/internals/features/settings/site_settings/model"
)

var idColumn = []clause.Column{{Name: "site_settings_id"}}

// SettingsService owns the settings singleton. The primary key on the fixed
// id guarantees a single row even under concurrent first reads.
type SettingsService struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db, now: time.Now}
}

func (s *SettingsService) find(ctx context.Context) (*model.SiteSettingsModel, error) {
	var row model.SiteSettingsModel
	if err := s.DB.WithContext(ctx).First(&row, "site_settings_id = ?", model.DefaultID).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// GetSettings returns the row, creating it with empty links on first use.
func (s *SettingsService) GetSettings(ctx context.Context) (*model.SiteSettingsModel, error) {
	row, err := s.find(ctx)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(err, "read settings")
	}

	now := s.now()
	seed := model.SiteSettingsModel{ID: model.DefaultID, CreatedAt: now, UpdatedAt: now}
	// a concurrent creator may win; DO NOTHING keeps its row
	if err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: idColumn, DoNothing: true}).
		Create(&seed).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "create default settings")
	}

	row, err = s.find(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "re-read settings")
	}
	return row, nil
}

// UpdateSettings upserts the provided fields. updatedAt is stamped on both
// the insert and the update branch.
func (s *SettingsService) UpdateSettings(ctx context.Context, req dto.UpdateSiteSettingsRequest) (*model.SiteSettingsModel, error) {
	now := s.now()
	row := model.SiteSettingsModel{ID: model.DefaultID, CreatedAt: now, UpdatedAt: now}
	assignments := req.Apply(&row)
	assignments["site_settings_updated_at"] = now

	if err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: idColumn, DoUpdates: clause.Assignments(assignments)}).
		Create(&row).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "upsert settings")
	}

	updated, err := s.find(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "re-read settings")
	}
	return updated, nil
}
