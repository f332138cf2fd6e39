package model

import "time"

// DefaultID is the primary key of the only settings row.
const DefaultID = "default"

type SiteSettingsModel struct {
	ID              string    `gorm:"column:site_settings_id;type:varchar(32);primaryKey" json:"id"`
	FacebookURL     string    `gorm:"column:site_settings_facebook_url;not null" json:"facebookUrl"`
	TwitterURL      string    `gorm:"column:site_settings_twitter_url;not null" json:"twitterUrl"`
	InstagramURL    string    `gorm:"column:site_settings_instagram_url;not null" json:"instagramUrl"`
	LinkedinURL     string    `gorm:"column:site_settings_linkedin_url;not null" json:"linkedinUrl"`
	MissionVideoURL string    `gorm:"column:site_settings_mission_video_url;not null" json:"missionVideoUrl"`
	CreatedAt       time.Time `gorm:"column:site_settings_created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"column:site_settings_updated_at;autoUpdateTime" json:"updatedAt"`
}

func (SiteSettingsModel) TableName() string {
	return "site_settings"
}
