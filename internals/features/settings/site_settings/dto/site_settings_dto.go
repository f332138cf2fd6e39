package dto

import (
	"strings"

	"asafs_backend/internals/features/settings/site_settings/model"
)

// UpdateSiteSettingsRequest: nil means "leave as is", "" clears the link.
type UpdateSiteSettingsRequest struct {
	FacebookURL     *string `json:"facebookUrl" validate:"omitempty,url"`
	TwitterURL      *string `json:"twitterUrl" validate:"omitempty,url"`
	InstagramURL    *string `json:"instagramUrl" validate:"omitempty,url"`
	LinkedinURL     *string `json:"linkedinUrl" validate:"omitempty,url"`
	MissionVideoURL *string `json:"missionVideoUrl" validate:"omitempty,url"`
}

func (r *UpdateSiteSettingsRequest) Normalize() {
	for _, p := range []*string{r.FacebookURL, r.TwitterURL, r.InstagramURL, r.LinkedinURL, r.MissionVideoURL} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
}

// Apply copies the provided fields onto m and returns their column names
// with values.
func (r UpdateSiteSettingsRequest) Apply(m *model.SiteSettingsModel) map[string]any {
	cols := map[string]any{}
	set := func(col string, src *string, dst *string) {
		if src == nil {
			return
		}
		*dst = *src
		cols[col] = *src
	}
	set("site_settings_facebook_url", r.FacebookURL, &m.FacebookURL)
	set("site_settings_twitter_url", r.TwitterURL, &m.TwitterURL)
	set("site_settings_instagram_url", r.InstagramURL, &m.InstagramURL)
	set("site_settings_linkedin_url", r.LinkedinURL, &m.LinkedinURL)
	set("site_settings_mission_video_url", r.MissionVideoURL, &m.MissionVideoURL)
	return cols
}
