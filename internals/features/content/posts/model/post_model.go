package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PostTypeAbout      = "about"
	PostTypeProgramme  = "programme"
	PostTypeEvenement  = "evenement"
	PostTypeCarousel   = "carousel"
	PostTypePartenaire = "partenaire"
	PostTypeTimeline   = "timeline"

	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

type PostModel struct {
	PostID       uuid.UUID       `gorm:"column:post_id;type:uuid;primaryKey" json:"id"`
	PostType     string          `gorm:"column:post_type;type:varchar(20);not null;index" json:"type"`
	PostTitle    string          `gorm:"column:post_title;type:varchar(255);not null" json:"title"`
	PostContent  string          `gorm:"column:post_content;type:text;not null" json:"content"`
	PostCategory *string         `gorm:"column:post_category;type:varchar(100)" json:"category"`
	PostDate     *datatypes.Date `gorm:"column:post_date" json:"date"`
	PostStatus   string          `gorm:"column:post_status;type:varchar(20);not null;index" json:"status"`
	PostAuthor   *string         `gorm:"column:post_author;type:varchar(150)" json:"author"`
	PostImageURL *string         `gorm:"column:post_image_url;type:text" json:"imageUrl"`

	PostCreatedAt time.Time `gorm:"column:post_created_at;autoCreateTime;index" json:"createdAt"`
	PostUpdatedAt time.Time `gorm:"column:post_updated_at;autoUpdateTime" json:"updatedAt"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(*gorm.DB) error {
	if p.PostID == uuid.Nil {
		p.PostID = uuid.New()
	}
	if p.PostStatus == "" {
		p.PostStatus = PostStatusDraft
	}
	return nil
}
