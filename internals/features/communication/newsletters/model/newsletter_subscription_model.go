package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsletterSubscriptionModel struct {
	NewsletterSubscriptionID       uuid.UUID `gorm:"column:newsletter_subscription_id;type:uuid;primaryKey" json:"id"`
	NewsletterSubscriptionEmail    string    `gorm:"column:newsletter_subscription_email;type:varchar(255);not null;uniqueIndex" json:"email"`
	NewsletterSubscriptionIsActive bool      `gorm:"column:newsletter_subscription_is_active;not null;default:true" json:"isActive"`

	NewsletterSubscriptionCreatedAt time.Time `gorm:"column:newsletter_subscription_created_at;autoCreateTime;index" json:"createdAt"`
	NewsletterSubscriptionUpdatedAt time.Time `gorm:"column:newsletter_subscription_updated_at;autoUpdateTime" json:"updatedAt"`
}

func (NewsletterSubscriptionModel) TableName() string {
	return "newsletter_subscriptions"
}

func (m *NewsletterSubscriptionModel) BeforeCreate(*gorm.DB) error {
	if m.NewsletterSubscriptionID == uuid.Nil {
		m.NewsletterSubscriptionID = uuid.New()
	}
	return nil
}
