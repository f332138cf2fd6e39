package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactMessageModel struct {
	ContactMessageID      uuid.UUID `gorm:"column:contact_message_id;type:uuid;primaryKey" json:"id"`
	ContactMessageName    string    `gorm:"column:contact_message_name;type:varchar(150);not null" json:"name"`
	ContactMessageEmail   string    `gorm:"column:contact_message_email;type:varchar(255);not null" json:"email"`
	ContactMessageSubject *string   `gorm:"column:contact_message_subject;type:varchar(255)" json:"subject"`
	ContactMessageBody    string    `gorm:"column:contact_message_body;type:text;not null" json:"message"`
	ContactMessageIsRead  bool      `gorm:"column:contact_message_is_read;not null;default:false" json:"isRead"`

	ContactMessageCreatedAt time.Time `gorm:"column:contact_message_created_at;autoCreateTime;index" json:"createdAt"`
}

func (ContactMessageModel) TableName() string {
	return "contact_messages"
}

func (m *ContactMessageModel) BeforeCreate(*gorm.DB) error {
	if m.ContactMessageID == uuid.Nil {
		m.ContactMessageID = uuid.New()
	}
	return nil
}
