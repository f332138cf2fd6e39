package service

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"asafs_backend/internals/features/communication/contacts/dto"
	"asafs_backend/internals/features/communication/contacts/model"
	helper "asafs_backend/internals/helpers"
)

var ErrMessageNotFound = helper.NewAppError("Message not found", http.StatusNotFound)

// Acknowledger is satisfied by *mailer.Mailer.
type Acknowledger interface {
	SendContactAcknowledgment(ctx context.Context, email, name string)
}

type ContactService struct {
	DB   *gorm.DB
	Mail Acknowledger
}

func NewContactService(db *gorm.DB, mail Acknowledger) *ContactService {
	return &ContactService{DB: db, Mail: mail}
}

// Save stores the message, then acknowledges it by email.
func (s *ContactService) Save(ctx context.Context, req dto.CreateContactMessageRequest) (*model.ContactMessageModel, error) {
	msg := req.ToModel()
	if err := s.DB.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, err
	}
	s.Mail.SendContactAcknowledgment(ctx, msg.ContactMessageEmail, msg.ContactMessageName)
	return &msg, nil
}

// List returns messages newest first. Paging applies only when requested.
func (s *ContactService) List(ctx context.Context, p helper.Params) ([]model.ContactMessageModel, int64, error) {
	var total int64
	if err := s.DB.WithContext(ctx).Model(&model.ContactMessageModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	msgs := make([]model.ContactMessageModel, 0)
	q := s.DB.WithContext(ctx).Order("contact_message_created_at DESC")
	if p.Requested {
		q = q.Limit(p.Limit()).Offset(p.Offset())
	}
	if err := q.Find(&msgs).Error; err != nil {
		return nil, 0, err
	}
	return msgs, total, nil
}

func (s *ContactService) MarkRead(ctx context.Context, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return ErrMessageNotFound
	}
	res := s.DB.WithContext(ctx).Model(&model.ContactMessageModel{}).
		Where("contact_message_id = ?", id).
		Update("contact_message_is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (s *ContactService) Delete(ctx context.Context, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return ErrMessageNotFound
	}
	res := s.DB.WithContext(ctx).Delete(&model.ContactMessageModel{}, "contact_message_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
