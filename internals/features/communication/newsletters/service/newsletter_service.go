package service

import (
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"asafs_backend/internals/features/communication/newsletters/model"
	helper "asafs_backend/internals/helpers"
)

var ErrSubscriptionNotFound = helper.NewAppError("Subscription not found", http.StatusNotFound)

// Welcomer is satisfied by *mailer.Mailer.
type Welcomer interface {
	SendWelcomeNewsletter(ctx context.Context, email string)
}

type NewsletterService struct {
	DB   *gorm.DB
	Mail Welcomer
}

func NewNewsletterService(db *gorm.DB, mail Welcomer) *NewsletterService {
	return &NewsletterService{DB: db, Mail: mail}
}

func (s *NewsletterService) find(ctx context.Context, email string) (*model.NewsletterSubscriptionModel, error) {
	var sub model.NewsletterSubscriptionModel
	err := s.DB.WithContext(ctx).First(&sub, "newsletter_subscription_email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Subscribe creates or reactivates the subscription. A welcome email goes
// out only when the address becomes active; active subscribers are left as is.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*model.NewsletterSubscriptionModel, error) {
	existing, err := s.find(ctx, email)
	switch {
	case err == nil:
		if existing.NewsletterSubscriptionIsActive {
			return existing, nil
		}
		if err := s.DB.WithContext(ctx).Model(existing).
			Update("newsletter_subscription_is_active", true).Error; err != nil {
			return nil, err
		}
		existing.NewsletterSubscriptionIsActive = true
		s.Mail.SendWelcomeNewsletter(ctx, email)
		return existing, nil

	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	sub := model.NewsletterSubscriptionModel{NewsletterSubscriptionEmail: email, NewsletterSubscriptionIsActive: true}
	if err := s.DB.WithContext(ctx).Create(&sub).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			// Lost a race with a concurrent subscribe for the same address.
			return s.find(ctx, email)
		}
		return nil, err
	}
	s.Mail.SendWelcomeNewsletter(ctx, email)
	return &sub, nil
}

func (s *NewsletterService) Unsubscribe(ctx context.Context, email string) error {
	res := s.DB.WithContext(ctx).Model(&model.NewsletterSubscriptionModel{}).
		Where("newsletter_subscription_email = ?", email).
		Update("newsletter_subscription_is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

func (s *NewsletterService) List(ctx context.Context, p helper.Params) ([]model.NewsletterSubscriptionModel, int64, error) {
	var total int64
	if err := s.DB.WithContext(ctx).Model(&model.NewsletterSubscriptionModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	subs := make([]model.NewsletterSubscriptionModel, 0)
	q := s.DB.WithContext(ctx).Order("newsletter_subscription_created_at DESC")
	if p.Requested {
		q = q.Limit(p.Limit()).Offset(p.Offset())
	}
	if err := q.Find(&subs).Error; err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}
