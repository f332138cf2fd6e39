package dto

import (
	"strings"

	"asafs_backend/internals/features/communication/contacts/model"
)

type CreateContactMessageRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

func (r *CreateContactMessageRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

func (r CreateContactMessageRequest) Complete() bool {
	return r.Name != "" && r.Email != "" && r.Message != ""
}

func (r CreateContactMessageRequest) ToModel() model.ContactMessageModel {
	m := model.ContactMessageModel{
		ContactMessageName:  r.Name,
		ContactMessageEmail: r.Email,
		ContactMessageBody:  r.Message,
	}
	if r.Subject != "" {
		subject := r.Subject
		m.ContactMessageSubject = &subject
	}
	return m
}
