package dto

import "strings"

type NewsletterEmailRequest struct {
	Email string `json:"email" form:"email"`
}

func (r *NewsletterEmailRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}
