package dto

import (
	"strings"
)

const DefaultCurrency = "USD"

// InitiatePaymentRequest is the donation intake body. Nothing is persisted.
type InitiatePaymentRequest struct {
	Amount       float64        `json:"amount"`
	Method       string         `json:"method"`
	Currency     string         `json:"currency"`
	Phone        string         `json:"phone"`
	PersonalInfo map[string]any `json:"personalInfo"`
}

func (r *InitiatePaymentRequest) Normalize() {
	r.Method = strings.ToLower(strings.TrimSpace(r.Method))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	if r.Currency == "" {
		r.Currency = DefaultCurrency
	}
}

// CustomerEmail returns personalInfo.email when it is a non-empty string.
func (r InitiatePaymentRequest) CustomerEmail() string {
	return r.personalString("email")
}

// CustomerName prefers personalInfo.name, then "firstName lastName".
func (r InitiatePaymentRequest) CustomerName() string {
	if n := r.personalString("name"); n != "" {
		return n
	}
	return strings.TrimSpace(r.personalString("firstName") + " " + r.personalString("lastName"))
}

func (r InitiatePaymentRequest) personalString(key string) string {
	if r.PersonalInfo == nil {
		return ""
	}
	v, _ := r.PersonalInfo[key].(string)
	return strings.TrimSpace(v)
}

type HostedPaymentResponse struct {
	Status string `json:"status"`
	URL    string `json:"url"`
}
