package service

import (
	"context"
	"encoding/json"
)

type Flow int

const (
	FlowUnsupported Flow = iota
	FlowHosted
	FlowDirect
)

const (
	ProviderStripe    = "stripe"
	ProviderMidtrans  = "midtrans"
	ProviderMaishaPay = "maishapay"
)

// Route is where a payment method is sent.
type Route struct {
	Flow     Flow
	Provider string
}

// ResolveRoute maps a donation method to its flow. It has no side effects.
func ResolveRoute(method string) Route {
	switch method {
	case "stripe":
		return Route{Flow: FlowHosted, Provider: ProviderStripe}
	case "midtrans":
		return Route{Flow: FlowHosted, Provider: ProviderMidtrans}
	case "maishapay", "mpesa", "orange", "airtel":
		return Route{Flow: FlowDirect, Provider: ProviderMaishaPay}
	}
	return Route{Flow: FlowUnsupported}
}

type HostedSessionRequest struct {
	Provider      string
	Amount        float64
	Currency      string
	CustomerEmail string
	CustomerName  string
}

type HostedSession struct {
	ID  string
	URL string
}

type DirectChargeRequest struct {
	Method   string
	Amount   float64
	Currency string
	Phone    string
	Customer map[string]any
}

// Gateway is every payment provider behind one interface. Calls are made
// once per request; nothing is retried or recorded.
type Gateway interface {
	Supports(provider string) bool
	CreateHostedSession(ctx context.Context, req HostedSessionRequest) (*HostedSession, error)
	ChargeDirect(ctx context.Context, req DirectChargeRequest) (json.RawMessage, error)
}

type HostedProvider interface {
	CreateSession(ctx context.Context, req HostedSessionRequest) (*HostedSession, error)
}

type DirectProvider interface {
	Charge(ctx context.Context, req DirectChargeRequest) (json.RawMessage, error)
}
