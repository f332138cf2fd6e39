package service

import (
	"context"
	"encoding/json"
	"fmt"
)

// PaymentService routes Gateway calls to the configured providers.
type PaymentService struct {
	hosted map[string]HostedProvider
	direct DirectProvider
}

// NewPaymentService wires the providers. midtrans may be nil.
func NewPaymentService(stripe HostedProvider, midtrans HostedProvider, maisha DirectProvider) *PaymentService {
	hosted := map[string]HostedProvider{}
	if stripe != nil {
		hosted[ProviderStripe] = stripe
	}
	if midtrans != nil {
		hosted[ProviderMidtrans] = midtrans
	}
	return &PaymentService{hosted: hosted, direct: maisha}
}

func (s *PaymentService) Supports(provider string) bool {
	if provider == ProviderMaishaPay {
		return s.direct != nil
	}
	_, ok := s.hosted[provider]
	return ok
}

func (s *PaymentService) CreateHostedSession(ctx context.Context, req HostedSessionRequest) (*HostedSession, error) {
	p, ok := s.hosted[req.Provider]
	if !ok {
		return nil, fmt.Errorf("hosted provider %q not configured", req.Provider)
	}
	return p.CreateSession(ctx, req)
}

func (s *PaymentService) ChargeDirect(ctx context.Context, req DirectChargeRequest) (json.RawMessage, error) {
	if s.direct == nil {
		return nil, fmt.Errorf("direct provider not configured")
	}
	return s.direct.Charge(ctx, req)
}
