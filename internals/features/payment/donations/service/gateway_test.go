package service

import (
	"context"
	"encoding/json"
	"testing"
)

func TestResolveRoute(t *testing.T) {
	cases := map[string]Route{
		"stripe":    {Flow: FlowHosted, Provider: ProviderStripe},
		"midtrans":  {Flow: FlowHosted, Provider: ProviderMidtrans},
		"maishapay": {Flow: FlowDirect, Provider: ProviderMaishaPay},
		"mpesa":     {Flow: FlowDirect, Provider: ProviderMaishaPay},
		"orange":    {Flow: FlowDirect, Provider: ProviderMaishaPay},
		"airtel":    {Flow: FlowDirect, Provider: ProviderMaishaPay},
		"unknown":   {Flow: FlowUnsupported},
		"":          {Flow: FlowUnsupported},
		"Stripe":    {Flow: FlowUnsupported},
	}
	for method, want := range cases {
		if got := ResolveRoute(method); got != want {
			t.Fatalf("ResolveRoute(%q) = %+v, want %+v", method, got, want)
		}
	}
}

type stubHosted struct{ calls int }

func (s *stubHosted) CreateSession(context.Context, HostedSessionRequest) (*HostedSession, error) {
	s.calls++
	return &HostedSession{ID: "s", URL: "u"}, nil
}

type stubDirect struct{ calls int }

func (s *stubDirect) Charge(context.Context, DirectChargeRequest) (json.RawMessage, error) {
	s.calls++
	return json.RawMessage(`{}`), nil
}

func TestPaymentService_RoutesToProviders(t *testing.T) {
	stripe, direct := &stubHosted{}, &stubDirect{}
	svc := NewPaymentService(stripe, nil, direct)

	if !svc.Supports(ProviderStripe) || !svc.Supports(ProviderMaishaPay) {
		t.Fatal("stripe and maishapay should be supported")
	}
	if svc.Supports(ProviderMidtrans) {
		t.Fatal("midtrans is not configured")
	}

	if _, err := svc.CreateHostedSession(context.Background(), HostedSessionRequest{Provider: ProviderStripe}); err != nil {
		t.Fatalf("CreateHostedSession returned error: %v", err)
	}
	if _, err := svc.CreateHostedSession(context.Background(), HostedSessionRequest{Provider: ProviderMidtrans}); err == nil {
		t.Fatal("expected error for unconfigured midtrans")
	}
	if _, err := svc.ChargeDirect(context.Background(), DirectChargeRequest{}); err != nil {
		t.Fatalf("ChargeDirect returned error: %v", err)
	}
	if stripe.calls != 1 || direct.calls != 1 {
		t.Fatalf("unexpected calls stripe=%d direct=%d", stripe.calls, direct.calls)
	}
}
