package service

import (
	"context"
	"math"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

const (
	donationProductName        = "Donation ASAFS"
	donationProductDescription = "Soutien à l'autonomisation des femmes sourdes"
)

type StripeConfig struct {
	SecretKey   string
	FrontendURL string
	// APIURL overrides the Stripe API base, used by tests.
	APIURL string
}

// StripeCheckout creates hosted Checkout Sessions.
type StripeCheckout struct {
	client      *session.Client
	frontendURL string
}

func NewStripeCheckout(cfg StripeConfig) *StripeCheckout {
	bc := &stripe.BackendConfig{
		// one request per donation attempt
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	}
	if cfg.APIURL != "" {
		bc.URL = stripe.String(cfg.APIURL)
	}
	return &StripeCheckout{
		client: &session.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, bc),
			Key: cfg.SecretKey,
		},
		frontendURL: strings.TrimRight(cfg.FrontendURL, "/"),
	}
}

// MinorUnits converts a decimal amount to cents, rounding half away from zero.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (s *StripeCheckout) sessionParams(req HostedSessionRequest) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(strings.ToLower(req.Currency)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(donationProductName),
						Description: stripe.String(donationProductDescription),
					},
					UnitAmount: stripe.Int64(MinorUnits(req.Amount)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(s.frontendURL + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.frontendURL + "/don"),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	return params
}

func (s *StripeCheckout) CreateSession(ctx context.Context, req HostedSessionRequest) (*HostedSession, error) {
	params := s.sessionParams(req)
	params.Context = ctx

	cs, err := s.client.New(params)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "stripe checkout session")
	}
	return &HostedSession{ID: cs.ID, URL: cs.URL}, nil
}
