package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	pkgerrors "github.com/pkg/errors"
)

const maxAggregatorBody = 1 << 20

type MaishaPayConfig struct {
	APIURL      string
	APIKey      string
	MerchantID  string
	CallbackURL string
}

// MaishaPayClient posts direct mobile-money charges to the aggregator.
type MaishaPayClient struct {
	cfg  MaishaPayConfig
	http *http.Client
}

// NewMaishaPayClient uses a client without timeout; the inbound request
// context bounds the call.
func NewMaishaPayClient(cfg MaishaPayConfig, httpClient *http.Client) *MaishaPayClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &MaishaPayClient{cfg: cfg, http: httpClient}
}

type maishaPayRequest struct {
	APIKey      string         `json:"api_key"`
	MerchantID  string         `json:"merchant_id"`
	Amount      float64        `json:"amount"`
	Currency    string         `json:"currency"`
	Phone       string         `json:"phone"`
	Description string         `json:"description"`
	CallbackURL string         `json:"callback_url"`
	Customer    map[string]any `json:"customer"`
}

// Charge sends one POST and returns the provider body untouched. A body
// that is not JSON comes back as a JSON string.
func (m *MaishaPayClient) Charge(ctx context.Context, req DirectChargeRequest) (json.RawMessage, error) {
	payload, err := sonic.Marshal(maishaPayRequest{
		APIKey:      m.cfg.APIKey,
		MerchantID:  m.cfg.MerchantID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Phone:       req.Phone,
		Description: donationProductName,
		CallbackURL: m.cfg.CallbackURL,
		Customer:    req.Customer,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "encode maishapay request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.APIURL, bytes.NewReader(payload))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "build maishapay request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := m.http.Do(httpReq)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "maishapay request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAggregatorBody))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "read maishapay response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, pkgerrors.WithStack(fmt.Errorf("maishapay status %d: %s", resp.StatusCode, truncate(body, 512)))
	}

	body = bytes.TrimSpace(body)
	if len(body) > 0 && json.Valid(body) {
		return json.RawMessage(body), nil
	}
	quoted, err := sonic.Marshal(string(body))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "wrap maishapay response")
	}
	return json.RawMessage(quoted), nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
