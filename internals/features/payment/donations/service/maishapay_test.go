package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newMaishaServer(t *testing.T, status int, body string, seen *map[string]any, calls *int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, seen); err != nil {
			t.Errorf("request body is not json: %v", err)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestMaishaPayClient_Charge(t *testing.T) {
	var seen map[string]any
	calls := 0
	srv := newMaishaServer(t, http.StatusOK, `{"status":"PENDING","transactionId":"tx-1"}`, &seen, &calls)

	client := NewMaishaPayClient(MaishaPayConfig{
		APIURL:      srv.URL,
		APIKey:      "key",
		MerchantID:  "merchant",
		CallbackURL: "https://api.asafs.org/api/payments/callback/maishapay",
	}, srv.Client())

	data, err := client.Charge(context.Background(), DirectChargeRequest{
		Method:   "mpesa",
		Amount:   10000,
		Currency: "CDF",
		Phone:    "0810000000",
		Customer: map[string]any{"name": "Amina"},
	})
	if err != nil {
		t.Fatalf("Charge returned error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one POST, got %d", calls)
	}
	if string(data) != `{"status":"PENDING","transactionId":"tx-1"}` {
		t.Fatalf("expected raw body, got %s", data)
	}

	checks := map[string]any{
		"api_key":      "key",
		"merchant_id":  "merchant",
		"amount":       float64(10000),
		"currency":     "CDF",
		"phone":        "0810000000",
		"description":  "Donation ASAFS",
		"callback_url": "https://api.asafs.org/api/payments/callback/maishapay",
	}
	for k, want := range checks {
		if seen[k] != want {
			t.Fatalf("payload[%s] = %v, want %v", k, seen[k], want)
		}
	}
	if cust, _ := seen["customer"].(map[string]any); cust["name"] != "Amina" {
		t.Fatalf("customer not forwarded: %v", seen["customer"])
	}
}

func TestMaishaPayClient_WrapsNonJSONBody(t *testing.T) {
	var seen map[string]any
	calls := 0
	srv := newMaishaServer(t, http.StatusOK, "accepted", &seen, &calls)

	data, err := NewMaishaPayClient(MaishaPayConfig{APIURL: srv.URL}, srv.Client()).Charge(context.Background(), DirectChargeRequest{Phone: "1"})
	if err != nil {
		t.Fatalf("Charge returned error: %v", err)
	}
	if string(data) != `"accepted"` {
		t.Fatalf("expected json string, got %s", data)
	}
}

func TestMaishaPayClient_Non2xxIsError(t *testing.T) {
	var seen map[string]any
	calls := 0
	srv := newMaishaServer(t, http.StatusBadGateway, `{"error":"down"}`, &seen, &calls)

	_, err := NewMaishaPayClient(MaishaPayConfig{APIURL: srv.URL}, srv.Client()).Charge(context.Background(), DirectChargeRequest{Phone: "1"})
	if err == nil {
		t.Fatal("expected error for 502")
	}
	if calls != 1 {
		t.Fatalf("expected no retry, got %d calls", calls)
	}
}
