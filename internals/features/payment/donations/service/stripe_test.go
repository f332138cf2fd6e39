package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
)

func TestMinorUnits(t *testing.T) {
	cases := map[float64]int64{25: 2500, 19.99: 1999, 0.5: 50, 1: 100, 1234.56: 123456}
	for in, want := range cases {
		if got := MinorUnits(in); got != want {
			t.Fatalf("MinorUnits(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestStripeCheckout_CreateSession(t *testing.T) {
	var calls int32
	var form url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/v1/checkout/sessions") {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`))
	}))
	defer srv.Close()

	checkout := NewStripeCheckout(StripeConfig{SecretKey: "sk_test_123", FrontendURL: "https://asafs.org/", APIURL: srv.URL})
	sess, err := checkout.CreateSession(context.Background(), HostedSessionRequest{
		Provider:      ProviderStripe,
		Amount:        25,
		Currency:      "USD",
		CustomerEmail: "a@b.com",
	})
	if err != nil {
		t.Fatalf("CreateSession returned error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one API call, got %d", calls)
	}
	if sess.ID != "cs_test_1" || sess.URL != "https://checkout.stripe.com/c/pay/cs_test_1" {
		t.Fatalf("unexpected session %+v", sess)
	}

	expect := map[string]string{
		"line_items[0][price_data][unit_amount]":               "2500",
		"line_items[0][price_data][currency]":                  "usd",
		"line_items[0][price_data][product_data][name]":        "Donation ASAFS",
		"line_items[0][quantity]":                              "1",
		"mode":                                                 "payment",
		"customer_email":                                       "a@b.com",
		"success_url":                                          "https://asafs.org/success?session_id={CHECKOUT_SESSION_ID}",
		"cancel_url":                                           "https://asafs.org/don",
		"payment_method_types[0]":                              "card",
	}
	for k, want := range expect {
		if got := form.Get(k); got != want {
			t.Fatalf("form[%s] = %q, want %q", k, got, want)
		}
	}
}

func TestStripeCheckout_DoesNotRetryFailures(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"type":"api_error","message":"boom"}}`))
	}))
	defer srv.Close()

	checkout := NewStripeCheckout(StripeConfig{SecretKey: "sk_test_123", FrontendURL: "https://asafs.org", APIURL: srv.URL})
	if _, err := checkout.CreateSession(context.Background(), HostedSessionRequest{Amount: 5, Currency: "usd"}); err == nil {
		t.Fatal("expected provider error")
	}
	if calls != 1 {
		t.Fatalf("expected a single attempt, got %d", calls)
	}
}

func TestStripeCheckout_OmitsEmptyCustomerEmail(t *testing.T) {
	params := NewStripeCheckout(StripeConfig{FrontendURL: "http://x"}).sessionParams(HostedSessionRequest{Amount: 1, Currency: "EUR"})
	if params.CustomerEmail != nil {
		t.Fatalf("expected no customer email, got %q", *params.CustomerEmail)
	}
	if got := *params.LineItems[0].PriceData.Currency; got != "eur" {
		t.Fatalf("expected lowercase currency, got %q", got)
	}
}
