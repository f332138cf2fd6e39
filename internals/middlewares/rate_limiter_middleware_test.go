package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestGlobalRateLimiter_SkipsProviderCallbacks(t *testing.T) {
	app := fiber.New()
	app.Use(GlobalRateLimiter())
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Post("/api/payments/webhook/stripe", ok)
	app.Post("/api/payments/callback/maishapay", ok)
	app.Post("/api/payments/initiate", ok)

	send := func(path string) int {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, path, nil), -1)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		resp.Body.Close()
		return resp.StatusCode
	}

	for i := 0; i < 150; i++ {
		if status := send("/api/payments/webhook/stripe"); status != http.StatusOK {
			t.Fatalf("webhook delivery %d: expected 200, got %d", i+1, status)
		}
	}

	limited := false
	for i := 0; i < 101; i++ {
		if send("/api/payments/initiate") == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Fatal("initiate should still be rate limited")
	}
	if status := send("/api/payments/callback/maishapay"); status != http.StatusOK {
		t.Fatalf("callback after limit: expected 200, got %d", status)
	}
}
