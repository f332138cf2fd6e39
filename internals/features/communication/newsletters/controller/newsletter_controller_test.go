package controller

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"asafs_backend/internals/configs"
	"asafs_backend/internals/features/communication/newsletters/model"
	"asafs_backend/internals/features/communication/newsletters/service"
	"asafs_backend/internals/helpers/testdb"
	"asafs_backend/internals/middlewares"
)

type nopWelcome struct{}

func (nopWelcome) SendWelcomeNewsletter(context.Context, string) {}

func newNewsletterApp(t *testing.T) *fiber.App {
	t.Helper()
	svc := service.NewNewsletterService(testdb.Open(t, &model.NewsletterSubscriptionModel{}), nopWelcome{})
	ctrl := NewNewsletterController(svc)
	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler(configs.EnvProduction, zerolog.Nop())})
	app.Post("/api/newsletter/subscribe", ctrl.Subscribe)
	app.Post("/api/newsletter/unsubscribe", ctrl.Unsubscribe)
	app.Get("/api/newsletter", ctrl.List)
	return app
}

func send(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(raw)
}

func TestNewsletterEndpoints(t *testing.T) {
	app := newNewsletterApp(t)

	if status, body := send(t, app, http.MethodPost, "/api/newsletter/subscribe", `{"email":" "}`); status != http.StatusBadRequest || !strings.Contains(body, msgEmailRequired) {
		t.Fatalf("missing email: unexpected %d %s", status, body)
	}

	status, body := send(t, app, http.MethodPost, "/api/newsletter/subscribe", `{"email":"Reader@Example.org"}`)
	if status != http.StatusCreated || !strings.Contains(body, `"email":"reader@example.org"`) || !strings.Contains(body, `"status":"success"`) {
		t.Fatalf("subscribe: unexpected %d %s", status, body)
	}

	status, body = send(t, app, http.MethodPost, "/api/newsletter/unsubscribe", `{"email":"reader@example.org"}`)
	if status != http.StatusOK || !strings.Contains(body, "Unsubscribed successfully") {
		t.Fatalf("unsubscribe: unexpected %d %s", status, body)
	}

	if status, _ := send(t, app, http.MethodPost, "/api/newsletter/unsubscribe", `{"email":"ghost@example.org"}`); status != http.StatusNotFound {
		t.Fatalf("unknown unsubscribe: expected 404, got %d", status)
	}

	status, body = send(t, app, http.MethodGet, "/api/newsletter", "")
	if status != http.StatusOK || !strings.Contains(body, `"isActive":false`) {
		t.Fatalf("list: unexpected %d %s", status, body)
	}
}
