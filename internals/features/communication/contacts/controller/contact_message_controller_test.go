package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"asafs_backend/internals/configs"
	"asafs_backend/internals/features/communication/contacts/model"
	"asafs_backend/internals/features/communication/contacts/service"
	"asafs_backend/internals/helpers/testdb"
	"asafs_backend/internals/middlewares"
)

type ack struct{ sent []string }

func (a *ack) SendContactAcknowledgment(_ context.Context, email, name string) {
	a.sent = append(a.sent, name+" <"+email+">")
}

func newContactApp(t *testing.T) (*fiber.App, *gorm.DB, *ack) {
	t.Helper()
	db := testdb.Open(t, &model.ContactMessageModel{})
	mail := &ack{}
	ctrl := NewContactController(service.NewContactService(db, mail))

	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler(configs.EnvProduction, zerolog.Nop())})
	app.Post("/api/contact", ctrl.Submit)
	app.Get("/api/contact", ctrl.List)
	app.Patch("/api/contact/:id/read", ctrl.MarkRead)
	app.Delete("/api/contact/:id", ctrl.Delete)
	return app, db, mail
}

func call(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, raw
}

func TestSubmit_RequiresNameEmailMessage(t *testing.T) {
	app, db, mail := newContactApp(t)
	for _, body := range []string{
		`{}`,
		`{"name":"Amina","email":"a@b.com"}`,
		`{"name":"  ","email":"a@b.com","message":"hi"}`,
		`{"name":"Amina","message":"hi"}`,
	} {
		status, raw := call(t, app, http.MethodPost, "/api/contact", body)
		if status != http.StatusBadRequest || !strings.Contains(string(raw), "Name, email, and message are required") {
			t.Fatalf("%s: unexpected %d %s", body, status, raw)
		}
	}
	var n int64
	db.Model(&model.ContactMessageModel{}).Count(&n)
	if n != 0 || len(mail.sent) != 0 {
		t.Fatalf("nothing should be saved or sent, rows=%d mails=%d", n, len(mail.sent))
	}
}

func TestSubmit_SavesAndAcknowledges(t *testing.T) {
	app, _, mail := newContactApp(t)
	status, raw := call(t, app, http.MethodPost, "/api/contact", `{"name":"Amina","email":"a@b.com","subject":"Volunteering","message":"Hello"}`)
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", status, raw)
	}
	var body struct {
		Status string                    `json:"status"`
		Data   model.ContactMessageModel `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "success" || body.Data.ContactMessageIsRead || body.Data.ContactMessageSubject == nil {
		t.Fatalf("unexpected body %+v", body)
	}
	if len(mail.sent) != 1 || mail.sent[0] != "Amina <a@b.com>" {
		t.Fatalf("expected one acknowledgment, got %v", mail.sent)
	}
}

func TestListMarkReadDelete(t *testing.T) {
	app, db, _ := newContactApp(t)
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	older := model.ContactMessageModel{ContactMessageName: "A", ContactMessageEmail: "a@x.org", ContactMessageBody: "1", ContactMessageCreatedAt: base}
	newer := model.ContactMessageModel{ContactMessageName: "B", ContactMessageEmail: "b@x.org", ContactMessageBody: "2", ContactMessageCreatedAt: base.Add(time.Minute)}
	if err := db.Create(&older).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Create(&newer).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	status, raw := call(t, app, http.MethodGet, "/api/contact", "")
	var list struct {
		Data []model.ContactMessageModel `json:"data"`
	}
	if status != http.StatusOK || json.Unmarshal(raw, &list) != nil || len(list.Data) != 2 {
		t.Fatalf("list: unexpected %d %s", status, raw)
	}
	if list.Data[0].ContactMessageID != newer.ContactMessageID {
		t.Fatalf("expected newest first, got %+v", list.Data)
	}

	status, raw = call(t, app, http.MethodGet, "/api/contact?per_page=1&page=2", "")
	var paged struct {
		Data       []model.ContactMessageModel `json:"data"`
		Pagination struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
		} `json:"pagination"`
	}
	if status != http.StatusOK || json.Unmarshal(raw, &paged) != nil {
		t.Fatalf("paged list: unexpected %d %s", status, raw)
	}
	if len(paged.Data) != 1 || paged.Data[0].ContactMessageID != older.ContactMessageID || paged.Pagination.Total != 2 || paged.Pagination.TotalPages != 2 {
		t.Fatalf("unexpected page %+v", paged)
	}

	status, raw = call(t, app, http.MethodPatch, "/api/contact/"+older.ContactMessageID.String()+"/read", "")
	if status != http.StatusOK || strings.TrimSpace(string(raw)) != `{"status":"success"}` {
		t.Fatalf("mark read: unexpected %d %s", status, raw)
	}
	var reread model.ContactMessageModel
	db.First(&reread, "contact_message_id = ?", older.ContactMessageID)
	if !reread.ContactMessageIsRead {
		t.Fatal("message should be marked read")
	}

	status, _ = call(t, app, http.MethodDelete, "/api/contact/"+older.ContactMessageID.String(), "")
	if status != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", status)
	}
	status, _ = call(t, app, http.MethodDelete, "/api/contact/"+older.ContactMessageID.String(), "")
	if status != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", status)
	}
	status, _ = call(t, app, http.MethodPatch, "/api/contact/nope/read", "")
	if status != http.StatusNotFound {
		t.Fatalf("mark read unknown: expected 404, got %d", status)
	}
}
