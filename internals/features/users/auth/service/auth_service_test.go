package service

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"asafs_backend/internals/constants"
	"asafs_backend/internals/features/users/auth/dto"
	userModel "asafs_backend/internals/features/users/user/model"
	helper "asafs_backend/internals/helpers"
	"asafs_backend/internals/helpers/testdb"
)

func TestMain(m *testing.M) {
	BcryptCost = bcrypt.MinCost
	os.Exit(m.Run())
}

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(testdb.Open(t, &userModel.UserModel{}), NewTokenService("test-secret"))
}

func statusOf(err error) int {
	var appErr *helper.AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return 0
}

func TestRegister_CreatesEditorWithHashedPassword(t *testing.T) {
	svc := newTestAuthService(t)
	user, token, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name: " Amina ", Email: "Amina@Example.org", Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != constants.RoleEditor || user.Email != "amina@example.org" || user.Name != "Amina" {
		t.Fatalf("unexpected user %+v", user)
	}
	if user.Password == "s3cret-pass" || !CheckPassword(user.Password, "s3cret-pass") {
		t.Fatal("password should be stored as bcrypt hash")
	}
	id, err := svc.Tokens.Parse(token)
	if err != nil || id != user.ID {
		t.Fatalf("token does not carry user id: %v %v", id, err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService(t)
	req := dto.RegisterRequest{Name: "A", Email: "a@example.org", Password: "password1"}
	if _, _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	req.Email = "A@EXAMPLE.org"
	_, _, err := svc.Register(context.Background(), req)
	if err != ErrEmailInUse {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()
	if _, err := svc.CreateUser(ctx, "Admin", "admin@example.org", "password1", constants.RoleAdmin); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	user, token, err := svc.Login(ctx, " ADMIN@example.org", "password1")
	if err != nil || token == "" || user.Role != constants.RoleAdmin {
		t.Fatalf("login failed: %+v %q %v", user, token, err)
	}

	for _, tc := range []struct{ email, password string }{
		{"admin@example.org", "wrong-pass"},
		{"nobody@example.org", "password1"},
	} {
		if _, _, err := svc.Login(ctx, tc.email, tc.password); statusOf(err) != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %v", tc.email, err)
		}
	}
}

func TestCreateUser_RejectsUnknownRole(t *testing.T) {
	svc := newTestAuthService(t)
	if _, err := svc.CreateUser(context.Background(), "X", "x@example.org", "password1", "owner"); statusOf(err) != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestResetPassword(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()
	if _, err := svc.CreateUser(ctx, "Ed", "ed@example.org", "old-password", constants.RoleEditor); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if err := svc.ResetPassword(ctx, "ed@example.org", "new-password"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if _, _, err := svc.Login(ctx, "ed@example.org", "new-password"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if err := svc.ResetPassword(ctx, "ghost@example.org", "x"); statusOf(err) != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestTokenService(t *testing.T) {
	tokens := NewTokenService("secret")
	id := uuid.New()

	fresh, err := tokens.Issue(id)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if got, err := tokens.Parse(fresh); err != nil || got != id {
		t.Fatalf("Parse fresh token: %v %v", got, err)
	}
	if _, err := NewTokenService("other").Parse(fresh); err != ErrInvalidToken {
		t.Fatalf("wrong secret should fail, got %v", err)
	}

	old := NewTokenService("secret")
	old.now = func() time.Time { return time.Now().Add(-AccessTokenTTL - time.Hour) }
	expired, _ := old.Issue(id)
	if _, err := tokens.Parse(expired); err != ErrInvalidToken {
		t.Fatalf("expired token should fail, got %v", err)
	}

	unsigned, _ := jwt.NewWithClaims(jwt.SigningMethodNone, AccessClaims{UserID: id.String()}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := tokens.Parse(unsigned); err != ErrInvalidToken {
		t.Fatalf("alg none must be rejected, got %v", err)
	}
}
