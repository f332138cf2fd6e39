// internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"asafs_backend/internals/constants"
	"asafs_backend/internals/features/users/auth/dto"
	authRepo "asafs_backend/internals/features/users/auth/repository"
	userModel "asafs_backend/internals/features/users/user/model"
	helper "asafs_backend/internals/helpers"
)

var (
	ErrBadCredentials = helper.NewAppError("Incorrect email or password", http.StatusUnauthorized)
	ErrEmailInUse     = helper.NewAppError("Email already in use", http.StatusBadRequest)
)

type AuthService struct {
	DB     *gorm.DB
	Tokens *TokenService
}

func NewAuthService(db *gorm.DB, tokens *TokenService) *AuthService {
	return &AuthService{DB: db, Tokens: tokens}
}

// Login returns the user and a fresh token. Unknown email and wrong
// password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*userModel.UserModel, string, error) {
	user, err := authRepo.FindUserByEmail(ctx, s.DB, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrBadCredentials
		}
		return nil, "", pkgerrors.Wrap(err, "find user by email")
	}
	if !CheckPassword(user.Password, password) {
		return nil, "", ErrBadCredentials
	}
	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Register creates an editor account. Admins come from the CLI.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*userModel.UserModel, string, error) {
	user, err := s.CreateUser(ctx, req.Name, req.Email, req.Password, constants.RoleEditor)
	if err != nil {
		return nil, "", err
	}
	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) CreateUser(ctx context.Context, name, email, password, role string) (*userModel.UserModel, error) {
	if !constants.IsValidRole(role) {
		return nil, helper.NewAppError("Invalid role", http.StatusBadRequest)
	}
	exists, err := authRepo.EmailExists(ctx, s.DB, email)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "check email")
	}
	if exists {
		return nil, ErrEmailInUse
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "hash password")
	}
	user := &userModel.UserModel{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: hashed,
		Role:     role,
	}
	if err := authRepo.CreateUser(ctx, s.DB, user); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, ErrEmailInUse
		}
		return nil, pkgerrors.Wrap(err, "create user")
	}
	return user, nil
}

func (s *AuthService) FindUserByID(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error) {
	return authRepo.FindUserByID(ctx, s.DB, id)
}

// ResetPassword sets a new password for an existing account (CLI only).
func (s *AuthService) ResetPassword(ctx context.Context, email, password string) error {
	user, err := authRepo.FindUserByEmail(ctx, s.DB, email)
	if err != nil {
		return helper.MapDBError(err, "User not found", "")
	}
	hashed, err := HashPassword(password)
	if err != nil {
		return pkgerrors.Wrap(err, "hash password")
	}
	return authRepo.UpdateUserPassword(ctx, s.DB, user.ID, hashed)
}
