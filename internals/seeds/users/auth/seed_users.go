package user

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	authRepo "asafs_backend/internals/features/users/auth/repository"
	authService "asafs_backend/internals/features/users/auth/service"
)

type UserSeed struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedUsersFromJSON creates the staff accounts listed in filePath. Existing
// emails are skipped. Returns the number of accounts created.
func SeedUsersFromJSON(ctx context.Context, db *gorm.DB, filePath string, log zerolog.Logger) (int, error) {
	log.Info().Str("file", filePath).Msg("reading user seeds")

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", filePath, err)
	}
	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("decode %s: %w", filePath, err)
	}

	svc := authService.NewAuthService(db, nil)
	created := 0
	for _, data := range inputs {
		exists, err := authRepo.EmailExists(ctx, db, data.Email)
		if err != nil {
			return created, err
		}
		if exists {
			log.Info().Str("email", data.Email).Msg("user already exists, skipped")
			continue
		}
		if _, err := svc.CreateUser(ctx, data.Name, data.Email, data.Password, data.Role); err != nil {
			log.Error().Err(err).Str("email", data.Email).Msg("seed user failed")
			continue
		}
		created++
	}
	return created, nil
}
