package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"asafs_backend/internals/constants"
	database "asafs_backend/internals/databases"
	authService "asafs_backend/internals/features/users/auth/service"
)

const minPasswordLen = 8

func checkPassword(p string) error {
	if len(p) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	return nil
}

func createAdminCmd() *cobra.Command {
	var name, email, password, role string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a staff account",
		Long: `Create a staff account. Self-registration only ever yields editors,
so admins are created here.

Examples:
  asafsctl create-admin --email admin@asafs.org --name Admin --password 'changeme123'
  asafsctl create-admin --email ed@asafs.org --name Ed --password 'changeme123' --role editor`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !constants.IsValidRole(role) {
				return fmt.Errorf("role must be one of %v", constants.AllRoles)
			}
			if err := checkPassword(password); err != nil {
				return err
			}

			db, log, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			svc := authService.NewAuthService(db, nil)
			user, err := svc.CreateUser(cmd.Context(), name, email, password, role)
			if err != nil {
				if errors.Is(err, authService.ErrEmailInUse) {
					return fmt.Errorf("%s is already registered", email)
				}
				return err
			}
			log.Info().Str("user_id", user.ID.String()).Str("email", user.Email).Str("role", user.Role).Msg("account created")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "Admin", "display name")
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	cmd.Flags().StringVar(&role, "role", constants.RoleAdmin, "admin or editor")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func resetPasswordCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password for an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkPassword(password); err != nil {
				return err
			}
			db, log, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			if err := authService.NewAuthService(db, nil).ResetPassword(cmd.Context(), email, password); err != nil {
				return err
			}
			log.Info().Str("email", email).Msg("password updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "new password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
