package dto

import (
	userModel "asafs_backend/internals/features/users/user/model"
)

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required,max=100"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
}

type UserResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Role   string  `json:"role"`
	Avatar *string `json:"avatar,omitempty"`
}

type AuthResponse struct {
	Status string       `json:"status"`
	Token  string       `json:"token"`
	User   UserResponse `json:"user"`
}

func FromUser(u *userModel.UserModel) UserResponse {
	return UserResponse{
		ID:     u.ID.String(),
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Avatar: u.Avatar,
	}
}
