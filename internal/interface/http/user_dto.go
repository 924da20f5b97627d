package handlers

import (
	"time"

	"github.com/jericho-forum/jericho/internal/identity"
)

type SaveUserRequest struct {
	UserName  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,pwd"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

type AuthUserRequest struct {
	UserName string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldpassword" binding:"required"`
	NewPassword string `json:"newpassword" binding:"required,pwd"`
}

type ChangeEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdateUserRequest replaces the mutable profile fields of the caller.
// Email changes go through the dedicated changeemail endpoint.
type UpdateUserRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

// GetUserResponse is the public shape of an account. The password hash,
// security stamp and lockout state never leave the server.
type GetUserResponse struct {
	ID             string    `json:"id"`
	UserName       string    `json:"username"`
	FirstName      string    `json:"firstname"`
	LastName       string    `json:"lastname"`
	Email          string    `json:"email"`
	EmailConfirmed bool      `json:"emailconfirmed"`
	CreatedOn      time.Time `json:"createdon"`
}

func NewGetUserResponse(u *identity.User) GetUserResponse {
	return GetUserResponse{
		ID:             u.ID.Hex(),
		UserName:       u.UserName,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email.Value,
		EmailConfirmed: u.Email.IsConfirmed,
		CreatedOn:      u.CreatedOn.Instant,
	}
}
