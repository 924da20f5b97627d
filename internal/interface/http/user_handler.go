package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jericho-forum/jericho/internal/application"
	"github.com/jericho-forum/jericho/internal/identity"
	"github.com/jericho-forum/jericho/pkg/response"
	"github.com/jericho-forum/jericho/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Register creates the account and signs the caller in with the returned
// token. The confirmation email goes out in the background.
func (h *UserHandler) Register(c *gin.Context) {
	var req SaveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := identity.NewUserWithEmail(req.UserName, req.Email)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid user", nil)
		return
	}
	u.FirstName = req.FirstName
	u.LastName = req.LastName

	res := h.Svc.SaveUser(c.Request.Context(), u, req.Password)
	if !res.Succeeded {
		response.Error[any](c, http.StatusBadRequest, "could not register user", res.Errors)
		return
	}
	response.Success(c, http.StatusCreated, res.Value, "user registered", nil)
}

func (h *UserHandler) Authorize(c *gin.Context) {
	var req AuthUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res := h.Svc.AuthorizeUser(c.Request.Context(), req.UserName, req.Password)
	if !res.Succeeded {
		response.Error[any](c, http.StatusUnauthorized, "authorization failed", res.Errors)
		return
	}
	response.Success(c, http.StatusOK, res.Value, "authorized", nil)
}

// ConfirmEmail consumes the token from the activation link.
func (h *UserHandler) ConfirmEmail(c *gin.Context) {
	id := c.Query("id")
	token := c.Query("token")
	if id == "" || token == "" {
		response.Error[any](c, http.StatusBadRequest, "missing id or token", nil)
		return
	}

	res := h.Svc.ConfirmEmail(c.Request.Context(), id, token)
	if !res.Succeeded {
		response.Error[any](c, http.StatusBadRequest, "could not confirm email", res.Errors)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"confirmed": true}, "email confirmed", nil)
}

func (h *UserHandler) GetByUserName(c *gin.Context) {
	res := h.Svc.GetUserByUserName(c.Request.Context(), c.Param("username"))
	if !res.Succeeded {
		response.Error[any](c, http.StatusNotFound, "user not found", res.Errors)
		return
	}
	response.Success(c, http.StatusOK, NewGetUserResponse(res.Value), "user", nil)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	res := h.Svc.GetUserByID(c.Request.Context(), c.Param("id"))
	if !res.Succeeded {
		response.Error[any](c, http.StatusNotFound, "user not found", res.Errors)
		return
	}
	response.Success(c, http.StatusOK, NewGetUserResponse(res.Value), "user", nil)
}

// Update replaces the caller's profile fields. Credentials and confirmation
// state are untouched; email changes go through ChangeEmail.
func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res := h.Svc.GetUserByID(c.Request.Context(), c.GetString("userID"))
	if !res.Succeeded {
		response.Error[any](c, http.StatusNotFound, "user not found", res.Errors)
		return
	}
	u := res.Value
	u.FirstName = req.FirstName
	u.LastName = req.LastName

	matched, err := h.Svc.UpdateUser(c.Request.Context(), u)
	if err != nil {
		h.Logger.WithError(err).Error("update user failed")
		response.Error[any](c, http.StatusInternalServerError, "could not update user", nil)
		return
	}
	if !matched {
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, NewGetUserResponse(u), "user updated", nil)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res := h.Svc.ChangePassword(c.Request.Context(), c.GetString("userID"), req.OldPassword, req.NewPassword)
	if !res.Succeeded {
		response.Error[any](c, http.StatusBadRequest, "could not change password", res.Errors)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"changed": true}, "password changed", nil)
}

func (h *UserHandler) ChangeEmail(c *gin.Context) {
	var req ChangeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res := h.Svc.ChangeEmailAddress(c.Request.Context(), c.GetString("userID"), req.Email)
	if !res.Succeeded {
		response.Error[any](c, http.StatusBadRequest, "could not change email", res.Errors)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"changed": true}, "email changed", nil)
}
