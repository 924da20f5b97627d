package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jericho-forum/jericho/internal/container"
	handlers "github.com/jericho-forum/jericho/internal/interface/http"
	"github.com/jericho-forum/jericho/internal/interface/middleware"
)

// UserModule wires account routes.
// Public: POST /api/v1/users, POST /api/v1/users/authorize,
// GET /api/v1/users/confirmemail, GET /api/v1/users/:username,
// GET /api/v1/users/id/:id
// Protected: PUT /api/v1/users, POST /api/v1/users/changepassword,
// POST /api/v1/users/changeemail
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	logger := container.GetLogger()

	// Credential endpoints get a tight per-IP budget
	registerLimiter := middleware.RateLimit(container.GetRedis(), logger, 10, time.Minute, middleware.KeyByIPAndPath, middleware.AllowPrivateIP)
	authorizeLimiter := middleware.RateLimit(container.GetRedis(), logger, 20, time.Minute, middleware.KeyByIPAndPath, middleware.AllowPrivateIP)

	rg.POST("/users", registerLimiter, m.Handler.Register)
	rg.POST("/users/authorize", authorizeLimiter, m.Handler.Authorize)
	rg.GET("/users/confirmemail", m.Handler.ConfirmEmail)
	rg.GET("/users/id/:id", m.Handler.GetByID)
	rg.GET("/users/:username", m.Handler.GetByUserName)

	auth := rg.Group("/users")
	auth.Use(middleware.Auth(container.GetJWT()))
	auth.Use(middleware.RateLimit(container.GetRedis(), logger, 30, time.Minute, middleware.KeyByUserID, nil))
	{
		auth.PUT("", m.Handler.Update)
		auth.POST("/changepassword", m.Handler.ChangePassword)
		auth.POST("/changeemail", m.Handler.ChangeEmail)
	}
}
