package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/jericho-forum/jericho/internal/container"
	handlers "github.com/jericho-forum/jericho/internal/interface/http"
	"github.com/jericho-forum/jericho/internal/interface/middleware"
)

// MediaModule wires the upload endpoint for post and comment media.
type MediaModule struct {
	Handler *handlers.MediaHandler
}

func NewMediaModule(h *handlers.MediaHandler) *MediaModule {
	return &MediaModule{Handler: h}
}

func (m *MediaModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/media")
	auth.Use(middleware.Auth(container.GetJWT()))
	{
		auth.POST("", m.Handler.Upload)
	}
}
