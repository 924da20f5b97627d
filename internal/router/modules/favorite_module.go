package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jericho-forum/jericho/internal/container"
	handlers "github.com/jericho-forum/jericho/internal/interface/http"
	"github.com/jericho-forum/jericho/internal/interface/middleware"
)

// FavoriteModule wires favorite routes. Every route requires a valid token;
// the owner is taken from the token claims.
type FavoriteModule struct {
	Handler *handlers.FavoriteHandler
}

func NewFavoriteModule(h *handlers.FavoriteHandler) *FavoriteModule {
	return &FavoriteModule{Handler: h}
}

func (m *FavoriteModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/favorites")
	auth.Use(middleware.Auth(container.GetJWT()))
	auth.Use(middleware.RateLimit(container.GetRedis(), container.GetLogger(), 120, time.Minute, middleware.KeyByUserID, nil))
	{
		auth.POST("/post", m.Handler.SavePost)
		auth.POST("/directory", m.Handler.SaveDirectory)
		auth.GET("", m.Handler.List)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
