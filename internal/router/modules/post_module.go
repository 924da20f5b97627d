package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/jericho-forum/jericho/internal/interface/http"
)

// PostModule wires the post HTTP handlers into routes.
// POST /api/v1/posts, GET /api/v1/posts, GET /api/v1/posts/search,
// GET/DELETE /api/v1/posts/:id, PUT /api/v1/posts
type PostModule struct {
	Handler *handlers.PostHandler
}

func NewPostModule(h *handlers.PostHandler) *PostModule {
	return &PostModule{Handler: h}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	rg.POST("/posts", m.Handler.Create)
	rg.GET("/posts", m.Handler.List)
	rg.GET("/posts/search", m.Handler.Search)
	rg.GET("/posts/:id", m.Handler.Get)
	rg.PUT("/posts", m.Handler.Update)
	rg.DELETE("/posts/:id", m.Handler.Delete)
}
