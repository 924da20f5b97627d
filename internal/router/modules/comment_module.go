package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/jericho-forum/jericho/internal/interface/http"
)

// CommentModule wires the comment HTTP handlers into routes.
type CommentModule struct {
	Handler *handlers.CommentHandler
}

func NewCommentModule(h *handlers.CommentHandler) *CommentModule {
	return &CommentModule{Handler: h}
}

func (m *CommentModule) Register(rg *gin.RouterGroup) {
	rg.POST("/comments", m.Handler.Create)
	rg.GET("/comments/:id", m.Handler.Get)
	rg.DELETE("/comments/:id", m.Handler.Delete)
	rg.GET("/posts/:id/comments", m.Handler.ListForPost)
}
