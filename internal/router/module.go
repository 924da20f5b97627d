package router

import "github.com/gin-gonic/gin"

// Module is a forum feature (posts, comments, favorites, users, media) that
// mounts its own routes on the versioned API group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
