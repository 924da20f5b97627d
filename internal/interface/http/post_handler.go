package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jericho-forum/jericho/internal/application"
	"github.com/jericho-forum/jericho/pkg/response"
	"github.com/jericho-forum/jericho/pkg/validation"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.CreatePost(c.Request.Context(), req.ToEntity(time.Now()))
	if err != nil {
		h.Logger.WithError(err).Error("create post failed")
		response.Error[any](c, http.StatusInternalServerError, "could not create post", nil)
		return
	}
	if !res.Succeeded {
		response.Error[any](c, http.StatusBadRequest, "invalid post", res.Errors)
		return
	}
	response.Success(c, http.StatusCreated, res.Value, "post created", nil)
}

func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.Svc.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid post id", nil)
		return
	}
	if p == nil {
		response.Error[any](c, http.StatusNotFound, "post not found", nil)
		return
	}
	response.Success(c, http.StatusOK, p, "post", nil)
}

// List returns posts matching the remaining query parameters; page and limit
// control pagination, every other pair becomes a filter.
func (h *PostHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 0)
	limit := queryInt(c, "limit", 10)

	params := map[string]string{}
	for k, vs := range c.Request.URL.Query() {
		if k == "page" || k == "limit" || len(vs) == 0 {
			continue
		}
		params[k] = vs[0]
	}

	posts, err := h.Svc.GetPosts(c.Request.Context(), params, page, limit)
	if err != nil {
		h.Logger.WithError(err).Error("list posts failed")
		response.Error[any](c, http.StatusInternalServerError, "could not list posts", nil)
		return
	}
	response.Success(c, http.StatusOK, posts, "posts", map[string]any{"page": page, "limit": limit, "count": len(posts)})
}

func (h *PostHandler) Update(c *gin.Context) {
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := req.ToEntity()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid post id", nil)
		return
	}

	matched, err := h.Svc.UpdatePost(c.Request.Context(), p)
	if err != nil {
		h.Logger.WithError(err).Error("update post failed")
		response.Error[any](c, http.StatusInternalServerError, "could not update post", nil)
		return
	}
	if !matched {
		response.Error[any](c, http.StatusNotFound, "post not found", nil)
		return
	}
	response.Success(c, http.StatusOK, p, "post updated", nil)
}

func (h *PostHandler) Delete(c *gin.Context) {
	deleted, err := h.Svc.DeletePost(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid post id", nil)
		return
	}
	if !deleted {
		response.Error[any](c, http.StatusNotFound, "post not found", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "post deleted", nil)
}

func (h *PostHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	hits, err := h.Svc.SearchPosts(c.Request.Context(), q, queryInt(c, "limit", 10))
	if err != nil {
		h.Logger.WithError(err).Error("post search failed")
		response.Error[any](c, http.StatusInternalServerError, "search unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}

func queryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
