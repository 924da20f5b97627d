package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jericho-forum/jericho/internal/application"
	"github.com/jericho-forum/jericho/pkg/response"
	"github.com/jericho-forum/jericho/pkg/validation"
)

type CommentHandler struct {
	Svc    *application.CommentService
	Logger *logrus.Logger
}

func NewCommentHandler(svc *application.CommentService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{Svc: svc, Logger: logger}
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cm, err := req.ToEntity(time.Now())
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid comment id reference", nil)
		return
	}

	res, err := h.Svc.CreateComment(c.Request.Context(), cm)
	if err != nil {
		h.Logger.WithError(err).Error("create comment failed")
		response.Error[any](c, http.StatusInternalServerError, "could not create comment", nil)
		return
	}
	if !res.Succeeded {
		response.Error[any](c, http.StatusBadRequest, "invalid comment", res.Errors)
		return
	}
	response.Success(c, http.StatusCreated, NewCommentResponse(res.Value), "comment created", nil)
}

func (h *CommentHandler) Get(c *gin.Context) {
	cm, err := h.Svc.GetComment(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid comment id", nil)
		return
	}
	if cm == nil {
		response.Error[any](c, http.StatusNotFound, "comment not found", nil)
		return
	}
	response.Success(c, http.StatusOK, NewCommentResponse(cm), "comment", nil)
}

// ListForPost returns every comment attached to a post as a flat list.
func (h *CommentHandler) ListForPost(c *gin.Context) {
	cms, err := h.Svc.GetCommentsForPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid post id", nil)
		return
	}
	response.Success(c, http.StatusOK, NewCommentResponses(cms), "comments", map[string]any{"count": len(cms)})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	deleted, err := h.Svc.DeleteComment(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid comment id", nil)
		return
	}
	if !deleted {
		response.Error[any](c, http.StatusNotFound, "comment not found", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "comment deleted", nil)
}
