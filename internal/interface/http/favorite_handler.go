package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jericho-forum/jericho/internal/application"
	"github.com/jericho-forum/jericho/internal/domain/entity"
	"github.com/jericho-forum/jericho/pkg/response"
	"github.com/jericho-forum/jericho/pkg/validation"
)

// FavoriteHandler serves the favorites of the authenticated user only; the
// owner id always comes from the token, never from the payload.
type FavoriteHandler struct {
	Svc    *application.FavoriteService
	Logger *logrus.Logger
}

func NewFavoriteHandler(svc *application.FavoriteService, logger *logrus.Logger) *FavoriteHandler {
	return &FavoriteHandler{Svc: svc, Logger: logger}
}

func (h *FavoriteHandler) SavePost(c *gin.Context) {
	h.save(c, entity.FavoriteTypePost)
}

func (h *FavoriteHandler) SaveDirectory(c *gin.Context) {
	h.save(c, entity.FavoriteTypeDirectory)
}

func (h *FavoriteHandler) save(c *gin.Context, ft entity.FavoriteType) {
	var req SaveFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	fav, err := req.ToEntity(c.GetString("userID"), ft, time.Now())
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid target id", nil)
		return
	}

	res, err := h.Svc.SaveFavorite(c.Request.Context(), fav)
	if err != nil {
		h.Logger.WithError(err).Error("save favorite failed")
		response.Error[any](c, http.StatusInternalServerError, "could not save favorite", nil)
		return
	}
	if !res.Succeeded {
		response.Error[any](c, http.StatusBadRequest, "invalid favorite", res.Errors)
		return
	}
	response.Success(c, http.StatusCreated, NewFavoriteResponse(res.Value), "favorite saved", nil)
}

func (h *FavoriteHandler) List(c *gin.Context) {
	favs, err := h.Svc.GetFavoritesForUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	response.Success(c, http.StatusOK, NewFavoriteResponses(favs), "favorites", map[string]any{"count": len(favs)})
}

func (h *FavoriteHandler) Delete(c *gin.Context) {
	deleted, err := h.Svc.DeleteFavorite(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid favorite id", nil)
		return
	}
	if !deleted {
		response.Error[any](c, http.StatusNotFound, "favorite not found", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "favorite deleted", nil)
}
