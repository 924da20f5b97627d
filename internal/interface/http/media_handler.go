package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jericho-forum/jericho/pkg/helpers"
	"github.com/jericho-forum/jericho/pkg/response"
)

const maxUploadBytes = 16 << 20

// MediaHandler accepts image, gif and video uploads for posts and comments
// and stores them in a public Cloud Storage bucket.
type MediaHandler struct {
	Client *storage.Client
	Bucket string
	Logger *logrus.Logger
}

func NewMediaHandler(client *storage.Client, bucket string, logger *logrus.Logger) *MediaHandler {
	return &MediaHandler{Client: client, Bucket: bucket, Logger: logger}
}

var allowedMediaExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".mp4":  "video/mp4",
	".webm": "video/webm",
}

func (h *MediaHandler) Upload(c *gin.Context) {
	if h.Client == nil {
		response.Error[any](c, http.StatusServiceUnavailable, "media storage not configured", nil)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing file", nil)
		return
	}
	if fh.Size > maxUploadBytes {
		response.Error[any](c, http.StatusRequestEntityTooLarge, "file too large", nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	contentType, ok := allowedMediaExt[ext]
	if !ok {
		response.Error[any](c, http.StatusBadRequest, "unsupported media type", nil)
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	objectPath := "media/" + c.GetString("userID") + "/" + uuid.New().String() + ext
	url, err := helpers.UploadObject(c.Request.Context(), h.Client, h.Bucket, objectPath, contentType, f)
	if err != nil {
		h.Logger.WithError(err).Error("media upload failed")
		response.Error[any](c, http.StatusInternalServerError, "could not store file", nil)
		return
	}

	response.Success[any](c, http.StatusCreated, map[string]any{"url": url}, "media uploaded", nil)
}
