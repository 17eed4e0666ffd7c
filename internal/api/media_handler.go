package api

import (
	"fmt"
	"net/http"
	"strings"

	"fitbelievers/gym-server/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MediaHandler issues presigned URLs for trainer photos and class
// images so uploads bypass the API server entirely.
type MediaHandler struct {
	fileStorage storage.FileStorage
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(fileStorage storage.FileStorage) *MediaHandler {
	return &MediaHandler{fileStorage: fileStorage}
}

type UploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
	// Kind segments object keys: "trainer-photo" or "class-image".
	Kind string `json:"kind" binding:"required,oneof=trainer-photo class-image"`
}

type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// CreateUploadURL handles POST /uploads (token required).
func (h *MediaHandler) CreateUploadURL(c *gin.Context) {
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if !strings.HasPrefix(req.ContentType, "image/") {
		abortWithError(c, http.StatusBadRequest, "Only image uploads are supported")
		return
	}

	objectKey := fmt.Sprintf("%s/%s", req.Kind, uuid.NewString())
	url, err := h.fileStorage.GeneratePresignedUploadURL(c.Request.Context(), objectKey, req.ContentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create upload URL")
		return
	}

	c.JSON(http.StatusOK, UploadURLResponse{UploadURL: url, ObjectKey: objectKey})
}

// GetDownloadURL handles GET /uploads/*key.
func (h *MediaHandler) GetDownloadURL(c *gin.Context) {
	objectKey := strings.TrimPrefix(c.Param("key"), "/")
	if objectKey == "" {
		abortWithError(c, http.StatusBadRequest, "Object key is required")
		return
	}

	url, err := h.fileStorage.GeneratePresignedDownloadURL(c.Request.Context(), objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create download URL")
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadUrl": url, "objectKey": objectKey})
}

// DeleteObject handles DELETE /uploads/*key (admin only).
func (h *MediaHandler) DeleteObject(c *gin.Context) {
	objectKey := strings.TrimPrefix(c.Param("key"), "/")
	if objectKey == "" {
		abortWithError(c, http.StatusBadRequest, "Object key is required")
		return
	}

	if err := h.fileStorage.DeleteObject(c.Request.Context(), objectKey); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete object")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": objectKey})
}
