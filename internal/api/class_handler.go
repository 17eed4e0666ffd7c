package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"fitbelievers/gym-server/internal/domain"
	"fitbelievers/gym-server/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassHandler holds the catalog service dependency.
type ClassHandler struct {
	catalogService service.CatalogService
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(catalogService service.CatalogService) *ClassHandler {
	return &ClassHandler{catalogService: catalogService}
}

type CreateClassRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CreateClass handles POST /classes (admin only).
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	class := &domain.Class{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	}
	id, err := h.catalogService.CreateClass(c.Request.Context(), class)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create class")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id.Hex()})
}

// ListClasses handles GET /classes with page/size pagination and the
// optional name-only projection the slot form uses.
func (h *ClassHandler) ListClasses(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	size, _ := strconv.ParseInt(c.DefaultQuery("size", "0"), 10, 64)
	namesOnly := c.Query("optionData") != ""

	classes, err := h.catalogService.ListClasses(c.Request.Context(), page, size, namesOnly)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list classes")
		return
	}
	c.JSON(http.StatusOK, classes)
}

// GetClass handles GET /classes/:id.
func (h *ClassHandler) GetClass(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid class ID format")
		return
	}

	class, err := h.catalogService.GetClass(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch class")
		return
	}
	c.JSON(http.StatusOK, class)
}

// TopClasses handles GET /top-classes.
func (h *ClassHandler) TopClasses(c *gin.Context) {
	classes, err := h.catalogService.TopClasses(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list top classes")
		return
	}
	c.JSON(http.StatusOK, classes)
}

// CountClasses handles GET /classes-count.
func (h *ClassHandler) CountClasses(c *gin.Context) {
	count, err := h.catalogService.CountClasses(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to count classes")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
