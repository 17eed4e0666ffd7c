package api

import (
	"errors"
	"fmt"
	"net/http"

	"fitbelievers/gym-server/internal/domain"
	"fitbelievers/gym-server/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SlotHandler holds the slot service dependency.
type SlotHandler struct {
	slotService service.SlotService
}

// NewSlotHandler creates a new SlotHandler.
func NewSlotHandler(slotService service.SlotService) *SlotHandler {
	return &SlotHandler{slotService: slotService}
}

type SlotTrainerRequest struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Photo string `json:"photo"`
}

type CreateSlotRequest struct {
	Trainer         SlotTrainerRequest `json:"trainer" binding:"required"`
	SlotName        string             `json:"slotName" binding:"required"`
	SlotDays        []string           `json:"slotDays"`
	SlotTime        string             `json:"slotTime"`
	ClassesIncludes []string           `json:"classesIncludes"`
	Price           float64            `json:"price"`
}

// CreateSlot handles POST /slots (trainer only).
func (h *SlotHandler) CreateSlot(c *gin.Context) {
	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainerID, err := primitive.ObjectIDFromHex(req.Trainer.ID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format")
		return
	}

	slot := &domain.Slot{
		Trainer: domain.SlotTrainer{
			ID:    trainerID,
			Name:  req.Trainer.Name,
			Email: req.Trainer.Email,
			Photo: req.Trainer.Photo,
		},
		SlotName:        req.SlotName,
		SlotDays:        req.SlotDays,
		SlotTime:        req.SlotTime,
		ClassesIncludes: req.ClassesIncludes,
		Price:           req.Price,
	}
	id, err := h.slotService.CreateSlot(c.Request.Context(), slot)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create slot")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id.Hex()})
}

// GetSlot handles GET /slot/:id.
func (h *SlotHandler) GetSlot(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid slot ID format")
		return
	}

	slot, err := h.slotService.GetSlot(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSlotNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch slot")
		return
	}
	c.JSON(http.StatusOK, slot)
}

// GetSlotsByEmail handles GET /slots/:email.
func (h *SlotHandler) GetSlotsByEmail(c *gin.Context) {
	slots, err := h.slotService.GetSlotsByTrainerEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list slots")
		return
	}
	c.JSON(http.StatusOK, slots)
}

// DeleteSlot handles DELETE /slots/:id (trainer only).
func (h *SlotHandler) DeleteSlot(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid slot ID format")
		return
	}

	if err := h.slotService.DeleteSlot(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrSlotNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete slot")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": 1})
}
