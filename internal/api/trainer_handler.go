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

// TrainerHandler holds the trainer service dependency.
type TrainerHandler struct {
	trainerService service.TrainerService
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(trainerService service.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService}
}

// --- Applications ---

type ApplyRequest struct {
	Name            string   `json:"name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Age             int      `json:"age"`
	Photo           string   `json:"photo"`
	Background      string   `json:"background"`
	Specializations []string `json:"specializations"`
	AvailableDays   []string `json:"availableDays"`
	AvailableTime   string   `json:"availableTime"`
}

// Apply handles POST /applied-trainers (token required).
func (h *TrainerHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	app := &domain.TrainerApplication{
		Name:            req.Name,
		Email:           req.Email,
		Age:             req.Age,
		Photo:           req.Photo,
		Background:      req.Background,
		Specializations: req.Specializations,
		AvailableDays:   req.AvailableDays,
		AvailableTime:   req.AvailableTime,
	}
	id, err := h.trainerService.Apply(c.Request.Context(), app)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to submit application")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id.Hex()})
}

// ListApplications handles GET /applied-trainers (admin only).
func (h *TrainerHandler) ListApplications(c *gin.Context) {
	apps, err := h.trainerService.ListApplications(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list applications")
		return
	}
	c.JSON(http.StatusOK, apps)
}

// GetApplication handles GET /applied-trainers/:id (admin only).
func (h *TrainerHandler) GetApplication(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid application ID format")
		return
	}

	app, err := h.trainerService.GetApplication(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch application")
		return
	}
	c.JSON(http.StatusOK, app)
}

// RejectApplication handles DELETE /applied-trainers/:id (admin only).
func (h *TrainerHandler) RejectApplication(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid application ID format")
		return
	}

	if err := h.trainerService.RejectApplication(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to reject application")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": 1})
}

// --- Promotion / Demotion ---

type PromoteRequest struct {
	Name            string   `json:"name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Age             int      `json:"age"`
	Photo           string   `json:"photo"`
	Background      string   `json:"background"`
	Specializations []string `json:"specializations"`
	AvailableDays   []string `json:"availableDays"`
	AvailableTime   string   `json:"availableTime"`
}

// Promote handles POST /trainers (admin only). The typed workflow
// outcome maps onto status codes instead of a silent no-op.
func (h *TrainerHandler) Promote(c *gin.Context) {
	var req PromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainer := &domain.Trainer{
		Name:            req.Name,
		Email:           req.Email,
		Age:             req.Age,
		Photo:           req.Photo,
		Background:      req.Background,
		Specializations: req.Specializations,
		AvailableDays:   req.AvailableDays,
		AvailableTime:   req.AvailableTime,
	}
	outcome, err := h.trainerService.Promote(c.Request.Context(), trainer)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Promotion failed: %v", err))
		return
	}

	switch outcome {
	case service.Promoted:
		c.JSON(http.StatusCreated, gin.H{"outcome": outcome.String(), "insertedId": trainer.ID.Hex()})
	case service.AlreadyTrainer:
		c.JSON(http.StatusOK, gin.H{"outcome": outcome.String()})
	case service.UserNotFound:
		abortWithError(c, http.StatusNotFound, outcome.String())
	case service.ApplicationMissing:
		// User is already promoted at this point; report the gap.
		c.JSON(http.StatusConflict, gin.H{"outcome": outcome.String()})
	}
}

// Demote handles DELETE /trainers/:id (admin only).
func (h *TrainerHandler) Demote(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format")
		return
	}

	if err := h.trainerService.Demote(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to demote trainer")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": 1})
}

// --- Listings ---

// ListTrainers handles GET /trainers with the optional team projection.
func (h *TrainerHandler) ListTrainers(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)
	teamOnly := c.Query("sort") == "team"

	trainers, err := h.trainerService.ListTrainers(c.Request.Context(), limit, teamOnly)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list trainers")
		return
	}
	c.JSON(http.StatusOK, trainers)
}

// GetTrainer handles GET /trainers/:id.
func (h *TrainerHandler) GetTrainer(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format")
		return
	}

	trainer, err := h.trainerService.GetTrainer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch trainer")
		return
	}
	c.JSON(http.StatusOK, trainer)
}

// GetTrainerByEmail handles GET /trainer/:email.
func (h *TrainerHandler) GetTrainerByEmail(c *gin.Context) {
	trainer, err := h.trainerService.GetTrainerByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch trainer")
		return
	}
	c.JSON(http.StatusOK, trainer)
}
