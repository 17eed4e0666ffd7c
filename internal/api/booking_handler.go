package api

import (
	"errors"
	"fmt"
	"net/http"

	"fitbelievers/gym-server/internal/domain"
	"fitbelievers/gym-server/internal/service"

	"github.com/gin-gonic/gin"
)

// BookingHandler holds the booking service dependency.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

type CartRequest struct {
	SlotID    string   `json:"slotId" binding:"required"`
	SlotName  string   `json:"slotName"`
	TrainerID string   `json:"trainerId"`
	Name      string   `json:"name"`
	Email     string   `json:"email" binding:"required,email"`
	Price     float64  `json:"price"`
	Classes   []string `json:"classes"`
}

// UpsertCart handles PUT /carts.
func (h *BookingHandler) UpsertCart(c *gin.Context) {
	var req CartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	item := &domain.CartItem{
		SlotID:    req.SlotID,
		SlotName:  req.SlotName,
		TrainerID: req.TrainerID,
		Name:      req.Name,
		Email:     req.Email,
		Price:     req.Price,
		Classes:   req.Classes,
	}
	if err := h.bookingService.UpsertCart(c.Request.Context(), item); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save cart")
		return
	}
	c.JSON(http.StatusOK, gin.H{"slotId": req.SlotID})
}

// GetCart handles GET /carts/:email.
func (h *BookingHandler) GetCart(c *gin.Context) {
	item, err := h.bookingService.GetCart(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, service.ErrCartNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}
	c.JSON(http.StatusOK, item)
}

type BookingRequest struct {
	SlotID    string   `json:"slotId" binding:"required"`
	TrainerID string   `json:"trainerId"`
	Name      string   `json:"name" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Price     float64  `json:"price"`
	Classes   []string `json:"classes"`
}

// CreateBooking handles POST /bookings. The response reflects the
// booking insert only; the downstream side effects are best effort.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	booking := &domain.Booking{
		SlotID:    req.SlotID,
		TrainerID: req.TrainerID,
		Name:      req.Name,
		Email:     req.Email,
		Price:     req.Price,
		Classes:   req.Classes,
	}
	id, err := h.bookingService.CreateBooking(c.Request.Context(), booking)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id.Hex(), "reference": booking.Reference})
}

// ListBookings handles GET /bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingService.ListBookings(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// BookedTrainers handles GET /booked-trainers/:email.
func (h *BookingHandler) BookedTrainers(c *gin.Context) {
	trainers, err := h.bookingService.BookedTrainers(c.Request.Context(), c.Param("email"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve booked trainers")
		return
	}
	c.JSON(http.StatusOK, trainers)
}
