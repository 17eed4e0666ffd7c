package api

import (
	"errors"
	"fmt"
	"net/http"

	"fitbelievers/gym-server/internal/domain"
	"fitbelievers/gym-server/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

// TokenRequest is the identity payload for the /jwt compatibility
// endpoint. The caller is trusted here; real credential checks happen
// upstream at the identity provider.
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Photo    string `json:"photo"`
	Password string `json:"password" binding:"omitempty,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// --- Handler Methods ---

// IssueToken handles POST /jwt.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, err := h.authService.IssueToken(req.Email, req.Name)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not issue token")
		return
	}
	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// CreateUser handles POST /users. A second call with the same email is
// a no-op that reports the existing account.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user := &domain.User{
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
		Role:  domain.RoleMember,
	}
	created, err := h.authService.CreateUser(c.Request.Context(), user, req.Password)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "user already existed"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUser handles GET /users/:email (token required).
func (h *AuthHandler) GetUser(c *gin.Context) {
	email := c.Param("email")

	user, err := h.authService.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Login handles POST /login for accounts with a local credential.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Could not process login")
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token, User: user})
}
