package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fitbelievers/gym-server/internal/domain"
	"fitbelievers/gym-server/internal/repository"
	"fitbelievers/gym-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// Constants for context keys
const (
	ContextEmailKey = "userEmail"
	ContextNameKey  = "userName"
)

// AuthMiddleware creates a Gin middleware for JWT authentication. The
// validated email lands in the request context; role checks happen in
// RequireRole against the stored account, not the token.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		// Expecting "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}
		tokenString := parts[1]

		claims := &service.Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWithError(c, http.StatusUnauthorized, "Token has expired")
			} else {
				abortWithError(c, http.StatusUnauthorized, fmt.Sprintf("Invalid token: %v", err))
			}
			return
		}

		if !token.Valid || claims.Email == "" {
			abortWithError(c, http.StatusUnauthorized, "Invalid token or missing claims")
			return
		}

		c.Set(ContextEmailKey, claims.Email)
		c.Set(ContextNameKey, claims.Name)
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// RequireRole creates middleware that loads the caller's account by the
// email AuthMiddleware stored and compares its role. The repository
// handle is injected here rather than captured from shared state. Costs
// one extra point lookup per protected request. Mismatch is always 403.
func RequireRole(users repository.UserRepository, role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, err := getEmailFromContext(c)
		if err != nil {
			// AuthMiddleware did not run or was bypassed.
			abortWithError(c, http.StatusInternalServerError, "User identity not found in context")
			return
		}

		user, err := users.GetByEmail(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				abortWithError(c, http.StatusForbidden, "forbidden access")
				return
			}
			abortWithError(c, http.StatusInternalServerError, "Failed to verify role")
			return
		}

		if user.Role != role {
			abortWithError(c, http.StatusForbidden, "forbidden access")
			return
		}
		c.Next()
	}
}

// Helper function to get the caller's email from context (used by handlers)
func getEmailFromContext(c *gin.Context) (string, error) {
	raw, exists := c.Get(ContextEmailKey)
	if !exists {
		return "", errors.New("user email not found in context")
	}
	email, ok := raw.(string)
	if !ok || email == "" {
		return "", errors.New("invalid user email in context")
	}
	return email, nil
}
