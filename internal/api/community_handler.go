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

// CommunityHandler holds the community service dependency.
type CommunityHandler struct {
	communityService service.CommunityService
}

// NewCommunityHandler creates a new CommunityHandler.
func NewCommunityHandler(communityService service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communityService: communityService}
}

type CreatePostRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content"`
	Image       string `json:"image"`
	AuthorName  string `json:"authorName"`
	AuthorEmail string `json:"authorEmail"`
	AuthorRole  string `json:"authorRole"`
}

// CreatePost handles POST /posts.
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	post := &domain.Post{
		Title:       req.Title,
		Content:     req.Content,
		Image:       req.Image,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		AuthorRole:  req.AuthorRole,
	}
	id, err := h.communityService.CreatePost(c.Request.Context(), post)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id.Hex()})
}

// ListPosts handles GET /posts with pagination and the recentPost sort.
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	size, _ := strconv.ParseInt(c.DefaultQuery("size", "0"), 10, 64)
	recentFirst := c.Query("sort") == "recentPost"

	posts, err := h.communityService.ListPosts(c.Request.Context(), page, size, recentFirst)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

type VoteRequest struct {
	Upvote   int64 `json:"upvote"`
	Downvote int64 `json:"downvote"`
}

// Upvote handles PATCH /posts/upvote/:id (token required).
func (h *CommunityHandler) Upvote(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid post ID format")
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.communityService.Upvote(c.Request.Context(), id, req.Upvote); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to upvote post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": 1})
}

// Downvote handles PATCH /posts/downvote/:id (token required).
func (h *CommunityHandler) Downvote(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid post ID format")
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.communityService.Downvote(c.Request.Context(), id, req.Downvote); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to downvote post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": 1})
}

// CountPosts handles GET /posts-count.
func (h *CommunityHandler) CountPosts(c *gin.Context) {
	count, err := h.communityService.CountPosts(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to count posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

type SubscribeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
}

// Subscribe handles POST /newsletter.
func (h *CommunityHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	id, err := h.communityService.Subscribe(c.Request.Context(), &domain.Subscriber{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to subscribe")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id.Hex()})
}

// ListSubscribers handles GET /subscribers (admin-gated by default).
func (h *CommunityHandler) ListSubscribers(c *gin.Context) {
	subs, err := h.communityService.ListSubscribers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list subscribers")
		return
	}
	c.JSON(http.StatusOK, subs)
}

type ReviewRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Photo    string `json:"photo"`
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback" binding:"required"`
}

// CreateReview handles POST /reviews.
func (h *CommunityHandler) CreateReview(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	id, err := h.communityService.CreateReview(c.Request.Context(), &domain.Review{
		Name:     req.Name,
		Email:    req.Email,
		Photo:    req.Photo,
		Rating:   req.Rating,
		Feedback: req.Feedback,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save review")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id.Hex()})
}

// ListReviews handles GET /reviews.
func (h *CommunityHandler) ListReviews(c *gin.Context) {
	reviews, err := h.communityService.ListReviews(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}
