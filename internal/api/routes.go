package api

import (
	"net/http"

	"fitbelievers/gym-server/internal/domain"
	"fitbelievers/gym-server/internal/repository"
	"fitbelievers/gym-server/internal/service"
	"fitbelievers/gym-server/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps bundles everything SetupRoutes wires into handlers and
// middleware. The user repository is needed directly for role checks.
type RouterDeps struct {
	JWTSecret string
	AdminGate bool

	UserRepo repository.UserRepository

	AuthService      service.AuthService
	CatalogService   service.CatalogService
	TrainerService   service.TrainerService
	SlotService      service.SlotService
	BookingService   service.BookingService
	CommunityService service.CommunityService
	AdminService     service.AdminService
	FileStorage      storage.FileStorage
}

// SetupRoutes registers the full HTTP surface.
func SetupRoutes(router *gin.Engine, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthService)
	classHandler := NewClassHandler(deps.CatalogService)
	trainerHandler := NewTrainerHandler(deps.TrainerService)
	slotHandler := NewSlotHandler(deps.SlotService)
	bookingHandler := NewBookingHandler(deps.BookingService)
	communityHandler := NewCommunityHandler(deps.CommunityService)
	adminHandler := NewAdminHandler(deps.AdminService)
	mediaHandler := NewMediaHandler(deps.FileStorage)

	authRequired := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(deps.UserRepo, domain.RoleAdmin)
	trainerOnly := RequireRole(deps.UserRepo, domain.RoleTrainer)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// --- Auth & users ---
	router.POST("/jwt", authHandler.IssueToken)
	router.POST("/login", authHandler.Login)
	router.POST("/users", authHandler.CreateUser)
	router.GET("/users/:email", authRequired, authHandler.GetUser)

	// --- Class catalog ---
	router.GET("/classes", classHandler.ListClasses)
	router.GET("/classes/:id", classHandler.GetClass)
	router.GET("/classes-count", classHandler.CountClasses)
	router.GET("/top-classes", classHandler.TopClasses)
	router.POST("/classes", authRequired, adminOnly, classHandler.CreateClass)

	// --- Trainer applications ---
	router.POST("/applied-trainers", authRequired, trainerHandler.Apply)
	router.GET("/applied-trainers", authRequired, adminOnly, trainerHandler.ListApplications)
	router.GET("/applied-trainers/:id", authRequired, adminOnly, trainerHandler.GetApplication)
	router.DELETE("/applied-trainers/:id", authRequired, adminOnly, trainerHandler.RejectApplication)

	// --- Trainers ---
	router.GET("/trainers", trainerHandler.ListTrainers)
	router.GET("/trainers/:id", trainerHandler.GetTrainer)
	router.GET("/trainer/:email", trainerHandler.GetTrainerByEmail)
	router.POST("/trainers", authRequired, adminOnly, trainerHandler.Promote)
	router.DELETE("/trainers/:id", authRequired, adminOnly, trainerHandler.Demote)

	// --- Slots ---
	router.POST("/slots", authRequired, trainerOnly, slotHandler.CreateSlot)
	router.GET("/slot/:id", slotHandler.GetSlot)
	router.GET("/slots/:email", slotHandler.GetSlotsByEmail)
	router.DELETE("/slots/:id", authRequired, trainerOnly, slotHandler.DeleteSlot)

	// --- Carts & bookings ---
	router.PUT("/carts", bookingHandler.UpsertCart)
	router.GET("/carts/:email", bookingHandler.GetCart)
	router.POST("/bookings", bookingHandler.CreateBooking)
	router.GET("/bookings", bookingHandler.ListBookings)
	router.GET("/booked-trainers/:email", bookingHandler.BookedTrainers)

	// --- Community ---
	router.POST("/posts", communityHandler.CreatePost)
	router.GET("/posts", communityHandler.ListPosts)
	router.GET("/posts-count", communityHandler.CountPosts)
	router.PATCH("/posts/upvote/:id", authRequired, communityHandler.Upvote)
	router.PATCH("/posts/downvote/:id", authRequired, communityHandler.Downvote)
	router.POST("/newsletter", communityHandler.Subscribe)
	router.POST("/reviews", communityHandler.CreateReview)
	router.GET("/reviews", communityHandler.ListReviews)

	// --- Media uploads ---
	router.POST("/uploads", authRequired, mediaHandler.CreateUploadURL)
	router.GET("/uploads/*key", mediaHandler.GetDownloadURL)
	router.DELETE("/uploads/*key", authRequired, adminOnly, mediaHandler.DeleteObject)

	// Sensitive aggregations sit behind the admin gate unless it is
	// switched off for compatibility testing.
	if deps.AdminGate {
		router.GET("/subscribers", authRequired, adminOnly, communityHandler.ListSubscribers)
		router.GET("/admin-stats", authRequired, adminOnly, adminHandler.Stats)
	} else {
		router.GET("/subscribers", communityHandler.ListSubscribers)
		router.GET("/admin-stats", adminHandler.Stats)
	}
}
