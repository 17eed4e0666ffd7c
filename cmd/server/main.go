package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitbelievers/gym-server/internal/api"
	"fitbelievers/gym-server/internal/config"
	"fitbelievers/gym-server/internal/metrics"
	"fitbelievers/gym-server/internal/repository/mongo"
	"fitbelievers/gym-server/internal/service"
	"fitbelievers/gym-server/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting FitBelievers gym server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureClassIndexes(ctx, appDB.Collection("classes"))
		mongo.EnsureTrainerIndexes(ctx, appDB.Collection("trainers"))
		mongo.EnsureSlotIndexes(ctx, appDB.Collection("slots"))
		mongo.EnsureBookingIndexes(ctx, appDB.Collection("bookings"))
		log.Println("Index creation process completed.")
	}()

	// --- Metrics ---
	metrics.Register()

	// --- Initialize Storage ---
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	classRepo := mongo.NewMongoClassRepository(appDB)
	applicationRepo := mongo.NewMongoApplicationRepository(appDB)
	trainerRepo := mongo.NewMongoTrainerRepository(appDB)
	slotRepo := mongo.NewMongoSlotRepository(appDB)
	cartRepo := mongo.NewMongoCartRepository(appDB)
	bookingRepo := mongo.NewMongoBookingRepository(appDB)
	postRepo := mongo.NewMongoPostRepository(appDB)
	reviewRepo := mongo.NewMongoReviewRepository(appDB)
	subscriberRepo := mongo.NewMongoSubscriberRepository(appDB)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	catalogService := service.NewCatalogService(classRepo)
	trainerService := service.NewTrainerService(userRepo, applicationRepo, trainerRepo)
	slotService := service.NewSlotService(slotRepo, classRepo, trainerRepo)
	bookingService := service.NewBookingService(bookingRepo, cartRepo, slotRepo, classRepo, trainerRepo)
	communityService := service.NewCommunityService(postRepo, reviewRepo, subscriberRepo)
	adminService := service.NewAdminService(bookingRepo, subscriberRepo, trainerRepo, classRepo)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	api.SetupRoutes(router, api.RouterDeps{
		JWTSecret:        cfg.JWT.Secret,
		AdminGate:        cfg.Auth.AdminGate,
		UserRepo:         userRepo,
		AuthService:      authService,
		CatalogService:   catalogService,
		TrainerService:   trainerService,
		SlotService:      slotService,
		BookingService:   bookingService,
		CommunityService: communityService,
		AdminService:     adminService,
		FileStorage:      fileStorage,
	})

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
