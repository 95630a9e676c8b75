package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/veraroam/ambassador-backend/internal/db"
	"github.com/veraroam/ambassador-backend/internal/handlers"
	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/middleware"
	"github.com/veraroam/ambassador-backend/internal/repos"
	"github.com/veraroam/ambassador-backend/internal/server"
	"github.com/veraroam/ambassador-backend/internal/services"
	"github.com/veraroam/ambassador-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	adminEmail := utils.GetEnv("ADMIN_EMAIL", "", log)
	adminPassword := utils.GetEnv("ADMIN_PASSWORD", "", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 86400, log)
	port := utils.GetEnv("PORT", "8080", log)
	allowOrigins := strings.Split(utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173", log), ",")

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	updateRepo := repos.NewUpdateRepo(thePG, log)
	photoRepo := repos.NewPhotoRepo(thePG, log)
	photoVoteRepo := repos.NewPhotoVoteRepo(thePG, log)
	photoCommentRepo := repos.NewPhotoCommentRepo(thePG, log)
	outfitRepo := repos.NewOutfitRepo(thePG, log)
	destinationRepo := repos.NewDestinationRepo(thePG, log)
	storyRepo := repos.NewStoryRepo(thePG, log)
	travelDiaryRepo := repos.NewTravelDiaryRepo(thePG, log)
	diaryImageRepo := repos.NewDiaryImageRepo(thePG, log)
	experienceRepo := repos.NewExperienceRepo(thePG, log)
	eventRepo := repos.NewEventRepo(thePG, log)
	eventRegistrationRepo := repos.NewEventRegistrationRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	bucketService, err := services.NewBucketService(log)
	if err != nil {
		log.Fatal("Bucket init failed", "error", err)
	}
	mediaService := services.NewMediaService(log, bucketService)
	avatarService, err := services.NewAvatarService(log, mediaService)
	if err != nil {
		log.Warn("Avatar renderer unavailable, new accounts keep provider pictures only", "error", err)
		avatarService = nil
	}
	oauthProvider := services.NewGoogleOAuthProvider(services.GoogleOAuthConfig{
		ClientID:     utils.GetEnv("GOOGLE_OAUTH_CLIENT_ID", "", log),
		ClientSecret: utils.GetEnv("GOOGLE_OAUTH_CLIENT_SECRET", "", log),
		RedirectURL:  utils.GetEnv("GOOGLE_OAUTH_REDIRECT_URL", "http://localhost:8080/api/auth/oauth/callback", log),
	})
	authService := services.NewAuthService(
		thePG,
		log,
		userRepo,
		avatarService,
		jwtSecretKey,
		adminEmail,
		adminPassword,
		time.Duration(accessTokenTTL)*time.Second,
	)
	updateService := services.NewUpdateService(thePG, log, updateRepo, mediaService)
	photoService := services.NewPhotoService(thePG, log, photoRepo, photoVoteRepo, photoCommentRepo, mediaService)
	outfitService := services.NewOutfitService(thePG, log, outfitRepo, mediaService)
	destinationService := services.NewDestinationService(thePG, log, destinationRepo, mediaService)
	storyService := services.NewStoryService(thePG, log, storyRepo, mediaService)
	travelDiaryService := services.NewTravelDiaryService(thePG, log, travelDiaryRepo, diaryImageRepo, mediaService)
	experienceService := services.NewExperienceService(thePG, log, experienceRepo)
	eventService := services.NewEventService(thePG, log, eventRepo, eventRegistrationRepo, mediaService)

	// Handlers
	log.Info("Setting up Handlers from main...")
	authHandler := handlers.NewAuthHandler(authService, oauthProvider, "/admin")
	updateHandler := handlers.NewUpdateHandler(updateService)
	photoHandler := handlers.NewPhotoHandler(photoService)
	outfitHandler := handlers.NewOutfitHandler(outfitService)
	destinationHandler := handlers.NewDestinationHandler(destinationService)
	storyHandler := handlers.NewStoryHandler(storyService)
	travelDiaryHandler := handlers.NewTravelDiaryHandler(travelDiaryService)
	experienceHandler := handlers.NewExperienceHandler(experienceService)
	eventHandler := handlers.NewEventHandler(eventService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		AllowOrigins:       allowOrigins,
		AuthHandler:        authHandler,
		AuthMiddleware:     authMiddleware,
		UpdateHandler:      updateHandler,
		PhotoHandler:       photoHandler,
		OutfitHandler:      outfitHandler,
		DestinationHandler: destinationHandler,
		StoryHandler:       storyHandler,
		TravelDiaryHandler: travelDiaryHandler,
		ExperienceHandler:  experienceHandler,
		EventHandler:       eventHandler,
	})

	log.Info("Starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
