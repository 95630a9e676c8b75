package server

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/veraroam/ambassador-backend/internal/handlers"
	"github.com/veraroam/ambassador-backend/internal/middleware"
)

const (
	adminPathPrefix = "/admin"
	adminLoginPath  = "/admin/login"
)

type RouterConfig struct {
	AllowOrigins       []string
	AuthHandler        *handlers.AuthHandler
	AuthMiddleware     *middleware.AuthMiddleware
	UpdateHandler      *handlers.UpdateHandler
	PhotoHandler       *handlers.PhotoHandler
	OutfitHandler      *handlers.OutfitHandler
	DestinationHandler *handlers.DestinationHandler
	StoryHandler       *handlers.StoryHandler
	TravelDiaryHandler *handlers.TravelDiaryHandler
	ExperienceHandler  *handlers.ExperienceHandler
	EventHandler       *handlers.EventHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/auth/login", cfg.AuthHandler.Login)
		api.GET("/auth/oauth/url", cfg.AuthHandler.OAuthURL)
		api.GET("/auth/oauth/callback", cfg.AuthHandler.OAuthCallback)
		api.GET("/auth/session", cfg.AuthMiddleware.AttachSession(), cfg.AuthHandler.Session)
		api.POST("/auth/logout", cfg.AuthHandler.Logout)

		api.GET("/updates", cfg.UpdateHandler.List)
		api.GET("/updates/:id", cfg.UpdateHandler.Get)
		api.GET("/photos", cfg.PhotoHandler.List)
		api.GET("/photos/:id", cfg.PhotoHandler.Get)
		api.GET("/outfits", cfg.OutfitHandler.List)
		api.GET("/outfits/:id", cfg.OutfitHandler.Get)
		api.GET("/destinations", cfg.DestinationHandler.List)
		api.GET("/destinations/:id", cfg.DestinationHandler.Get)
		api.GET("/stories", cfg.StoryHandler.List)
		api.GET("/stories/:id", cfg.StoryHandler.Get)
		api.GET("/diaries", cfg.TravelDiaryHandler.List)
		api.GET("/diaries/:id", cfg.TravelDiaryHandler.Get)
		api.GET("/experiences", cfg.ExperienceHandler.List)
		api.GET("/experiences/:id", cfg.ExperienceHandler.Get)
		api.GET("/events", cfg.EventHandler.List)
		api.GET("/events/:id", cfg.EventHandler.Get)

		api.POST("/events/:id/register", cfg.EventHandler.Register)
	}

	// ===============
	// || Signed-in ||
	// ===============
	member := router.Group("/api")
	member.Use(cfg.AuthMiddleware.RequireAuth())
	{
		member.POST("/photos/:id/vote", cfg.PhotoHandler.ToggleVote)
		member.POST("/photos/:id/comments", cfg.PhotoHandler.AddComment)
		member.PUT("/photos/:id/comments/:commentId", cfg.PhotoHandler.UpdateComment)
		member.DELETE("/photos/:id/comments/:commentId", cfg.PhotoHandler.DeleteComment)
	}

	// ===============
	// || Admin     ||
	// ===============
	// Every path under /admin bounces to the login page without a valid
	// session; only the login page itself is reachable anonymously. The
	// shell is a catch-all because the admin frontend routes client-side.
	// A wildcard inside the group would collide with the /admin/login
	// literal in gin's route tree, so unmatched paths go through NoRoute.
	loginPage := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"login": true})
	}
	adminShell := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": true})
	}
	requireSession := cfg.AuthMiddleware.RequireSession(adminLoginPath)
	router.GET(adminLoginPath, loginPage)
	router.GET(adminPathPrefix, requireSession, adminShell)
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, adminPathPrefix+"/") {
			requireSession(c)
			if c.IsAborted() {
				return
			}
			adminShell(c)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "code": "not_found"})
	})

	admin := router.Group("/api/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
	{
		admin.POST("/updates", cfg.UpdateHandler.Create)
		admin.PUT("/updates/:id", cfg.UpdateHandler.Update)
		admin.DELETE("/updates/:id", cfg.UpdateHandler.Delete)

		admin.POST("/photos", cfg.PhotoHandler.Create)
		admin.PUT("/photos/:id", cfg.PhotoHandler.Update)
		admin.DELETE("/photos/:id", cfg.PhotoHandler.Delete)

		admin.POST("/outfits", cfg.OutfitHandler.Create)
		admin.PUT("/outfits/:id", cfg.OutfitHandler.Update)
		admin.DELETE("/outfits/:id", cfg.OutfitHandler.Delete)

		admin.POST("/destinations", cfg.DestinationHandler.Create)
		admin.PUT("/destinations/:id", cfg.DestinationHandler.Update)
		admin.DELETE("/destinations/:id", cfg.DestinationHandler.Delete)

		admin.POST("/stories", cfg.StoryHandler.Create)
		admin.PUT("/stories/:id", cfg.StoryHandler.Update)
		admin.DELETE("/stories/:id", cfg.StoryHandler.Delete)

		admin.POST("/diaries", cfg.TravelDiaryHandler.Create)
		admin.PUT("/diaries/:id", cfg.TravelDiaryHandler.Update)
		admin.DELETE("/diaries/:id", cfg.TravelDiaryHandler.Delete)
		admin.POST("/diaries/:id/images", cfg.TravelDiaryHandler.AddImages)
		admin.DELETE("/diaries/:id/images/:imageId", cfg.TravelDiaryHandler.DeleteImage)

		admin.POST("/experiences", cfg.ExperienceHandler.Create)
		admin.PUT("/experiences/:id", cfg.ExperienceHandler.Update)
		admin.DELETE("/experiences/:id", cfg.ExperienceHandler.Delete)

		admin.POST("/events", cfg.EventHandler.Create)
		admin.PUT("/events/:id", cfg.EventHandler.Update)
		admin.DELETE("/events/:id", cfg.EventHandler.Delete)
	}

	return router
}
