package api

import (
	"github.com/gin-gonic/gin"

	"github.com/mandhitown/backend/internal/service"
	"github.com/mandhitown/backend/internal/store"
)

// SetupAPI wires the services and handlers onto the router. media may be
// nil when no upload service is configured; the services decide per
// operation how to degrade.
func SetupAPI(router *gin.Engine, st *store.Store, jwtSecret string, media service.MediaUploader, blocklist service.TokenBlocklist) {
	v1 := router.Group("/api/v1")
	{
		// Initialize services
		authService := service.NewAuthService(st.Users, jwtSecret, blocklist)
		catalogService := service.NewCatalogService(st)
		reviewService := service.NewReviewService(st, media)
		photoService := service.NewPhotoService(st, media)
		accountService := service.NewAccountService(st, media)

		// Initialize handlers
		authHandler := NewAuthHandler(authService)
		restaurantHandler := NewRestaurantHandler(catalogService)
		reviewHandler := NewReviewHandler(reviewService, authService)
		photoHandler := NewPhotoHandler(photoService, authService)
		accountHandler := NewAccountHandler(accountService)

		// Register routes
		authHandler.RegisterRoutes(v1)
		restaurantHandler.RegisterRoutes(v1)
		reviewHandler.RegisterRoutes(v1)
		photoHandler.RegisterRoutes(v1)
		accountHandler.RegisterRoutes(v1)
	}
}
