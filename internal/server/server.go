package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mandhitown/backend/internal/api"
	"github.com/mandhitown/backend/internal/middleware"
	"github.com/mandhitown/backend/internal/service"
	"github.com/mandhitown/backend/internal/store"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates a new server instance wired to the given state container.
func New(st *store.Store, jwtSecret string, media service.MediaUploader, blocklist service.TokenBlocklist) *Server {
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Best Mandhi in Town API"})
	})

	api.SetupAPI(router, st, jwtSecret, media, blocklist)

	return &Server{router: router}
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the server until it is shut down.
func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
