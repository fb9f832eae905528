package server

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/directpro/directpro-api/internal/app"
	"github.com/directpro/directpro-api/internal/config"
	"github.com/directpro/directpro-api/pkg/logger"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	app    *app.App
	config *config.Config
	srv    *http.Server
}

// NewServer creates a new server instance
func NewServer(app *app.App, config *config.Config) *Server {
	// Set up gin to log to the same log file
	gin.DefaultWriter = io.MultiWriter(os.Stdout, logger.GetWriter(app.Logger))
	gin.DefaultErrorWriter = io.MultiWriter(os.Stderr, logger.GetWriter(app.Logger))

	r := gin.Default()

	// Configure CORS
	corsConfig := config.GetCorsConfig()
	r.Use(cors.New(corsConfig))

	return &Server{
		router: r,
		app:    app,
		config: config,
	}
}

// Router returns the gin router
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.srv = &http.Server{
		Addr:    ":" + s.config.ServerPort,
		Handler: s.router,
	}

	go func() {
		s.app.Logger.Printf("🚀 DirectPro API running on :%s", s.config.ServerPort)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.app.Logger.Printf("Server error: %v\n", err)
		}
	}()

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}

	s.app.Logger.Println("🚫 Shutting down server...")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.app.Logger.Printf("Server forced to shutdown: %v\n", err)
		return err
	}

	s.app.Logger.Println("Server exited")
	return nil
}
