package config

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort   string
	DataDir      string
	GeminiAPIKey string
	GeminiModel  string
	GinMode      string
}

// Load creates the configuration from defaults, an optional .env file
// and environment variables (highest precedence).
func Load() *Config {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	c := &Config{
		ServerPort: "3000",
		DataDir:    "data",
	}

	if port := os.Getenv("PORT"); port != "" {
		c.ServerPort = port
	}
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		c.DataDir = dir
	}
	c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	c.GeminiModel = os.Getenv("GEMINI_MODEL")
	c.GinMode = os.Getenv("GIN_MODE")

	return c
}

// EnsureDataDir ensures the data directory exists
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0755)
}

// GetCorsConfig returns CORS configuration for the application
func (c *Config) GetCorsConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"}
	corsConfig.ExposeHeaders = []string{"Content-Length", "Content-Type"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}
