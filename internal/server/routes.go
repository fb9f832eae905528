package server

import (
	"github.com/directpro/directpro-api/internal/backup"
	"github.com/directpro/directpro-api/internal/compose"
	"github.com/directpro/directpro-api/internal/country"
	"github.com/directpro/directpro-api/internal/geo"
	"github.com/directpro/directpro-api/internal/health"
	"github.com/directpro/directpro-api/internal/link"
	"github.com/directpro/directpro-api/internal/phone"
	"github.com/directpro/directpro-api/internal/recents"
	"github.com/directpro/directpro-api/internal/refine"
	"github.com/directpro/directpro-api/internal/templates"
)

// SetupRoutes configures all the routes for the application
func (s *Server) SetupRoutes() {
	// Register health check handlers
	healthHandlers := health.NewHandlers(s.app)
	s.router.GET("/", healthHandlers.RootHandler)
	s.router.GET("/health", healthHandlers.HealthCheckHandler)
	s.router.GET("/health/", healthHandlers.HealthCheckHandlerWithSlash)

	// Register country registry handlers
	countryHandlers := country.NewHandlers(s.app.Countries, s.app.Selection)
	s.router.GET("/countries", countryHandlers.ListHandler)

	// Register phone intake handlers
	phoneHandlers := phone.NewHandlers(s.app.Phone, s.app.Countries, s.app.Selection, s.app.Logger)
	s.router.POST("/phone/normalize", phoneHandlers.NormalizeHandler)
	s.router.POST("/phone/validate", phoneHandlers.ValidateHandler)

	// Register link building handlers
	linkHandlers := link.NewHandlers(s.app.Logger)
	s.router.POST("/link/build", linkHandlers.BuildHandler)
	s.router.GET("/link/qr", linkHandlers.QRImageHandler)

	// Register compose handlers
	composeHandlers := compose.NewHandlers(s.app.Composer, s.app.Logger)
	s.router.POST("/compose/open", composeHandlers.OpenHandler)

	refineHandlers := refine.NewHandlers(s.app.Refiner, s.app.Logger)
	s.router.POST("/compose/refine", refineHandlers.RefineHandler)

	// Register geo hint handlers
	geoHandlers := geo.NewHandlers(s.app.Geo, s.app.Logger)
	s.router.POST("/geo/hint", geoHandlers.HintHandler)

	// Register recents handlers
	recentsHandlers := recents.NewHandlers(s.app.Recents, s.app.Logger)
	s.router.GET("/recents", recentsHandlers.ListHandler)
	s.router.POST("/recents/note", recentsHandlers.NoteHandler)
	s.router.POST("/recents/pin", recentsHandlers.PinHandler)
	s.router.POST("/recents/remove", recentsHandlers.RemoveHandler)

	// Register template handlers
	templatesHandlers := templates.NewHandlers(s.app.Templates, s.app.Logger)
	s.router.GET("/templates", templatesHandlers.ListHandler)
	s.router.POST("/templates", templatesHandlers.AddHandler)
	s.router.PUT("/templates/:id", templatesHandlers.UpdateHandler)
	s.router.DELETE("/templates/:id", templatesHandlers.RemoveHandler)

	// Register backup handlers
	backupHandlers := backup.NewHandlers(s.app.Backup, s.app.Logger)
	s.router.GET("/backup/export", backupHandlers.ExportHandler)
	s.router.POST("/backup/import", backupHandlers.ImportHandler)
}
