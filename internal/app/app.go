package app

import (
	"context"
	"log"
	"time"

	"github.com/directpro/directpro-api/internal/backup"
	"github.com/directpro/directpro-api/internal/compose"
	"github.com/directpro/directpro-api/internal/config"
	"github.com/directpro/directpro-api/internal/country"
	"github.com/directpro/directpro-api/internal/geo"
	"github.com/directpro/directpro-api/internal/phone"
	"github.com/directpro/directpro-api/internal/recents"
	"github.com/directpro/directpro-api/internal/refine"
	"github.com/directpro/directpro-api/internal/storage"
	"github.com/directpro/directpro-api/internal/templates"
)

// App holds shared application state and resources. Everything is wired
// explicitly here and passed by reference; nothing lives in ambient
// package-level state.
type App struct {
	Config    *config.Config
	Logger    *log.Logger
	Storage   *storage.Store
	Countries *country.Registry
	Selection *country.Selection
	Phone     *phone.Normalizer
	Recents   *recents.Service
	Templates *templates.Service
	Counter   *compose.Counter
	Composer  *compose.Service
	Refiner   *refine.Service
	Geo       *geo.Service
	Backup    *backup.Service
	StartTime time.Time // Track startup time for health checks
}

// NewApp creates a new App instance with initialized resources
func NewApp(ctx context.Context, cfg *config.Config, logger *log.Logger, store *storage.Store) (*App, error) {
	registry := country.NewRegistry()
	selection := country.NewSelection(country.DefaultDialCode)
	normalizer := phone.NewNormalizer(registry)

	recentsService := recents.NewService(store, logger)
	templatesService := templates.NewService(store, logger)
	counter := compose.NewCounter(store, logger, time.Now())

	refiner, err := refine.NewService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:    cfg,
		Logger:    logger,
		Storage:   store,
		Countries: registry,
		Selection: selection,
		Phone:     normalizer,
		Recents:   recentsService,
		Templates: templatesService,
		Counter:   counter,
		Composer:  compose.NewService(registry, selection, normalizer, recentsService, counter, logger),
		Refiner:   refiner,
		Geo:       geo.NewService(registry, selection, logger),
		Backup:    backup.NewService(recentsService, templatesService),
		StartTime: time.Now(),
	}, nil
}
