package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/promeet/roster-api/api/swagger"
	"github.com/promeet/roster-api/internal/handler"
	"github.com/promeet/roster-api/internal/middleware"
	"github.com/promeet/roster-api/internal/models"
	"github.com/promeet/roster-api/internal/repository"
	"github.com/promeet/roster-api/internal/service"
	"github.com/promeet/roster-api/pkg/cache"
	"github.com/promeet/roster-api/pkg/config"
	"github.com/promeet/roster-api/pkg/database"
	"github.com/promeet/roster-api/pkg/logger"
	corsmiddleware "github.com/promeet/roster-api/pkg/middleware/cors"
	reqidmiddleware "github.com/promeet/roster-api/pkg/middleware/requestid"
	"github.com/promeet/roster-api/pkg/storage"
)

// @title ProMeet Roster API
// @version 1.0.0
// @description Meeting roster management: attendee lists, filtered views and spreadsheet transfer
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx := context.Background()

	snapshots, err := newSnapshotRepository(ctx, cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to init snapshot store", "driver", cfg.Store.Driver, "error", err)
	}

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	meetings := service.NewMeetingService(snapshots, metrics, logr)
	if err := meetings.Load(ctx); err != nil {
		logr.Sugar().Fatalw("failed to load meeting snapshot", "error", err)
	}

	views := service.NewViewService(meetings, logr)

	files, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init export storage", "error", err)
	}
	signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)
	transfers := service.NewTransferService(meetings, files, signer, metrics, service.TransferConfig{
		APIPrefix: cfg.APIPrefix,
		ResultTTL: cfg.Exports.SignedURLTTL,
	}, logr)
	transfers.StartCleanupLoop(ctx, cfg.Exports.CleanupInterval)

	auth := service.NewAuthService(nil, logr, service.AuthConfig{
		PassphraseHash: cfg.Auth.PassphraseHash,
		TokenSecret:    cfg.Auth.TokenSecret,
		TokenExpiry:    cfg.Auth.TokenExpiry,
	})

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	metricsHandler := handler.NewMetricsHandler(metrics)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", metricsHandler.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	registerRoutes(r, cfg, auth,
		handler.NewAuthHandler(auth),
		handler.NewMeetingHandler(meetings),
		handler.NewAttendeeHandler(meetings),
		handler.NewViewHandler(views),
		handler.NewTransferHandler(transfers),
	)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store", cfg.Store.Driver)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func registerRoutes(r *gin.Engine, cfg *config.Config, auth *service.AuthService,
	authHandler *handler.AuthHandler,
	meetingHandler *handler.MeetingHandler,
	attendeeHandler *handler.AttendeeHandler,
	viewHandler *handler.ViewHandler,
	transferHandler *handler.TransferHandler,
) {
	api := r.Group(cfg.APIPrefix)

	api.POST("/auth/login", authHandler.Login)

	// download links are pre-signed, no session needed
	api.GET("/exports/downloads/:token", transferHandler.Download)

	protected := api.Group("")
	protected.Use(middleware.JWT(auth))

	protected.GET("/meetings", meetingHandler.List)
	protected.POST("/meetings", meetingHandler.Create)
	protected.DELETE("/meetings/:id", meetingHandler.Delete)
	protected.POST("/meetings/:id/select", meetingHandler.Select)

	current := protected.Group("/meetings/current")
	current.GET("", meetingHandler.Current)
	current.PATCH("", meetingHandler.Update)

	current.POST("/attendees", attendeeHandler.Add)
	current.POST("/attendees/autofill", attendeeHandler.AutofillDraft)
	current.PATCH("/attendees/batch", attendeeHandler.BatchUpdate)
	current.POST("/attendees/delete", attendeeHandler.Delete)
	current.PATCH("/attendees/:id", attendeeHandler.Update)
	current.POST("/attendees/:id/duplicate", attendeeHandler.Duplicate)
	current.POST("/attendees/:id/autofill", attendeeHandler.Autofill)

	current.GET("/view", viewHandler.Get)
	current.PUT("/view/filter", viewHandler.Filter)
	current.POST("/view/sort", viewHandler.Sort)
	current.GET("/view/summary", viewHandler.Summary)
	current.GET("/view/vocabulary/:field", viewHandler.Vocabulary)
	current.POST("/view/selection", viewHandler.ToggleSelectAll)
	current.DELETE("/view/selection", viewHandler.ClearSelection)
	current.POST("/view/selection/:id", viewHandler.ToggleSelect)

	current.POST("/exports", transferHandler.Export)
	current.POST("/imports", transferHandler.Import)
}

// newSnapshotRepository picks the persistence driver from config. Redis is
// the default; postgres keeps the blob in a single-row table; file writes a
// local JSON document.
func newSnapshotRepository(ctx context.Context, cfg *config.Config) (snapshotStore, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, err
		}
		repo := repository.NewPostgresSnapshotRepository(db, cfg.Store.Key)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return repo, nil
	case config.StoreDriverFile:
		return repository.NewFileSnapshotRepository(cfg.Store.FilePath)
	case config.StoreDriverRedis:
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return repository.NewRedisSnapshotRepository(client, cfg.Store.Key), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

type snapshotStore interface {
	Load(ctx context.Context) ([]models.Meeting, error)
	Save(ctx context.Context, meetings []models.Meeting) error
}
