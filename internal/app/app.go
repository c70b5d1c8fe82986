package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/trivia-backend/internal/data/db"
	"github.com/yungbote/trivia-backend/internal/http"
	"github.com/yungbote/trivia-backend/internal/observability"
	"github.com/yungbote/trivia-backend/internal/platform/logger"
	"github.com/yungbote/trivia-backend/internal/services"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services

	store        *db.Service
	otelShutdown func(context.Context) error
}

type Option func(*options)

type options struct {
	log    *logger.Logger
	picker services.Picker
}

// WithLogger replaces the logger built from Config.LogMode.
func WithLogger(log *logger.Logger) Option { return func(o *options) { o.log = log } }

// WithPicker fixes the quiz question choice.
func WithPicker(p services.Picker) Option { return func(o *options) { o.picker = p } }

// New connects to the database, creates missing tables and wires the HTTP
// stack on top of it.
func New(ctx context.Context, cfg Config, opts ...Option) (*App, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	log := o.log
	if log == nil {
		var err error
		log, err = logger.New(cfg.LogMode)
		if err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	store, err := db.Open(log, db.Options{
		URL:          cfg.DatabaseURL,
		MaxOpenConns: cfg.MaxOpenConns,
		MaxIdleConns: cfg.MaxIdleConns,
	})
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := store.AutoMigrate(); err != nil {
		_ = store.Close()
		log.Sync()
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	theDB := store.DB()

	otelShutdown := observability.InitOTel(ctx, log, cfg.Otel)

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, reposet, o.picker)
	handlerset := wireHandlers(theDB, log, serviceset)
	router := wireRouter(log, cfg, handlerset)

	return &App{
		Log:          log,
		DB:           theDB,
		Router:       router,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		store:        store,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP on addr until ctx is cancelled.
func (a *App) Run(ctx context.Context, addr string) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return http.NewServer(a.Log, addr, a.Router).Run(ctx)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(context.Background()); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.Log.Warn("database close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
