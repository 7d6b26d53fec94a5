package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"resume-assistant/internal/analyses"
	"resume-assistant/internal/chat"
	"resume-assistant/internal/llm"
	"resume-assistant/internal/llm/gemini"
	"resume-assistant/internal/services/health"
	"resume-assistant/internal/shared/config"
	"resume-assistant/internal/shared/metrics"
	"resume-assistant/internal/shared/server"
	"resume-assistant/internal/shared/storage/object"
	localstore "resume-assistant/internal/shared/storage/object/local"
	s3store "resume-assistant/internal/shared/storage/object/s3"
	"resume-assistant/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	Store           object.ObjectStore
	LLM             llm.Generator
	Metrics         *metrics.Metrics
	AnalysesService *analyses.Service
	ChatService     *chat.Service
	AnalysisHandler *analyses.Handler
	ChatHandler     *chat.Handler
	Health          *health.Service
}

type options struct {
	generator llm.Generator
	registry  *prometheus.Registry
	store     object.ObjectStore
}

// Option customises Build.
type Option func(*options)

// WithGenerator replaces the Gemini client with gen.
func WithGenerator(gen llm.Generator) Option {
	return func(o *options) { o.generator = gen }
}

// WithRegistry registers metrics on reg instead of a fresh registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *options) { o.registry = reg }
}

// WithStore replaces the configured upload store.
func WithStore(store object.ObjectStore) Option {
	return func(o *options) { o.store = store }
}

// Build validates cfg and wires every component. The Gemini client is built
// once here and shared by all requests.
func Build(ctx context.Context, cfg config.Config, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if err := cfg.Validate(); err != nil {
		if o.generator == nil || !errors.Is(err, config.ErrMissingAPIKey) {
			return nil, err
		}
	}

	store := o.store
	if store == nil {
		var err error
		store, err = buildStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	gen := o.generator
	if gen == nil {
		client, err := gemini.NewClient(ctx, gemini.Config{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.LLMTimeout,
		})
		if err != nil {
			return nil, err
		}
		gen = client
	}

	reg := o.registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	m := metrics.New(reg)

	app := &App{
		Config:          cfg,
		Store:           store,
		LLM:             gen,
		Metrics:         m,
		AnalysesService: analyses.NewService(gen, m),
		ChatService:     chat.NewService(gen, m),
		Health:          health.NewService(),
	}
	app.AnalysisHandler = analyses.NewHandler(app.AnalysesService, store, cfg.MaxUploadBytes, m)
	app.ChatHandler = chat.NewHandler(app.ChatService)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:   cfg,
		Health:   app.Health,
		Analysis: app.AnalysisHandler,
		Chat:     app.ChatHandler,
		Metrics:  m,
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":          cfg.Env,
		"upload_store": cfg.UploadStore,
		"model":        cfg.GeminiModel,
	})
	return app, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.UploadStore {
	case config.StoreS3:
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			return nil, fmt.Errorf("build s3 store: %w", err)
		}
		return store, nil
	default:
		store, err := localstore.New(cfg.UploadFolder)
		if err != nil {
			return nil, fmt.Errorf("build local store: %w", err)
		}
		return store, nil
	}
}
