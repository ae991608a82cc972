package router

import (
	"net/http"
	"time"

	"drug-concentration/internal/adapters/chart/gochart"
	mem "drug-concentration/internal/adapters/storage/memory"
	_ "drug-concentration/internal/docs"
	"drug-concentration/internal/domain/concentration"
	"drug-concentration/internal/domain/forms"
	"drug-concentration/internal/middleware"
	"drug-concentration/internal/platform/config"
	"drug-concentration/internal/platform/logger"
	"drug-concentration/internal/ports/chart"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => NewFromEnv

	// Opcionales: si no vienen, in-memory + go-chart.
	Forms    forms.Repository
	Renderer chart.Renderer

	// MaxSamples <= 0 => sin límite
	MaxSamples int

	// Solo aplican al repo in-memory por defecto.
	MaxForms int
	FormTTL  time.Duration
}

// DefaultOptions arma Options desde la config cargada de env.
func DefaultOptions(cfg config.Config, log logger.Logger) Options {
	return Options{
		Logger:     log,
		Renderer:   gochart.New(cfg.ChartWidth, cfg.ChartHeight),
		MaxSamples: cfg.MaxSamples,
		MaxForms:   cfg.MaxForms,
		FormTTL:    cfg.FormTTL,
	}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	formRepo := opts.Forms
	if formRepo == nil {
		formRepo = mem.NewFormRepo(mem.FormRepoOptions{MaxForms: opts.MaxForms, TTL: opts.FormTTL})
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = gochart.New(gochart.DefaultWidth, gochart.DefaultHeight)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	formsSvc := forms.NewService(formRepo, opts.MaxSamples)

	forms.RegisterRoutes(r, formsSvc, renderer, log)
	concentration.RegisterRoutes(r, opts.MaxSamples)

	return r
}
