package router

import (
	"database/sql"
	"net/http"
	"time"

	mem "puppy-service/internal/adapters/storage/memory"
	pg "puppy-service/internal/adapters/storage/postgres"
	"puppy-service/internal/domain/puppies"
	"puppy-service/internal/middleware"

	_ "puppy-service/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger zerolog.Logger

	// Store: si viene Repo se usa tal cual; si no, DB => Postgres; si no, in-memory.
	Repo puppies.Repository
	DB   *sql.DB

	// vacío => "*"
	CORSAllowedOrigins []string

	// Límite por llamada al store. 0 => puppies.DefaultCallTimeout
	StoreTimeout time.Duration
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	origins := opts.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.Recover)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	repo := opts.Repo
	if repo == nil {
		if opts.DB != nil {
			repo = pg.NewPuppiesRepo(opts.DB)
		} else {
			repo = mem.NewPuppyRepo()
		}
	}

	svcOpts := []puppies.Option{}
	if opts.StoreTimeout > 0 {
		svcOpts = append(svcOpts, puppies.WithCallTimeout(opts.StoreTimeout))
	}
	puppiesSvc := puppies.NewService(repo, svcOpts...)

	puppies.RegisterRoutes(r, puppiesSvc)

	return r
}
