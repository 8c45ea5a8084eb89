package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"copydesk/internal/http/handlers"
	"copydesk/internal/middleware"
)

type Options struct {
	Logger      zerolog.Logger
	CORSOrigins []string
	// Limiter guards the generation endpoints. Nil disables rate limiting.
	Limiter middleware.Limiter
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(opts.Logger),
		chimw.Recoverer,
		middleware.CORS(opts.CORSOrigins),
	)

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/openapi.json", app.OpenAPIJSON)
	r.Get("/v1/docs", app.OpenAPIDocs)

	r.Route("/api", func(r chi.Router) {
		r.Get("/content-types", app.ContentTypes)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", app.ProductsList)
			r.Post("/", app.ProductCreate)
			r.Get("/{id}", app.ProductGet)
			r.Put("/{id}", app.ProductUpdate)
			r.Delete("/{id}", app.ProductDelete)
		})

		r.Group(func(r chi.Router) {
			if opts.Limiter != nil {
				r.Use(middleware.RateLimit(opts.Limiter, time.Minute))
			}
			r.Post("/generate-content", app.GenerateContent)
			r.Post("/generate-image", app.GenerateImage)
			r.Post("/complete-product", app.CompleteProduct)
		})
	})

	return r
}
