package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/datetimecheck/pkg/logger"
)

const defaultMaxBatchSize = 1000

// RouterOptions configures NewRouter.
type RouterOptions struct {
	Logger       *slog.Logger
	MaxBatchSize int
}

// NewRouter mounts the validation API:
//
//	POST /v1/datetime/validate        single value
//	POST /v1/datetime/validate/batch  many values for one field
//	GET  /healthz                     liveness
func NewRouter(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	maxBatch := opts.MaxBatchSize
	if maxBatch <= 0 {
		maxBatch = defaultMaxBatchSize
	}

	h := &handler{log: log.With(logger.Component("httpapi")), maxBatch: maxBatch}

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", healthz)
	r.Route("/v1/datetime", func(r chi.Router) {
		r.Post("/validate", h.validate)
		r.Post("/validate/batch", h.validateBatch)
	})

	return r
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
