package httpx

import (
	"net/http"
	"time"

	appmw "github.com/pradeepkasula/online-shopping-cart/internal/middleware"

	"github.com/pradeepkasula/online-shopping-cart/internal/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter assembles the HTTP chain: request ids and logging first, then
// CORS, rate limiting and optional JWT identity.
func NewRouter(jwtSecret string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(appmw.CORS)
	r.Use(appmw.RateLimit)
	r.Use(appmw.Auth(jwtSecret))
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
