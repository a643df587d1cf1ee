package server

import (
	"log/slog"
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/kr1119/portfolio-backend/internal/handler"
	appMiddleware "github.com/kr1119/portfolio-backend/internal/middleware"
	"github.com/kr1119/portfolio-backend/internal/service"
)

// Deps carries everything the router needs. Admin and Auth are optional;
// the admin API is only mounted when both are set.
type Deps struct {
	Logger      *slog.Logger
	CORSOrigins []string
	RateLimiter *appMiddleware.RateLimiter

	Payment *handler.PaymentHandler
	Plans   *handler.PlansHandler
	Webhook *handler.WebhookHandler
	Health  *handler.HealthHandler

	Admin *handler.AdminHandler
	Auth  *service.AuthService
}

// NewRouter builds the HTTP handler for the whole service.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(appMiddleware.RequestID)
	r.Use(appMiddleware.Recovery(d.Logger))
	r.Use(appMiddleware.Logger(d.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", appMiddleware.HeaderRequestID},
		ExposedHeaders: []string{appMiddleware.HeaderRequestID},
		MaxAge:         300,
	}))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	// Public, read-only
	r.Get("/health", d.Health.Check)
	r.Get("/api/plans", d.Plans.List)

	// Browser-facing payment flow
	r.Group(func(r chi.Router) {
		if d.RateLimiter != nil {
			r.Use(d.RateLimiter.Middleware())
		}
		r.Post("/api/create-order", d.Payment.CreateOrder)
		r.Post("/api/verify-payment", d.Payment.VerifyPayment)
	})

	// Server-to-server from the gateway; authenticated by signature
	r.Post("/api/payment/webhook", d.Webhook.HandleRazorpay)

	if d.Admin != nil && d.Auth != nil {
		r.Group(func(r chi.Router) {
			r.Use(appMiddleware.Auth(d.Auth))
			r.Use(appMiddleware.AdminOnly)
			r.Get("/api/admin/payments", d.Admin.ListPayments)
		})
	}

	return gziphandler.GzipHandler(r)
}
