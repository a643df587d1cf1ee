package handler

import (
	"context"
	"net/http"
)

// Pinger is anything with a liveness check, such as the audit store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles the health check endpoint.
type HealthHandler struct {
	gatewayConfigured bool
	store             Pinger
}

// NewHealthHandler creates a new HealthHandler. store may be nil when the
// audit store is disabled.
func NewHealthHandler(gatewayConfigured bool, store Pinger) *HealthHandler {
	return &HealthHandler{gatewayConfigured: gatewayConfigured, store: store}
}

// Check handles GET /health.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status": "ok",
	}

	// Missing credentials only disable payments; the site itself stays up.
	if h.gatewayConfigured {
		status["gateway"] = "configured"
	} else {
		status["gateway"] = "unconfigured"
	}

	switch {
	case h.store == nil:
		status["auditStore"] = "disabled"
	case h.store.Ping(r.Context()) != nil:
		status["auditStore"] = "error"
		status["status"] = "degraded"
	default:
		status["auditStore"] = "ok"
	}

	code := http.StatusOK
	if status["status"] == "degraded" {
		code = http.StatusServiceUnavailable
	}

	JSON(w, code, status)
}
