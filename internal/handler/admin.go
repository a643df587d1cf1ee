package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kr1119/portfolio-backend/internal/domain"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

// AuditReader lists stored audit records.
type AuditReader interface {
	ListRecent(ctx context.Context, limit int) ([]domain.PaymentRecord, error)
}

type AdminHandler struct {
	audit AuditReader
	log   *slog.Logger
}

func NewAdminHandler(audit AuditReader, log *slog.Logger) *AdminHandler {
	return &AdminHandler{audit: audit, log: log}
}

// ListPayments handles GET /api/admin/payments.
func (h *AdminHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	limit := defaultAuditLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxAuditLimit {
			Error(w, domain.ErrBadRequest("limit must be between 1 and 200"))
			return
		}
		limit = n
	}

	records, err := h.audit.ListRecent(r.Context(), limit)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to list audit records", slog.Any("error", err))
		Error(w, domain.ErrInternal("failed to list payments", err))
		return
	}
	JSON(w, http.StatusOK, map[string]interface{}{
		"payments": records,
		"count":    len(records),
	})
}
