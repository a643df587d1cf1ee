package handler

import (
	"net/http"

	"github.com/kr1119/portfolio-backend/internal/domain"
)

// PlansHandler handles plan-related endpoints.
type PlansHandler struct {
	catalog *domain.Catalog
}

// NewPlansHandler creates a new PlansHandler.
func NewPlansHandler(catalog *domain.Catalog) *PlansHandler {
	return &PlansHandler{catalog: catalog}
}

// List handles GET /api/plans.
func (h *PlansHandler) List(w http.ResponseWriter, r *http.Request) {
	plans := h.catalog.List()
	out := make([]domain.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, domain.PlanResponse{
			Plan:     p,
			Amount:   p.AmountPaise(),
			Currency: domain.Currency,
		})
	}
	JSON(w, http.StatusOK, out)
}
