package handler

import (
	"io"
	"net/http"

	"github.com/kr1119/portfolio-backend/internal/domain"
	"github.com/kr1119/portfolio-backend/internal/service"
)

// SignatureHeader carries the HMAC of the raw webhook body.
const SignatureHeader = "X-Razorpay-Signature"

type WebhookHandler struct {
	svc *service.WebhookService
}

func NewWebhookHandler(svc *service.WebhookService) *WebhookHandler {
	return &WebhookHandler{svc: svc}
}

// HandleRazorpay handles POST /api/payment/webhook.
func (h *WebhookHandler) HandleRazorpay(w http.ResponseWriter, r *http.Request) {
	// The signature covers the exact bytes sent, so read the body raw.
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		Error(w, domain.ErrBadRequest("failed to read body"))
		return
	}

	status, err := h.svc.Handle(r.Context(), body, r.Header.Get(SignatureHeader))
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, map[string]string{"status": status})
}
