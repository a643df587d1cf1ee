package handler

import (
	"net/http"

	"github.com/kr1119/portfolio-backend/internal/domain"
	"github.com/kr1119/portfolio-backend/internal/service"
)

type PaymentHandler struct {
	orders   *service.OrderService
	verifier *service.VerificationService
}

func NewPaymentHandler(orders *service.OrderService, verifier *service.VerificationService) *PaymentHandler {
	return &PaymentHandler{orders: orders, verifier: verifier}
}

// CreateOrder handles POST /api/create-order.
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		Error(w, err)
		return
	}

	resp, err := h.orders.CreateOrder(r.Context(), &req)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, resp)
}

// VerifyPayment handles POST /api/verify-payment.
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyPaymentRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		Error(w, err)
		return
	}

	resp, err := h.verifier.Verify(r.Context(), &req)
	if err != nil {
		Error(w, err)
		return
	}

	if !resp.Verified {
		JSON(w, http.StatusForbidden, resp)
		return
	}
	JSON(w, http.StatusOK, resp)
}
