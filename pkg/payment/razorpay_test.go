package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRazorpayClient_CreateOrder(t *testing.T) {
	var got OrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "shh", pass)

		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"order_abc123","entity":"order","amount":199900,"currency":"INR","receipt":"r1","status":"created","created_at":1700000000}`))
	}))
	defer srv.Close()

	c := NewRazorpayClient("rzp_test_key", "shh", srv.URL+"/v1/", 5*time.Second)
	order, err := c.CreateOrder(context.Background(), OrderRequest{
		Amount:   199900,
		Currency: "INR",
		Receipt:  "r1",
		Notes:    map[string]any{"plan": "Starter", "amount_inr": 1999},
	})
	require.NoError(t, err)

	assert.Equal(t, "order_abc123", order.ID)
	assert.Equal(t, int64(199900), order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, OrderStatusCreated, order.Status)

	assert.Equal(t, int64(199900), got.Amount)
	assert.Equal(t, "INR", got.Currency)
	assert.Equal(t, "Starter", got.Notes["plan"])
	assert.EqualValues(t, 1999, got.Notes["amount_inr"])
}

func TestRazorpayClient_NotConfigured(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	for _, c := range []*RazorpayClient{
		NewRazorpayClient("", "secret", srv.URL, time.Second),
		NewRazorpayClient("key", "", srv.URL, time.Second),
	} {
		assert.False(t, c.Configured())
		_, err := c.CreateOrder(context.Background(), OrderRequest{Amount: 100, Currency: "INR"})
		assert.ErrorIs(t, err, ErrNotConfigured)
	}
	assert.Zero(t, calls.Load())
}

func TestRazorpayClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"Authentication failed"}}`))
	}))
	defer srv.Close()

	c := NewRazorpayClient("key", "secret", srv.URL, time.Second)
	_, err := c.CreateOrder(context.Background(), OrderRequest{Amount: 100, Currency: "INR"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGateway)
	assert.Contains(t, err.Error(), "Authentication failed")
}

func TestRazorpayClient_MissingOrderID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"amount":100}`))
	}))
	defer srv.Close()

	c := NewRazorpayClient("key", "secret", srv.URL, time.Second)
	_, err := c.CreateOrder(context.Background(), OrderRequest{Amount: 100, Currency: "INR"})
	assert.ErrorIs(t, err, ErrGateway)
}

func TestRazorpayClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewRazorpayClient("key", "secret", srv.URL, 50*time.Millisecond)
	_, err := c.CreateOrder(context.Background(), OrderRequest{Amount: 100, Currency: "INR"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGateway)

	var netErr interface{ Timeout() bool }
	require.True(t, errors.As(err, &netErr))
	assert.True(t, netErr.Timeout())
}
