package config

import (
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kr1119/portfolio-backend/pkg/payment"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port int

	// Razorpay credentials. Empty values are allowed at startup; the payment
	// endpoints report the service as not configured instead.
	RazorpayKeyID         string
	RazorpayKeySecret     string
	RazorpayWebhookSecret string
	RazorpayAPIURL        string
	GatewayTimeout        time.Duration

	CORSOrigins []string

	// Optional: audit store and admin API.
	DatabaseURL    string
	AdminJWTSecret string

	RateLimitRPS   float64
	RateLimitBurst int
	// Peers allowed to set X-Forwarded-For / X-Real-IP. Empty means none.
	TrustedProxies []netip.Prefix

	LogLevel string
}

// PaymentConfigured reports whether order creation can reach the gateway.
func (c *Config) PaymentConfigured() bool {
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}

// AdminEnabled reports whether the admin audit API should be mounted.
func (c *Config) AdminEnabled() bool {
	return c.DatabaseURL != "" && c.AdminJWTSecret != ""
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	port, err := strconv.Atoi(getEnv("PORT", "4001"))
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("PORT must be a valid TCP port, got %q", os.Getenv("PORT"))
	}

	timeout, err := time.ParseDuration(getEnv("GATEWAY_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("GATEWAY_TIMEOUT must be a positive duration, got %q", os.Getenv("GATEWAY_TIMEOUT"))
	}

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64)
	if err != nil || rps <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS must be a positive number, got %q", os.Getenv("RATE_LIMIT_RPS"))
	}

	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "10"))
	if err != nil || burst <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_BURST must be a positive integer, got %q", os.Getenv("RATE_LIMIT_BURST"))
	}

	adminSecret := getEnv("ADMIN_JWT_SECRET", "")
	if adminSecret != "" && len(adminSecret) < 32 {
		return nil, fmt.Errorf("ADMIN_JWT_SECRET must be at least 32 bytes, got %d", len(adminSecret))
	}

	proxies, err := parsePrefixes(splitCSV(getEnv("TRUSTED_PROXIES", "")))
	if err != nil {
		return nil, fmt.Errorf("TRUSTED_PROXIES: %w", err)
	}

	return &Config{
		Port:                  port,
		RazorpayKeyID:         getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret:     getEnv("RAZORPAY_KEY_SECRET", ""),
		RazorpayWebhookSecret: getEnv("RAZORPAY_WEBHOOK_SECRET", ""),
		RazorpayAPIURL:        getEnv("RAZORPAY_API_URL", payment.DefaultRazorpayURL),
		GatewayTimeout:        timeout,
		CORSOrigins:           splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		AdminJWTSecret:        adminSecret,
		RateLimitRPS:          rps,
		RateLimitBurst:        burst,
		TrustedProxies:        proxies,
		LogLevel:              getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parsePrefixes accepts CIDRs or bare addresses.
func parsePrefixes(values []string) ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0, len(values))
	for _, v := range values {
		if strings.Contains(v, "/") {
			p, err := netip.ParsePrefix(v)
			if err != nil {
				return nil, err
			}
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(v)
		if err != nil {
			return nil, err
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}
