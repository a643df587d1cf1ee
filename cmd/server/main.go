package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kr1119/portfolio-backend/internal/config"
	"github.com/kr1119/portfolio-backend/internal/domain"
	"github.com/kr1119/portfolio-backend/internal/handler"
	appMiddleware "github.com/kr1119/portfolio-backend/internal/middleware"
	"github.com/kr1119/portfolio-backend/internal/repository"
	"github.com/kr1119/portfolio-backend/internal/server"
	"github.com/kr1119/portfolio-backend/internal/service"
	"github.com/kr1119/portfolio-backend/pkg/logging"
	"github.com/kr1119/portfolio-backend/pkg/payment"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load .env file if present (for local development)
	loadDotEnv(".env")

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", slog.Any("error", err))
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Audit: always to the log, and to Postgres when configured
	sinks := service.MultiSink{service.NewLogAuditSink(log)}
	var (
		pool     *pgxpool.Pool
		auditRep *repository.AuditRepository
	)
	if cfg.DatabaseURL != "" {
		var err error
		pool, err = repository.NewDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer pool.Close()

		if err := repository.RunMigrations(ctx, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		auditRep = repository.NewAuditRepository(pool)
		sinks = append(sinks, auditRep)
		log.Info("audit store connected")
	}

	if !cfg.PaymentConfigured() {
		log.Warn("RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET not set; order creation will fail")
	}
	if cfg.RazorpayWebhookSecret == "" {
		log.Warn("RAZORPAY_WEBHOOK_SECRET not set; webhooks will be rejected")
	}

	catalog := domain.DefaultCatalog()
	gateway := payment.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.RazorpayAPIURL, cfg.GatewayTimeout)

	orderSvc := service.NewOrderService(catalog, gateway, log)
	verifier := service.NewVerificationService(cfg.RazorpayKeySecret, sinks, log)
	webhookSvc := service.NewWebhookService(cfg.RazorpayWebhookSecret, sinks, log)

	limiter := appMiddleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	limiter.TrustProxies(cfg.TrustedProxies...)
	defer limiter.Close()

	deps := server.Deps{
		Logger:      log,
		CORSOrigins: cfg.CORSOrigins,
		RateLimiter: limiter,
		Payment:     handler.NewPaymentHandler(orderSvc, verifier),
		Plans:       handler.NewPlansHandler(catalog),
		Webhook:     handler.NewWebhookHandler(webhookSvc),
	}
	if auditRep != nil {
		deps.Health = handler.NewHealthHandler(gateway.Configured(), auditRep)
	} else {
		deps.Health = handler.NewHealthHandler(gateway.Configured(), nil)
	}
	if cfg.AdminEnabled() {
		deps.Admin = handler.NewAdminHandler(auditRep, log)
		deps.Auth = service.NewAuthService(cfg.AdminJWTSecret)
		log.Info("admin API enabled")
	}

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("payment backend listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	// Let in-flight audit writes land before the pool closes.
	verifier.Wait()
	return nil
}

// loadDotEnv reads KEY=VALUE lines from path into the environment.
// Variables already set win over the file.
func loadDotEnv(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, value)
		}
	}
}
