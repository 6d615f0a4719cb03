// Package app wires configuration, storage, broker and services together
// and runs the process until the context is cancelled.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/closetswap/closetswap-backend/internal/adapter/postgres"
	itemrepo "github.com/closetswap/closetswap-backend/internal/adapter/postgres/item"
	ledgerrepo "github.com/closetswap/closetswap-backend/internal/adapter/postgres/ledger"
	swaprepo "github.com/closetswap/closetswap-backend/internal/adapter/postgres/swap"
	userrepo "github.com/closetswap/closetswap-backend/internal/adapter/postgres/user"
	"github.com/closetswap/closetswap-backend/internal/adapter/rabbitmq"
	"github.com/closetswap/closetswap-backend/internal/config"
	"github.com/closetswap/closetswap-backend/internal/domain"
	"github.com/closetswap/closetswap-backend/internal/service/moderation"
	"github.com/closetswap/closetswap-backend/internal/service/points"
	"github.com/closetswap/closetswap-backend/internal/service/swap"
	"github.com/closetswap/closetswap-backend/internal/transport/rest"
)

// notifier is the notification dispatcher contract the services consume.
type notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, event domain.NotificationEvent, payload any) error
	Close()
}

// Services bundles the wired business services for the embedding API layer.
type Services struct {
	Swap       *swap.Service
	Points     *points.Service
	Moderation *moderation.Service
}

// NewServices wires repositories, transaction manager and dispatcher into
// the business services.
func NewServices(logger *slog.Logger, pool *pgxpool.Pool, dispatcher notifier, pts config.PointsConfig) *Services {
	txm := postgres.NewTxManager(pool)
	items := itemrepo.New(pool)
	swaps := swaprepo.New(pool)
	entries := ledgerrepo.New(pool)
	users := userrepo.New(pool)

	return &Services{
		Swap:       swap.NewService(logger, items, swaps, entries, users, txm, dispatcher, pts.SwapCompletionAward),
		Points:     points.NewService(logger, entries, users, items, txm, pts.HistoryPageSize),
		Moderation: moderation.NewService(logger, items, swaps, entries, users, txm, dispatcher, pts.UploadApprovalAward),
	}
}

// newNotifier connects to RabbitMQ when a URL is configured and falls back
// to the no-op dispatcher otherwise, or when the broker is unreachable.
// Notifications are best-effort, so a dial failure is not fatal.
func newNotifier(cfg config.RabbitMQConfig, logger *slog.Logger) notifier {
	if cfg.URL == "" {
		logger.Info("notification broker disabled")
		return rabbitmq.NewNoopNotifier(logger)
	}

	n, err := rabbitmq.NewNotifier(cfg.URL, cfg.Exchange, cfg.DialTimeout, logger)
	if err != nil {
		logger.Warn("notification broker unreachable, events will be dropped",
			slog.Any("error", err),
		)
		return rabbitmq.NewNoopNotifier(logger)
	}

	logger.Info("notification broker connected", slog.String("exchange", cfg.Exchange))
	return n
}

// App holds the assembled application: configuration, connections, and the
// wired business services. The embedding API layer mounts its transport on
// top of Services; this process itself serves only the operational
// endpoints.
type App struct {
	Services *Services

	cfg        *config.Config
	log        *slog.Logger
	pool       *pgxpool.Pool
	dispatcher notifier
}

// New loads configuration, connects to PostgreSQL and (optionally)
// RabbitMQ, and wires the services. The caller must Close the returned App.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	dispatcher := newNotifier(cfg.RabbitMQ, logger)

	return &App{
		Services:   NewServices(logger, pool, dispatcher, cfg.Points),
		cfg:        cfg,
		log:        logger,
		pool:       pool,
		dispatcher: dispatcher,
	}, nil
}

// Close releases the broker connection and the database pool.
func (a *App) Close() {
	a.dispatcher.Close()
	a.pool.Close()
}

// Run serves the health endpoints and blocks until ctx is cancelled.
// Shutdown is graceful: the HTTP server drains within ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	health := rest.NewHealthHandler(a.pool, BuildVersion(), a.cfg.RabbitMQ.URL != "")

	mux := http.NewServeMux()
	health.Routes(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:      mux,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.log.Warn("http server shutdown", slog.Any("error", err))
	}

	return nil
}

// Run assembles the application and runs it until ctx is cancelled.
func Run(ctx context.Context) error {
	a, err := New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Run(ctx)
}
