package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/00hello/transaction-handler-microservice/internal/config"
	"github.com/00hello/transaction-handler-microservice/internal/domain"
	"github.com/00hello/transaction-handler-microservice/internal/repository"
	"github.com/00hello/transaction-handler-microservice/internal/router"
	"github.com/00hello/transaction-handler-microservice/internal/usecase/ledger"
)

type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	rdb        *redis.Client
}

// New builds the whole service: the seeded account store, the ledger around
// it, optional redis-backed rate limiting and the HTTP server on top.
func New(cfg config.AppConfig) (*Server, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	seeds, err := config.ParseSeedAccounts(cfg.SeedAccounts)
	if err != nil {
		return nil, fmt.Errorf("parse SEED_ACCOUNTS: %w", err)
	}

	// Seeding happens before the listener starts, so no guard is needed yet.
	store := repository.NewAccountStore()
	for _, seed := range seeds {
		store.Upsert(seed.ID, domain.Account{Balance: seed.Balance, Sequence: 0})
	}
	logger.Info("Ledger seeded", zap.Int("accounts", store.Len()))

	ledgerUC := ledger.New(store, logger, ledger.NewNotifier(logger))

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect redis at %s: %w", cfg.RedisAddr, err)
		}
		logger.Info("Rate limiting enabled", zap.String("redis", cfg.RedisAddr))
	}

	r := router.New(ledgerUC, logger, rdb, cfg.RateLimitPerMin)

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      r,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
		logger: logger,
		rdb:    rdb,
	}, nil
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	defer s.logger.Sync()
	if s.rdb != nil {
		defer s.rdb.Close()
	}
	return s.httpServer.Shutdown(ctx)
}
