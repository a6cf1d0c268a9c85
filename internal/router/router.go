package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/00hello/transaction-handler-microservice/internal/handler"
	"github.com/00hello/transaction-handler-microservice/internal/middleware"
	"github.com/00hello/transaction-handler-microservice/internal/usecase/ledger"
)

// New wires the HTTP surface of the ledger. rdb is optional; when it is nil
// the rate limiter is left out of the chain entirely.
func New(ledgerUC *ledger.Service, logger *zap.Logger, rdb *redis.Client, rateLimit int) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if rdb != nil {
		r.Use(middleware.RateLimiter(rdb, rateLimit, time.Minute, 10*time.Minute, "ledger"))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Transaction handler is running"))
	})

	r.Route("/api", func(ar chi.Router) {
		ar.Post("/transactions", handler.SubmitTransactionHandler(ledgerUC))
		ar.Get("/accounts", handler.ListAccountsHandler(ledgerUC))
		ar.Get("/accounts/{accountID}", handler.GetAccountHandler(ledgerUC))
		ar.Get("/ws/accounts/{accountID}", handler.AccountWSHandler(ledgerUC, logger))
	})

	return r
}
