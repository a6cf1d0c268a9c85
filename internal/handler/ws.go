package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/00hello/transaction-handler-microservice/internal/domain"
	"github.com/00hello/transaction-handler-microservice/internal/usecase/ledger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// AccountWSHandler streams account state over a websocket. The watcher gets
// the current state on connect, an update whenever a transfer touches the
// account, and can request a fresh snapshot with {"action": "get_account"}.
func AccountWSHandler(ledgerUC *ledger.Service, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := chi.URLParam(r, "accountID")

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already written its own error response.
			logger.Warn("Websocket upgrade failed", zap.Error(err))
			return
		}

		ledgerUC.Notifier.Register(accountID, conn)
		defer ledgerUC.Notifier.Unregister(accountID, conn)

		ctx := r.Context()
		ledgerUC.Notifier.SendState(conn, watchState(ctx, ledgerUC, accountID))

		for {
			mt, msg, err := conn.ReadMessage()
			if err != nil {
				logger.Info("Websocket watcher disconnected",
					zap.String("account", accountID), zap.Error(err))
				break
			}
			if mt != websocket.TextMessage {
				continue
			}

			var req struct {
				Action string `json:"action"`
			}
			if err := json.Unmarshal(msg, &req); err == nil && req.Action == "get_account" {
				ledgerUC.Notifier.SendState(conn, watchState(ctx, ledgerUC, accountID))
			}
		}
	}
}

// watchState resolves the account's current state. Watching an account that
// does not exist yet is allowed; such watchers see its zero state and then
// the creation as a regular update.
func watchState(ctx context.Context, ledgerUC *ledger.Service, accountID string) domain.AccountState {
	st, err := ledgerUC.Account(ctx, accountID)
	if err != nil {
		return domain.AccountState{ID: accountID}
	}
	return st
}
