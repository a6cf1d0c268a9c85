package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/00hello/transaction-handler-microservice/internal/response"
	"github.com/00hello/transaction-handler-microservice/internal/usecase/ledger"
)

// GetAccountHandler returns the current state of a single account.
func GetAccountHandler(ledgerUC *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := chi.URLParam(r, "accountID")
		if accountID == "" {
			response.Error(w, http.StatusBadRequest, "Missing account ID")
			return
		}

		st, err := ledgerUC.Account(r.Context(), accountID)
		if err != nil {
			response.Error(w, http.StatusNotFound, "Account not found")
			return
		}
		response.JSON(w, http.StatusOK, st)
	}
}

// ListAccountsHandler returns every account, ordered by identifier.
func ListAccountsHandler(ledgerUC *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, map[string]any{
			"accounts": ledgerUC.Accounts(r.Context()),
		})
	}
}
