package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/00hello/transaction-handler-microservice/internal/domain"
	"github.com/00hello/transaction-handler-microservice/internal/response"
	"github.com/00hello/transaction-handler-microservice/internal/usecase/ledger"
	"github.com/00hello/transaction-handler-microservice/internal/utils"
)

// SubmitTransactionHandler accepts a transfer, runs it through the ledger and
// reports the resulting state of both parties.
func SubmitTransactionHandler(ledgerUC *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body domain.Transaction
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if body.Sender == "" {
			response.Error(w, http.StatusBadRequest, "Missing sender")
			return
		}
		if body.Receiver == "" {
			response.Error(w, http.StatusBadRequest, "Missing receiver")
			return
		}

		res, err := ledgerUC.Submit(r.Context(), body)
		if err != nil {
			response.Error(w, rejectionStatus(err), err.Error())
			return
		}

		ledgerUC.Notifier.NotifyTransfer(res)

		response.JSON(w, http.StatusOK, map[string]any{
			"transaction_id": utils.GenerateID("txn"),
			"sender":         res.Sender,
			"receiver":       res.Receiver,
		})
	}
}

// rejectionStatus maps ledger rejections onto HTTP status codes. Unrecognized
// errors surface as 500 rather than leaking as a false client error.
func rejectionStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrAmountIsZero), errors.Is(err, domain.ErrSenderIsReceiver):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidNonce):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientFunds), errors.Is(err, domain.ErrBalanceOverflow):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
