package ledger

import (
	"github.com/00hello/transaction-handler-microservice/internal/domain"
)

// validate decides whether tx may be applied against the sender's current
// state. It is a pure function: no side effects, no store access. Checks run
// in a fixed order and the first failure wins, so a given transaction always
// reports the same rejection reason.
//
// Sender existence is the caller's job: the caller resolves the sender from
// the store before invoking validate and reports ErrAccountNotFound itself.
func validate(tx domain.Transaction, sender domain.Account) error {
	if tx.Amount == 0 {
		return domain.ErrAmountIsZero
	}
	if tx.Sender == tx.Receiver {
		return domain.ErrSenderIsReceiver
	}
	if sender.Balance < tx.Amount {
		return domain.ErrInsufficientFunds
	}
	// The expected sequence is strictly current+1: replays of already-applied
	// transactions and premature future transactions are both rejected.
	if tx.Sequence != sender.Sequence+1 {
		return domain.ErrInvalidNonce
	}
	return nil
}
