package domain

import "errors"

// Rejection reasons for submitted transactions. All of these are expected,
// non-fatal outcomes: they are returned to the caller and never terminate
// the process.
var (
	ErrAmountIsZero      = errors.New("transfer amount is zero")
	ErrSenderIsReceiver  = errors.New("sender and receiver are the same account")
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidNonce      = errors.New("invalid nonce")
	ErrBalanceOverflow   = errors.New("transfer would overflow receiver balance")
)
