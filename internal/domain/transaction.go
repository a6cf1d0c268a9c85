// internal/domain/transaction.go
package domain

// Transaction is an immutable transfer request: move Amount from Sender to
// Receiver, ordered by the sender's next sequence number. It is owned by the
// caller that submits it and is not retained after processing.
type Transaction struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Amount   uint64 `json:"amount"`
	Sequence uint64 `json:"sequence"`
}

// TransferResult carries the new sender and receiver states produced by one
// successfully executed transaction, as a single unit.
type TransferResult struct {
	Sender   AccountState `json:"sender"`
	Receiver AccountState `json:"receiver"`
}
