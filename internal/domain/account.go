// internal/domain/account.go
package domain

// Account is a single party's balance and outgoing-transfer counter. Accounts
// are identified by their key in the account store, never by a field of their
// own, so a transaction can only reference them by identifier.
type Account struct {
	Balance  uint64 `json:"balance"`
	Sequence uint64 `json:"sequence"`
}

// AccountState pairs an account with its identifier for reporting back to
// callers (HTTP responses, websocket pushes).
type AccountState struct {
	ID       string `json:"id"`
	Balance  uint64 `json:"balance"`
	Sequence uint64 `json:"sequence"`
}

// StateOf builds the reporting view of an account under a given identifier.
func StateOf(id string, acct Account) AccountState {
	return AccountState{
		ID:       id,
		Balance:  acct.Balance,
		Sequence: acct.Sequence,
	}
}
