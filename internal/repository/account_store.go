package repository

import (
	"github.com/00hello/transaction-handler-microservice/internal/domain"
)

// AccountStore is the in-memory mapping from account identifier to account
// state. It is the single source of truth for balances and sequence numbers.
//
// The store is NOT safe for concurrent use on its own: every access must
// happen while holding the ledger service's guard. Entries are replaced
// whole on update; no method partially mutates a stored account.
type AccountStore struct {
	accounts map[string]domain.Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts: make(map[string]domain.Account),
	}
}

// Get returns the account stored under id, reporting whether it exists.
func (s *AccountStore) Get(id string) (domain.Account, bool) {
	acct, ok := s.accounts[id]
	return acct, ok
}

// GetOrDefault returns the account stored under id, or a fresh zero-value
// account (balance 0, sequence 0) when absent. The default is NOT committed
// to the store; receivers materialize only when the executor upserts them.
func (s *AccountStore) GetOrDefault(id string) domain.Account {
	return s.accounts[id]
}

// Upsert stores acct under id, overwriting any existing entry.
func (s *AccountStore) Upsert(id string, acct domain.Account) {
	s.accounts[id] = acct
}

// Snapshot returns a copy of every entry. Callers must hold the guard while
// calling; the returned map is theirs to keep.
func (s *AccountStore) Snapshot() map[string]domain.Account {
	out := make(map[string]domain.Account, len(s.accounts))
	for id, acct := range s.accounts {
		out[id] = acct
	}
	return out
}

// Len reports the number of stored accounts.
func (s *AccountStore) Len() int {
	return len(s.accounts)
}
