package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/00hello/transaction-handler-microservice/internal/domain"
)

func TestGetReportsMissingAccounts(t *testing.T) {
	s := NewAccountStore()

	_, ok := s.Get("Alice")
	assert.False(t, ok)

	s.Upsert("Alice", domain.Account{Balance: 100, Sequence: 2})

	acct, ok := s.Get("Alice")
	require.True(t, ok)
	assert.Equal(t, domain.Account{Balance: 100, Sequence: 2}, acct)
}

func TestGetOrDefaultDoesNotCommit(t *testing.T) {
	s := NewAccountStore()

	acct := s.GetOrDefault("Dave")
	assert.Equal(t, domain.Account{}, acct)

	// The default must stay uncommitted until an explicit upsert.
	_, ok := s.Get("Dave")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestUpsertReplacesWholeEntry(t *testing.T) {
	s := NewAccountStore()
	s.Upsert("Bob", domain.Account{Balance: 500, Sequence: 3})
	s.Upsert("Bob", domain.Account{Balance: 42})

	acct, ok := s.Get("Bob")
	require.True(t, ok)
	assert.Equal(t, uint64(42), acct.Balance)
	assert.Equal(t, uint64(0), acct.Sequence, "upsert must not preserve fields from the old entry")
	assert.Equal(t, 1, s.Len())
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewAccountStore()
	s.Upsert("Alice", domain.Account{Balance: 1000})
	s.Upsert("Bob", domain.Account{Balance: 500})

	snap := s.Snapshot()
	require.Len(t, snap, 2)

	snap["Alice"] = domain.Account{Balance: 1}
	delete(snap, "Bob")

	acct, ok := s.Get("Alice")
	require.True(t, ok)
	assert.Equal(t, uint64(1000), acct.Balance)
	_, ok = s.Get("Bob")
	assert.True(t, ok)
}
