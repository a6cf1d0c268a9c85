package ledger

import (
	"context"
	"math"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/00hello/transaction-handler-microservice/internal/domain"
	"github.com/00hello/transaction-handler-microservice/internal/repository"
)

// Service owns the account store and serializes every read and write against
// it. All access goes through a single mutex, so at most one transaction is
// validated and applied at a time and readers never observe a half-applied
// transfer. Acquisition blocks until the guard is free; there is no timeout.
type Service struct {
	mu     sync.Mutex
	store  *repository.AccountStore
	logger *zap.Logger

	// Notifier fans out account updates to websocket watchers. Handlers call
	// it after Submit returns so no network write ever happens under the
	// guard.
	Notifier *Notifier
}

func New(store *repository.AccountStore, logger *zap.Logger, notifier *Notifier) *Service {
	return &Service{
		store:    store,
		logger:   logger,
		Notifier: notifier,
	}
}

// Submit validates and applies a transfer as one atomic step. On success both
// parties have been updated and their resulting states are returned; on
// rejection the store is untouched and the returned error identifies the
// first rule the transaction broke.
func (s *Service) Submit(ctx context.Context, tx domain.Transaction) (*domain.TransferResult, error) {
	res, err := s.apply(tx)
	if err != nil {
		s.logger.Warn("Transaction rejected",
			zap.String("sender", tx.Sender),
			zap.String("receiver", tx.Receiver),
			zap.Uint64("amount", tx.Amount),
			zap.Uint64("sequence", tx.Sequence),
			zap.Error(err))
		return nil, err
	}
	s.logger.Info("Transfer applied",
		zap.String("sender", tx.Sender),
		zap.String("receiver", tx.Receiver),
		zap.Uint64("amount", tx.Amount),
		zap.Uint64("sequence", tx.Sequence),
		zap.Uint64("sender_balance", res.Sender.Balance),
		zap.Uint64("receiver_balance", res.Receiver.Balance))
	return res, nil
}

// apply runs the guarded critical section: resolve the sender, validate, then
// execute. Logging stays outside so the guard covers only store access.
func (s *Service) apply(tx domain.Transaction) (*domain.TransferResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sender, ok := s.store.Get(tx.Sender)
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	if err := validate(tx, sender); err != nil {
		return nil, err
	}
	return s.execute(tx)
}

// execute applies a transaction to the store. It resolves both parties again
// and re-runs validation against the exact state it is about to mutate, so a
// read taken before the guard was acquired can never leak into an update.
// Mutations happen on local copies and are written back only once every check
// has passed: either both accounts are upserted or neither is.
//
// Callers must hold s.mu.
func (s *Service) execute(tx domain.Transaction) (*domain.TransferResult, error) {
	sender, ok := s.store.Get(tx.Sender)
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	if err := validate(tx, sender); err != nil {
		return nil, err
	}

	// Receivers are created on demand with a zero balance and sequence.
	receiver := s.store.GetOrDefault(tx.Receiver)
	if receiver.Balance > math.MaxUint64-tx.Amount {
		return nil, domain.ErrBalanceOverflow
	}

	sender.Balance -= tx.Amount
	sender.Sequence++
	receiver.Balance += tx.Amount

	s.store.Upsert(tx.Sender, sender)
	s.store.Upsert(tx.Receiver, receiver)

	return &domain.TransferResult{
		Sender:   domain.StateOf(tx.Sender, sender),
		Receiver: domain.StateOf(tx.Receiver, receiver),
	}, nil
}

// Account returns the current state of a single account.
func (s *Service) Account(ctx context.Context, id string) (domain.AccountState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.store.Get(id)
	if !ok {
		return domain.AccountState{}, domain.ErrAccountNotFound
	}
	return domain.StateOf(id, acct), nil
}

// Accounts returns the state of every account, ordered by identifier.
func (s *Service) Accounts(ctx context.Context) []domain.AccountState {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.store.Snapshot()
	states := make([]domain.AccountState, 0, len(snap))
	for id, acct := range snap {
		states = append(states, domain.StateOf(id, acct))
	}
	sort.Slice(states, func(i, j int) bool { return states[i].ID < states[j].ID })
	return states
}
