// Package memstore is an in-memory UnitOfWork used by unit tests. It keeps
// the same contract as the PostgreSQL implementation: debits serialize per
// (employee, leave type) key, and a failed scope undoes everything it did.
package memstore

import (
	"context"
	"sync"

	"leave-ledger-api/internal/domain/leave"
	"leave-ledger-api/internal/infra"
	"leave-ledger-api/internal/infra/db"
	"leave-ledger-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ledgerKey struct {
	employeeID uuid.UUID
	leaveType  leave.Type
}

type balanceEntry struct {
	mu        sync.Mutex
	remaining int
}

type Store struct {
	mu       sync.Mutex // guards the maps, not the balances
	balances map[ledgerKey]*balanceEntry
	requests map[uuid.UUID]*leave.Request
}

func New() *Store {
	return &Store{
		balances: make(map[ledgerKey]*balanceEntry),
		requests: make(map[uuid.UUID]*leave.Request),
	}
}

// Within runs fn and, on failure, replays the undo log in reverse so a
// debit never leaks when the request insert fails afterwards.
func (s *Store) Within(_ context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{store: s}
	if err := fn(context.Background(), tx); err != nil {
		for i := len(tx.undo) - 1; i >= 0; i-- {
			tx.undo[i]()
		}
		return err
	}
	return nil
}

// Seed installs a balance without going through a transaction.
func (s *Store) Seed(employeeID uuid.UUID, leaveType leave.Type, days int) {
	entry := s.entry(ledgerKey{employeeID, leaveType}, true)
	entry.mu.Lock()
	entry.remaining = days
	entry.mu.Unlock()
}

// Balance reports the remaining days; ok is false for an unknown key.
func (s *Store) Balance(employeeID uuid.UUID, leaveType leave.Type) (int, bool) {
	entry := s.entry(ledgerKey{employeeID, leaveType}, false)
	if entry == nil {
		return 0, false
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.remaining, true
}

func (s *Store) Request(id uuid.UUID) (*leave.Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	return req, ok
}

func (s *Store) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *Store) entry(key ledgerKey, create bool) *balanceEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.balances[key]
	if !ok {
		if !create {
			return nil
		}
		entry = &balanceEntry{}
		s.balances[key] = entry
	}
	return entry
}

type memTx struct {
	store *Store
	undo  []func()
}

func (t *memTx) DB() db.DBTX {
	return nil
}

func (t *memTx) LeaveRequests() shared.LeaveRequestRepository {
	return &memLeaveRequestRepo{tx: t}
}

func (t *memTx) Balances() shared.BalanceRepository {
	return &memBalanceRepo{tx: t}
}

type memBalanceRepo struct {
	tx *memTx
}

func (r *memBalanceRepo) Debit(_ context.Context, employeeID uuid.UUID, leaveType leave.Type, days int) error {
	entry := r.tx.store.entry(ledgerKey{employeeID, leaveType}, false)
	if entry == nil {
		return infra.WrapRepoErr("no balance recorded for employee", nil, infra.KindNotFound)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.remaining < days {
		return infra.WrapRepoErr("remaining days below requested amount", nil, infra.KindInsufficientBalance)
	}

	entry.remaining -= days
	r.tx.undo = append(r.tx.undo, func() {
		entry.mu.Lock()
		entry.remaining += days
		entry.mu.Unlock()
	})
	return nil
}

func (r *memBalanceRepo) Grant(_ context.Context, employeeID uuid.UUID, leaveType leave.Type, days int) error {
	entry := r.tx.store.entry(ledgerKey{employeeID, leaveType}, true)

	entry.mu.Lock()
	previous := entry.remaining
	entry.remaining = days
	entry.mu.Unlock()

	r.tx.undo = append(r.tx.undo, func() {
		entry.mu.Lock()
		entry.remaining = previous
		entry.mu.Unlock()
	})
	return nil
}

type memLeaveRequestRepo struct {
	tx *memTx
}

func (r *memLeaveRequestRepo) Create(_ context.Context, req *leave.Request) error {
	s := r.tx.store

	s.mu.Lock()
	if _, exists := s.requests[req.ID()]; exists {
		s.mu.Unlock()
		return infra.WrapRepoErr("leave request id already exists", nil, infra.KindDuplicateKey)
	}
	s.requests[req.ID()] = req
	s.mu.Unlock()

	r.tx.undo = append(r.tx.undo, func() {
		s.mu.Lock()
		delete(s.requests, req.ID())
		s.mu.Unlock()
	})
	return nil
}
