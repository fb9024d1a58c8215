package service

import (
	"math"
	"sync"
	"sync/atomic"

	"game-economy-service/internal/core/domain"
	"game-economy-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.Ledger. It is the authoritative
// in-memory store of all balances and the active currency name. A single
// RWMutex guards the map: writers (including the check-then-set of
// SubtractBalance and both legs of Transfer) hold the write lock, readers
// take consistent copies under the read lock. No method performs I/O, so the
// critical section stays short; persistence is decoupled via the dirty flag.
type LedgerServiceImpl struct {
	mu       sync.RWMutex
	balances map[domain.AccountID]float64
	currency string
	dirty    atomic.Bool
	log      zerolog.Logger
}

// NewLedgerService creates a ledger with the given active currency name.
func NewLedgerService(currency string, log zerolog.Logger) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		balances: make(map[domain.AccountID]float64),
		currency: currency,
		log:      log,
	}
}

// GetBalance returns the account's balance, or 0 if the account is unknown.
func (s *LedgerServiceImpl) GetBalance(id domain.AccountID) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balances[id]
}

// SetBalance replaces the balance unconditionally (admin path). Any
// non-negative finite value is accepted; there is no upper bound.
func (s *LedgerServiceImpl) SetBalance(id domain.AccountID, amount float64) error {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return apperror.ErrInvalidAmount()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[id] = amount
	s.dirty.Store(true)
	return nil
}

// AddBalance adds amount to the account's balance, creating the account at 0
// if needed. Validation of positivity is the caller's responsibility.
func (s *LedgerServiceImpl) AddBalance(id domain.AccountID, amount float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[id] += amount
	s.dirty.Store(true)
}

// SubtractBalance debits the account if funds are sufficient. Returns false
// and leaves the balance untouched when the current balance cannot cover the
// amount; the balance never goes negative.
func (s *LedgerServiceImpl) SubtractBalance(id domain.AccountID, amount float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtractLocked(id, amount)
}

func (s *LedgerServiceImpl) subtractLocked(id domain.AccountID, amount float64) bool {
	current := s.balances[id]
	if current < amount {
		return false
	}
	s.balances[id] = current - amount
	s.dirty.Store(true)
	return true
}

// Transfer debits `from` and credits `to` under one lock acquisition, so a
// failed debit never credits the receiver and no reader observes funds in
// flight between the two accounts.
func (s *LedgerServiceImpl) Transfer(from, to domain.AccountID, amount float64) error {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return apperror.ErrInvalidAmount()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.subtractLocked(from, amount) {
		return apperror.ErrInsufficientFunds()
	}
	s.balances[to] += amount
	return nil
}

// MigrateCurrency activates newName as the single process-wide currency.
// Balances are stored as one scalar per account (legacy per-currency records
// are collapsed at import time), so the sum of all balances is unchanged by a
// rename. Calling it with the active name is a no-op. The write lock excludes
// every other ledger mutation for the full duration.
func (s *LedgerServiceImpl) MigrateCurrency(oldName, newName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if newName == s.currency {
		return
	}
	s.log.Info().
		Str("old_currency", oldName).
		Str("new_currency", newName).
		Int("accounts", len(s.balances)).
		Msg("currency migrated")
	s.currency = newName
	s.dirty.Store(true)
}

// Currency returns the active currency name.
func (s *LedgerServiceImpl) Currency() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currency
}

// Snapshot returns a copy of all balances taken under the lock. Mutating the
// returned map never affects the live ledger.
func (s *LedgerServiceImpl) Snapshot() map[domain.AccountID]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[domain.AccountID]float64, len(s.balances))
	for id, b := range s.balances {
		out[id] = b
	}
	return out
}

// BulkLoad merges an externally supplied balance map into the live ledger.
// On key conflict the loaded value is authoritative. Used at startup.
func (s *LedgerServiceImpl) BulkLoad(balances map[domain.AccountID]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, b := range balances {
		s.balances[id] = b
	}
}

// TakeDirty reports whether the ledger changed since the last checkpoint and
// clears the flag.
func (s *LedgerServiceImpl) TakeDirty() bool {
	return s.dirty.Swap(false)
}

// MarkDirty forces the next checkpoint to persist (used when a flush fails
// and must be retried).
func (s *LedgerServiceImpl) MarkDirty() {
	s.dirty.Store(true)
}
