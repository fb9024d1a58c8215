package service

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"game-economy-service/internal/core/domain"
	"game-economy-service/internal/core/ports"
	"game-economy-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// RewardServiceImpl implements ports.RewardService. It owns the claim-record
// map exclusively and credits rewards only through the ledger, never by
// touching balances directly. Eligibility is recomputed on every call from
// the stored date: there is no persisted "available" state, the calendar
// advancing past lastClaimDate implicitly re-arms the account.
type RewardServiceImpl struct {
	mu       sync.Mutex
	ledger   ports.Ledger
	settings ports.SettingsService
	claims   map[domain.AccountID]domain.ClaimDate
	dirty    atomic.Bool
	log      zerolog.Logger

	// draw is swappable in tests; defaults to a uniform draw in [min,max].
	draw func(min, max int) int
}

// NewRewardService creates a reward scheduler paying out via the given ledger.
func NewRewardService(ledger ports.Ledger, settings ports.SettingsService, log zerolog.Logger) *RewardServiceImpl {
	return &RewardServiceImpl{
		ledger:   ledger,
		settings: settings,
		claims:   make(map[domain.AccountID]domain.ClaimDate),
		log:      log,
		draw: func(min, max int) int {
			return min + rand.IntN(max-min+1)
		},
	}
}

// Claim pays out the daily reward for `today` if the account has not claimed
// it yet. The check, the record update, and the draw happen under the claim
// lock, so concurrent duplicate requests on the same day cannot both pass the
// gate. lastClaimDate is monotonically non-decreasing: a call dated before
// the recorded claim is rejected the same as a same-day retry.
func (s *RewardServiceImpl) Claim(id domain.AccountID, today domain.ClaimDate) (float64, error) {
	cfg := s.settings.Settings()

	s.mu.Lock()
	last, claimed := s.claims[id]
	if claimed && !last.Before(today) {
		s.mu.Unlock()
		return 0, apperror.ErrAlreadyClaimedToday()
	}

	amount := float64(s.draw(cfg.RewardMin, cfg.RewardMax))
	s.claims[id] = today
	s.dirty.Store(true)
	s.mu.Unlock()

	s.ledger.AddBalance(id, amount)

	s.log.Debug().
		Stringer("account", id).
		Float64("amount", amount).
		Stringer("date", today).
		Msg("daily reward claimed")

	return amount, nil
}

// LoadClaims merges externally supplied claim records. Used at startup.
func (s *RewardServiceImpl) LoadClaims(claims map[domain.AccountID]domain.ClaimDate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, d := range claims {
		s.claims[id] = d
	}
}

// SnapshotClaims returns a copy of all claim records.
func (s *RewardServiceImpl) SnapshotClaims() map[domain.AccountID]domain.ClaimDate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[domain.AccountID]domain.ClaimDate, len(s.claims))
	for id, d := range s.claims {
		out[id] = d
	}
	return out
}

// TakeDirty reports whether claim state changed since the last checkpoint and
// clears the flag.
func (s *RewardServiceImpl) TakeDirty() bool {
	return s.dirty.Swap(false)
}
