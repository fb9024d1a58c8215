package ports

import (
	"context"
	"time"

	"game-economy-service/internal/core/domain"
)

//go:generate mockgen -source=services.go -destination=mocks/services.go -package=mocks

// Ledger owns the balance map and the active currency name. All balance
// mutation in the process goes through it; collaborators never touch the raw
// map. Every mutating method runs under a single ledger-wide exclusion so
// check-then-set sequences are race-free.
type Ledger interface {
	// GetBalance returns 0 for unknown accounts.
	GetBalance(id domain.AccountID) float64
	// SetBalance replaces the balance unconditionally. Rejects negative or
	// non-finite amounts.
	SetBalance(id domain.AccountID, amount float64) error
	// AddBalance adds amount to the account's balance. The ledger itself
	// accepts any finite value; callers enforce positivity where required.
	AddBalance(id domain.AccountID, amount float64)
	// SubtractBalance commits current-amount if sufficient funds exist.
	// Returns false and leaves state unchanged otherwise.
	SubtractBalance(id domain.AccountID, amount float64) bool
	// Transfer moves amount between accounts as one atomic unit: a failed
	// debit never credits the receiver, and no reader observes the
	// intermediate state.
	Transfer(from, to domain.AccountID, amount float64) error
	// MigrateCurrency folds balances recorded under oldName into newName and
	// activates newName. Idempotent; total value is conserved.
	MigrateCurrency(oldName, newName string)
	// Currency returns the active currency name.
	Currency() string
	// Snapshot returns an immutable copy of all balances.
	Snapshot() map[domain.AccountID]float64
	// BulkLoad merges an externally supplied balance map; on key conflict the
	// loaded value is authoritative.
	BulkLoad(balances map[domain.AccountID]float64)
	// TakeDirty reports and clears the dirty flag (checkpointing).
	TakeDirty() bool
	// MarkDirty forces the next checkpoint to persist.
	MarkDirty()
}

// RewardService gates the once-per-calendar-day randomized reward.
type RewardService interface {
	// Claim pays out a uniform draw in the configured [min,max] range if the
	// account has not claimed on `today` yet. Returns the credited amount or
	// ErrAlreadyClaimedToday.
	Claim(id domain.AccountID, today domain.ClaimDate) (float64, error)
	// LoadClaims merges externally supplied claim records.
	LoadClaims(claims map[domain.AccountID]domain.ClaimDate)
	// SnapshotClaims returns an immutable copy of all claim records.
	SnapshotClaims() map[domain.AccountID]domain.ClaimDate
	TakeDirty() bool
}

// LeaderboardService derives the ranked, paginated balance view.
type LeaderboardService interface {
	// Rank returns the 1-based position of the account, or false if the
	// account has no recorded balance.
	Rank(id domain.AccountID) (int, bool)
	// Page returns one page of the descending view. pageSize <= 0 falls back
	// to the configured default; the page number is clamped into range.
	Page(page, pageSize int) domain.LeaderboardPage
}

// SettingsService owns the runtime economy settings and applies the side
// effects of changing them (a currency rename triggers a ledger migration).
type SettingsService interface {
	Settings() domain.Settings
	SetCurrency(ctx context.Context, name string) error
	SetRewardRange(ctx context.Context, min, max int) error
	SetLocale(ctx context.Context, tag string) error
}

// AdminAuthService authenticates the operator account.
type AdminAuthService interface {
	// Login verifies credentials and returns a signed token plus its expiry.
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}

// TokenService handles JWT token operations for admin sessions.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}
