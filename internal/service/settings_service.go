package service

import (
	"context"
	"sync"

	"game-economy-service/internal/core/domain"
	"game-economy-service/internal/core/ports"
	"game-economy-service/pkg/apperror"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// SettingsServiceImpl implements ports.SettingsService. It owns the runtime
// economy settings, persists them through the settings store, and triggers
// the ledger migration when the currency name changes. Every validation
// failure leaves the prior settings fully intact.
type SettingsServiceImpl struct {
	mu      sync.RWMutex
	current domain.Settings
	store   ports.SettingsStore
	ledger  ports.Ledger
	log     zerolog.Logger
}

// NewSettingsService creates a settings service seeded with initial values
// (typically config-file defaults overridden by previously stored settings).
// A seed with an unusable reward range (negative minimum or min > max) is
// replaced with the default range, so the reward draw always sees valid
// bounds no matter where the seed came from.
func NewSettingsService(initial domain.Settings, store ports.SettingsStore, ledger ports.Ledger, log zerolog.Logger) *SettingsServiceImpl {
	if initial.RewardMin < 0 || initial.RewardMin > initial.RewardMax {
		def := domain.DefaultSettings()
		log.Warn().
			Int("reward_min", initial.RewardMin).
			Int("reward_max", initial.RewardMax).
			Int("fallback_min", def.RewardMin).
			Int("fallback_max", def.RewardMax).
			Msg("seeded reward range is unusable, falling back to defaults")
		initial.RewardMin = def.RewardMin
		initial.RewardMax = def.RewardMax
	}
	return &SettingsServiceImpl{
		current: initial,
		store:   store,
		ledger:  ledger,
		log:     log,
	}
}

// Settings returns the current settings.
func (s *SettingsServiceImpl) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetCurrency renames the process-wide currency and migrates the ledger.
// The settings lock is held across the ledger migration and the save, so
// concurrent renames apply to the settings, the ledger, and the store in one
// order and the three can never drift apart.
func (s *SettingsServiceImpl) SetCurrency(ctx context.Context, name string) error {
	if name == "" {
		return apperror.ErrInvalidCurrencyName()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.current.Currency
	s.current.Currency = name
	s.ledger.MigrateCurrency(old, name)

	return s.persist(ctx, s.current)
}

// SetRewardRange updates the daily reward bounds. min > max or a negative
// minimum is rejected before it reaches the reward scheduler; the prior range
// is retained.
func (s *SettingsServiceImpl) SetRewardRange(ctx context.Context, min, max int) error {
	if min < 0 || min > max {
		return apperror.ErrInvalidRewardRange()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.RewardMin = min
	s.current.RewardMax = max

	return s.persist(ctx, s.current)
}

// SetLocale updates the stored locale tag. Only the tag's well-formedness is
// checked here; rendering of localized text is the caller's concern.
func (s *SettingsServiceImpl) SetLocale(ctx context.Context, tag string) error {
	parsed, err := language.Parse(tag)
	if err != nil {
		return apperror.ErrInvalidLocale(tag)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Locale = parsed.String()

	return s.persist(ctx, s.current)
}

func (s *SettingsServiceImpl) persist(ctx context.Context, settings domain.Settings) error {
	if err := s.store.SaveSettings(ctx, settings); err != nil {
		// The in-memory update already took effect; surface the storage
		// failure so the operator can retry the save.
		s.log.Error().Err(err).Msg("failed to persist settings")
		return apperror.ErrStorageError(err)
	}
	s.log.Info().
		Str("currency", settings.Currency).
		Str("locale", settings.Locale).
		Int("reward_min", settings.RewardMin).
		Int("reward_max", settings.RewardMax).
		Msg("settings updated")
	return nil
}
