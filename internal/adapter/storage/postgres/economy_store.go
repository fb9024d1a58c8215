package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"game-economy-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EconomyStore implements ports.EconomyStore and ports.SettingsStore on
// PostgreSQL. Schema:
//
//	accounts     (id uuid PRIMARY KEY, balance double precision NOT NULL)
//	daily_claims (account_id uuid PRIMARY KEY, last_claim date NOT NULL)
//	settings     (key text PRIMARY KEY, value text NOT NULL)
//
// A snapshot save replaces both state tables inside one transaction, so a
// reader never sees a half-written checkpoint.
type EconomyStore struct {
	pool Pool
	log  zerolog.Logger
}

// NewEconomyStore creates a PostgreSQL-backed economy store.
func NewEconomyStore(pool Pool, log zerolog.Logger) *EconomyStore {
	return &EconomyStore{pool: pool, log: log}
}

// Load reads ledger and claim state. Rows that fail to scan are skipped with
// a warning instead of aborting the load.
func (s *EconomyStore) Load(ctx context.Context) (domain.EconomySnapshot, error) {
	snap := domain.EconomySnapshot{
		Balances: make(map[domain.AccountID]float64),
		Claims:   make(map[domain.AccountID]domain.ClaimDate),
	}

	rows, err := s.pool.Query(ctx, `SELECT id, balance FROM accounts`)
	if err != nil {
		return snap, fmt.Errorf("query accounts: %w", err)
	}
	for rows.Next() {
		var id uuid.UUID
		var balance float64
		if err := rows.Scan(&id, &balance); err != nil {
			s.log.Warn().Err(err).Msg("skipping unreadable account row")
			continue
		}
		snap.Balances[id] = balance
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("iterating accounts: %w", err)
	}

	rows, err = s.pool.Query(ctx, `SELECT account_id, last_claim FROM daily_claims`)
	if err != nil {
		return snap, fmt.Errorf("query daily claims: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id uuid.UUID
		var lastClaim time.Time
		if err := rows.Scan(&id, &lastClaim); err != nil {
			s.log.Warn().Err(err).Msg("skipping unreadable claim row")
			continue
		}
		snap.Claims[id] = domain.DateOf(lastClaim)
	}
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("iterating daily claims: %w", err)
	}

	return snap, nil
}

// Save replaces the stored state with the snapshot in one transaction.
func (s *EconomyStore) Save(ctx context.Context, snap domain.EconomySnapshot) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM accounts`); err != nil {
		return fmt.Errorf("clear accounts: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM daily_claims`); err != nil {
		return fmt.Errorf("clear daily claims: %w", err)
	}

	for id, balance := range snap.Balances {
		if _, err := tx.Exec(ctx,
			`INSERT INTO accounts (id, balance) VALUES ($1, $2)`,
			id, balance,
		); err != nil {
			return fmt.Errorf("insert account %s: %w", id, err)
		}
	}
	for id, date := range snap.Claims {
		if _, err := tx.Exec(ctx,
			`INSERT INTO daily_claims (account_id, last_claim) VALUES ($1, $2)`,
			id, date.Time(),
		); err != nil {
			return fmt.Errorf("insert claim %s: %w", id, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

// LoadSettings reads the stored settings; nil when none exist yet.
func (s *EconomyStore) LoadSettings(ctx context.Context) (*domain.Settings, error) {
	rows, err := s.pool.Query(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			s.log.Warn().Err(err).Msg("skipping unreadable settings row")
			continue
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating settings: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}

	settings := domain.DefaultSettings()
	if v, ok := values["currency"]; ok {
		settings.Currency = v
	}
	if v, ok := values["locale"]; ok {
		settings.Locale = v
	}
	if v, ok := values["reward_min"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			settings.RewardMin = n
		} else {
			s.log.Warn().Str("value", v).Msg("ignoring unparsable reward_min setting")
		}
	}
	if v, ok := values["reward_max"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			settings.RewardMax = n
		} else {
			s.log.Warn().Str("value", v).Msg("ignoring unparsable reward_max setting")
		}
	}
	return &settings, nil
}

// SaveSettings upserts the settings rows in one transaction.
func (s *EconomyStore) SaveSettings(ctx context.Context, settings domain.Settings) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	pairs := [][2]string{
		{"currency", settings.Currency},
		{"locale", settings.Locale},
		{"reward_min", strconv.Itoa(settings.RewardMin)},
		{"reward_max", strconv.Itoa(settings.RewardMax)},
	}
	for _, kv := range pairs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO settings (key, value) VALUES ($1, $2)
			 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
			kv[0], kv[1],
		); err != nil {
			return fmt.Errorf("upsert setting %s: %w", kv[0], err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit settings: %w", err)
	}
	return nil
}
