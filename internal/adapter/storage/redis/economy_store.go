package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"game-economy-service/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	balancesKey = "economy:balances"
	claimsKey   = "economy:claims"
	settingsKey = "economy:settings"
)

// EconomyStore implements ports.EconomyStore and ports.SettingsStore on
// Redis hashes: one field per account keyed by the account id. A save
// replaces each hash atomically inside a pipeline transaction.
type EconomyStore struct {
	client *goredis.Client
	log    zerolog.Logger
}

// NewEconomyStore creates a Redis-backed economy store.
func NewEconomyStore(client *goredis.Client, log zerolog.Logger) *EconomyStore {
	return &EconomyStore{client: client, log: log}
}

// Load reads ledger and claim state. Individual malformed fields are skipped
// with a warning instead of aborting the load.
func (s *EconomyStore) Load(ctx context.Context) (domain.EconomySnapshot, error) {
	snap := domain.EconomySnapshot{
		Balances: make(map[domain.AccountID]float64),
		Claims:   make(map[domain.AccountID]domain.ClaimDate),
	}

	balances, err := s.client.HGetAll(ctx, balancesKey).Result()
	if err != nil {
		return snap, fmt.Errorf("redis load balances: %w", err)
	}
	for field, value := range balances {
		id, err := uuid.Parse(field)
		if err != nil {
			s.log.Warn().Str("field", field).Msg("skipping balance field with invalid account id")
			continue
		}
		balance, err := strconv.ParseFloat(value, 64)
		if err != nil {
			s.log.Warn().Str("field", field).Str("value", value).Msg("skipping unparsable balance field")
			continue
		}
		snap.Balances[id] = balance
	}

	claims, err := s.client.HGetAll(ctx, claimsKey).Result()
	if err != nil {
		return snap, fmt.Errorf("redis load claims: %w", err)
	}
	for field, value := range claims {
		id, err := uuid.Parse(field)
		if err != nil {
			s.log.Warn().Str("field", field).Msg("skipping claim field with invalid account id")
			continue
		}
		date, err := domain.ParseClaimDate(value)
		if err != nil {
			s.log.Warn().Str("field", field).Str("value", value).Msg("skipping claim field with unparsable date")
			continue
		}
		snap.Claims[id] = date
	}

	return snap, nil
}

// Save replaces the stored state with the snapshot.
func (s *EconomyStore) Save(ctx context.Context, snap domain.EconomySnapshot) error {
	balances := make(map[string]string, len(snap.Balances))
	for id, balance := range snap.Balances {
		balances[id.String()] = strconv.FormatFloat(balance, 'g', -1, 64)
	}
	claims := make(map[string]string, len(snap.Claims))
	for id, date := range snap.Claims {
		claims[id.String()] = date.String()
	}

	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, balancesKey, claimsKey)
		if len(balances) > 0 {
			pipe.HSet(ctx, balancesKey, balances)
		}
		if len(claims) > 0 {
			pipe.HSet(ctx, claimsKey, claims)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis save snapshot: %w", err)
	}
	return nil
}

// LoadSettings reads the stored settings; nil when none exist yet.
func (s *EconomyStore) LoadSettings(ctx context.Context) (*domain.Settings, error) {
	raw, err := s.client.Get(ctx, settingsKey).Result()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis load settings: %w", err)
	}

	var settings domain.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return nil, fmt.Errorf("parsing stored settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings persists the settings as one JSON value.
func (s *EconomyStore) SaveSettings(ctx context.Context, settings domain.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := s.client.Set(ctx, settingsKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis save settings: %w", err)
	}
	return nil
}
