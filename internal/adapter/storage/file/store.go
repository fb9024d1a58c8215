package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"game-economy-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	userDataFile   = "economy_userdata.json"
	serverDataFile = "economy_serverdata.json"
)

// userData is the on-disk shape of ledger and claim state.
type userData struct {
	Balances map[string]float64 `json:"balances"`
	Claims   map[string]string  `json:"dailyRewards"`
}

// Store implements ports.EconomyStore and ports.SettingsStore on top of JSON
// files in a data directory. Writes go through a temp file plus rename so a
// crash mid-save never truncates the previous state.
type Store struct {
	dir string
	log zerolog.Logger
}

// NewStore creates a file store rooted at dir, creating it if needed.
func NewStore(dir string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Load reads ledger and claim state. A missing file yields an empty snapshot;
// individual malformed entries are skipped with a warning instead of aborting
// the load.
func (s *Store) Load(ctx context.Context) (domain.EconomySnapshot, error) {
	snap := domain.EconomySnapshot{
		Balances: make(map[domain.AccountID]float64),
		Claims:   make(map[domain.AccountID]domain.ClaimDate),
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, userDataFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.Info().Msg("no user data file found, starting with empty ledger")
			return snap, nil
		}
		return snap, fmt.Errorf("reading user data: %w", err)
	}

	var data userData
	if err := json.Unmarshal(raw, &data); err != nil {
		return snap, fmt.Errorf("parsing user data: %w", err)
	}

	for key, balance := range data.Balances {
		id, err := uuid.Parse(key)
		if err != nil {
			s.log.Warn().Str("key", key).Msg("skipping balance entry with invalid account id")
			continue
		}
		snap.Balances[id] = balance
	}

	for key, dateStr := range data.Claims {
		id, err := uuid.Parse(key)
		if err != nil {
			s.log.Warn().Str("key", key).Msg("skipping claim entry with invalid account id")
			continue
		}
		date, err := domain.ParseClaimDate(dateStr)
		if err != nil {
			s.log.Warn().Str("key", key).Str("date", dateStr).Msg("skipping claim entry with unparsable date")
			continue
		}
		snap.Claims[id] = date
	}

	s.log.Info().
		Int("accounts", len(snap.Balances)).
		Int("claims", len(snap.Claims)).
		Msg("user data loaded")
	return snap, nil
}

// Save persists ledger and claim state atomically.
func (s *Store) Save(ctx context.Context, snap domain.EconomySnapshot) error {
	data := userData{
		Balances: make(map[string]float64, len(snap.Balances)),
		Claims:   make(map[string]string, len(snap.Claims)),
	}
	for id, balance := range snap.Balances {
		data.Balances[id.String()] = balance
	}
	for id, date := range snap.Claims {
		data.Claims[id.String()] = date.String()
	}

	return s.writeJSON(userDataFile, data)
}

// LoadSettings reads the stored server settings; nil when none exist yet.
func (s *Store) LoadSettings(ctx context.Context) (*domain.Settings, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, serverDataFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading server data: %w", err)
	}

	var settings domain.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("parsing server data: %w", err)
	}
	return &settings, nil
}

// SaveSettings persists the server settings atomically.
func (s *Store) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return s.writeJSON(serverDataFile, settings)
}

func (s *Store) writeJSON(name string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing %s: %w", name, err)
	}
	return nil
}

// Ping implements ports.HealthChecker by verifying the data directory is
// writable.
func (s *Store) Ping(ctx context.Context) error {
	probe := filepath.Join(s.dir, ".probe")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return err
	}
	return os.Remove(probe)
}

// Name returns the dependency name.
func (s *Store) Name() string {
	return "file"
}
