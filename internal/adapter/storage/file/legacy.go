package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"game-economy-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	legacyUserDataFile   = "rs-economy_userdata.json"
	legacyServerDataFile = "rs-economy_serverdata.json"
)

// legacyUserData is the retired file format. A balance entry is either a
// plain number or a currency-name→amount map (the old multi-currency model);
// domain.LegacyBalance absorbs both shapes.
type legacyUserData struct {
	Balances map[string]domain.LegacyBalance `json:"balances"`
	Claims   map[string]string               `json:"dailyRewards"`
}

// legacyServerData is the retired settings format; the reward range is a
// single "min-max" string.
type legacyServerData struct {
	Currency    string `json:"currency"`
	Locale      string `json:"locale"`
	DailyReward string `json:"dailyReward"`
}

// ImportResult summarizes a legacy import run.
type ImportResult struct {
	Attempted bool // legacy files were present
	Balances  int  // accounts imported
	Claims    int  // claim records imported
	Settings  *domain.Settings
}

// LegacyImporter performs the one-time, best-effort migration from the old
// file format. Per-account import is idempotent; unreadable entries are
// skipped, and on any failure the legacy files are kept in place for manual
// retry rather than deleted.
type LegacyImporter struct {
	dir string
	log zerolog.Logger
}

// NewLegacyImporter creates an importer scanning dir for legacy files.
func NewLegacyImporter(dir string, log zerolog.Logger) *LegacyImporter {
	return &LegacyImporter{dir: dir, log: log}
}

// Import reads whatever legacy files exist and returns their resolved
// contents. Attempted is false when no legacy files were found. A partial
// failure returns what did import alongside the error (no rollback).
func (m *LegacyImporter) Import(ctx context.Context) (domain.EconomySnapshot, ImportResult, error) {
	snap := domain.EconomySnapshot{
		Balances: make(map[domain.AccountID]float64),
		Claims:   make(map[domain.AccountID]domain.ClaimDate),
	}
	result := ImportResult{}

	userPath := filepath.Join(m.dir, legacyUserDataFile)
	serverPath := filepath.Join(m.dir, legacyServerDataFile)

	userExists := fileExists(userPath)
	serverExists := fileExists(serverPath)
	if !userExists && !serverExists {
		return snap, result, nil
	}
	result.Attempted = true
	m.log.Info().Msg("legacy data files detected, starting migration")

	var firstErr error

	if serverExists {
		settings, err := m.importServerData(serverPath)
		if err != nil {
			m.log.Error().Err(err).Str("file", legacyServerDataFile).Msg("failed to migrate legacy settings")
			firstErr = err
		} else {
			result.Settings = settings
		}
	}

	if userExists {
		if err := m.importUserData(userPath, &snap, &result); err != nil {
			m.log.Error().Err(err).Str("file", legacyUserDataFile).Msg("failed to migrate legacy user data")
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if firstErr != nil {
		m.log.Warn().Msg("legacy migration completed with errors, files kept for manual retry")
		return snap, result, fmt.Errorf("legacy import: %w", firstErr)
	}

	m.log.Info().
		Int("balances", result.Balances).
		Int("claims", result.Claims).
		Msg("legacy migration completed")
	return snap, result, nil
}

func (m *LegacyImporter) importUserData(path string, snap *domain.EconomySnapshot, result *ImportResult) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading legacy user data: %w", err)
	}

	var data legacyUserData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parsing legacy user data: %w", err)
	}

	for key, legacy := range data.Balances {
		id, err := uuid.Parse(key)
		if err != nil {
			m.log.Warn().Str("key", key).Msg("skipping legacy balance with invalid account id")
			continue
		}
		// Multi-currency sub-balances collapse into one scalar; value is
		// conserved, currency identity is not.
		snap.Balances[id] = legacy.Total()
		result.Balances++
	}

	for key, dateStr := range data.Claims {
		id, err := uuid.Parse(key)
		if err != nil {
			m.log.Warn().Str("key", key).Msg("skipping legacy claim with invalid account id")
			continue
		}
		date, err := domain.ParseClaimDate(dateStr)
		if err != nil {
			m.log.Warn().Str("key", key).Str("date", dateStr).Msg("skipping legacy claim with unparsable date")
			continue
		}
		snap.Claims[id] = date
		result.Claims++
	}

	return nil
}

func (m *LegacyImporter) importServerData(path string) (*domain.Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading legacy server data: %w", err)
	}

	var data legacyServerData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing legacy server data: %w", err)
	}

	settings := domain.DefaultSettings()
	if strings.TrimSpace(data.Currency) != "" {
		settings.Currency = data.Currency
	}
	if strings.TrimSpace(data.Locale) != "" {
		// The old format used underscore separators (en_US).
		settings.Locale = strings.ReplaceAll(data.Locale, "_", "-")
	}
	if min, max, err := parseRewardRange(data.DailyReward); err == nil {
		settings.RewardMin = min
		settings.RewardMax = max
	} else {
		m.log.Warn().Str("range", data.DailyReward).Msg("ignoring unparsable legacy reward range")
	}
	return &settings, nil
}

// parseRewardRange parses the legacy "min-max" string.
func parseRewardRange(s string) (int, int, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, errors.New("reward range is not min-max")
	}
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	max, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	if min < 0 || min > max {
		return 0, 0, fmt.Errorf("invalid reward range %d-%d", min, max)
	}
	return min, max, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
