package ports

import (
	"context"

	"game-economy-service/internal/core/domain"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories.go -package=mocks

// EconomyStore is the persistence gateway for ledger and claim state. A load
// must tolerate and skip individual malformed entries (invalid id, unparsable
// date) rather than aborting; a save consumes an immutable snapshot so the
// ledger's critical section never blocks on I/O.
type EconomyStore interface {
	Load(ctx context.Context) (domain.EconomySnapshot, error)
	Save(ctx context.Context, snap domain.EconomySnapshot) error
}

// SettingsStore persists the runtime economy settings. LoadSettings returns
// nil when no settings have been stored yet.
type SettingsStore interface {
	LoadSettings(ctx context.Context) (*domain.Settings, error)
	SaveSettings(ctx context.Context, s domain.Settings) error
}
