package service

import (
	"context"
	"time"

	"game-economy-service/internal/core/domain"
	"game-economy-service/internal/core/ports"

	"github.com/rs/zerolog"
)

// dirtyTracker is the part of a stateful service the checkpointer polls.
type dirtyTracker interface {
	TakeDirty() bool
}

// Checkpointer decouples persistence from ledger mutation: services flip a
// dirty flag under their own locks, and the checkpointer flushes a snapshot
// on an interval and on shutdown. No ledger operation ever blocks on I/O.
type Checkpointer struct {
	store    ports.EconomyStore
	ledger   ports.Ledger
	rewards  ports.RewardService
	interval time.Duration
	log      zerolog.Logger
}

// NewCheckpointer creates a checkpointer flushing to the given store.
func NewCheckpointer(store ports.EconomyStore, ledger ports.Ledger, rewards ports.RewardService, interval time.Duration, log zerolog.Logger) *Checkpointer {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Checkpointer{
		store:    store,
		ledger:   ledger,
		rewards:  rewards,
		interval: interval,
		log:      log,
	}
}

// Run flushes dirty state on every tick until the context is cancelled, then
// performs a final unconditional flush.
func (c *Checkpointer) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := c.Flush(context.Background()); err != nil {
				c.log.Error().Err(err).Msg("final checkpoint flush failed")
			}
			return
		case <-ticker.C:
			c.checkpoint(ctx)
		}
	}
}

func (c *Checkpointer) checkpoint(ctx context.Context) {
	ledgerDirty := c.ledger.TakeDirty()
	claimsDirty := c.rewards.TakeDirty()
	if !ledgerDirty && !claimsDirty {
		return
	}
	if err := c.Flush(ctx); err != nil {
		c.log.Error().Err(err).Msg("checkpoint flush failed, will retry")
		// Re-arm so the next tick retries the save.
		c.ledger.MarkDirty()
	}
}

// Flush persists the current snapshot regardless of dirty state.
func (c *Checkpointer) Flush(ctx context.Context) error {
	snap := domain.EconomySnapshot{
		Balances: c.ledger.Snapshot(),
		Claims:   c.rewards.SnapshotClaims(),
	}
	if err := c.store.Save(ctx, snap); err != nil {
		return err
	}
	c.log.Debug().
		Int("accounts", len(snap.Balances)).
		Int("claims", len(snap.Claims)).
		Msg("economy state checkpointed")
	return nil
}
