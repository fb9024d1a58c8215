package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"game-economy-service/internal/core/domain"
	"game-economy-service/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type checkpointTestDeps struct {
	cp      *Checkpointer
	ledger  *LedgerServiceImpl
	rewards *RewardServiceImpl
	store   *mocks.MockEconomyStore
}

func setupCheckpointer(t *testing.T) *checkpointTestDeps {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockEconomyStore(ctrl)
	settingsStore := mocks.NewMockSettingsStore(ctrl)
	ledger := NewLedgerService("Coins", zerolog.Nop())
	settings := NewSettingsService(domain.DefaultSettings(), settingsStore, ledger, zerolog.Nop())
	rewards := NewRewardService(ledger, settings, zerolog.Nop())
	cp := NewCheckpointer(store, ledger, rewards, time.Minute, zerolog.Nop())
	return &checkpointTestDeps{cp: cp, ledger: ledger, rewards: rewards, store: store}
}

func TestCheckpointer_Flush(t *testing.T) {
	d := setupCheckpointer(t)
	id := uuid.New()
	d.ledger.AddBalance(id, 123)

	var saved domain.EconomySnapshot
	d.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, snap domain.EconomySnapshot) error {
			saved = snap
			return nil
		})

	require.NoError(t, d.cp.Flush(context.Background()))
	assert.Equal(t, 123.0, saved.Balances[id])
}

func TestCheckpointer_SkipsWhenClean(t *testing.T) {
	d := setupCheckpointer(t)
	// No Save expectation: a clean checkpoint must not touch the store.
	d.ledger.TakeDirty()
	d.cp.checkpoint(context.Background())
}

func TestCheckpointer_FlushesWhenDirty(t *testing.T) {
	d := setupCheckpointer(t)
	d.ledger.AddBalance(uuid.New(), 5)

	d.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	d.cp.checkpoint(context.Background())

	// Second checkpoint with no new mutation does nothing.
	d.cp.checkpoint(context.Background())
}

func TestCheckpointer_RetriesAfterFailure(t *testing.T) {
	d := setupCheckpointer(t)
	d.ledger.AddBalance(uuid.New(), 5)

	d.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("backend down"))
	d.cp.checkpoint(context.Background())

	// The failed flush re-armed the dirty flag; the next tick retries.
	d.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	d.cp.checkpoint(context.Background())
}

func TestCheckpointer_FinalFlushOnShutdown(t *testing.T) {
	d := setupCheckpointer(t)
	d.ledger.AddBalance(uuid.New(), 9)

	d.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.cp.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("checkpointer did not stop after context cancellation")
	}
}
