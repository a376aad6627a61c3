package usecase

import (
	"context"
	"sort"

	"github.com/modreg-org/modreg-cli/internal/config"
	"github.com/modreg-org/modreg-cli/internal/domain/models"
)

// PendingUpgradeView is one outstanding proposal plus its readiness.
type PendingUpgradeView struct {
	Key     string
	Pending models.PendingUpgrade
	Ready   bool
}

// GetPendingResult reports the proposal state for one key.
type GetPendingResult struct {
	Key     string
	Pending models.PendingUpgrade
	Exists  bool
	Ready   bool
}

// PendingUpgrades is the read-side use case over the pending-upgrade queue.
type PendingUpgrades struct {
	cfg   *config.RuntimeConfig
	store RegistryStore
	clock Clock
}

// NewPendingUpgrades creates a new PendingUpgrades use case
func NewPendingUpgrades(cfg *config.RuntimeConfig, store RegistryStore, clock Clock) *PendingUpgrades {
	return &PendingUpgrades{cfg: cfg, store: store, clock: clock}
}

// Get returns the pending proposal for a key, if any.
func (uc *PendingUpgrades) Get(ctx context.Context, key string) (*GetPendingResult, error) {
	rec, err := uc.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	pending, ok := rec.PendingUpgrades[key]
	return &GetPendingResult{
		Key:     key,
		Pending: pending,
		Exists:  ok,
		Ready:   ok && !uc.clock.Now().Before(pending.ExecuteAfter),
	}, nil
}

// IsReady reports whether a proposal exists for key and its delay has elapsed.
func (uc *PendingUpgrades) IsReady(ctx context.Context, key string) (bool, error) {
	res, err := uc.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return res.Ready, nil
}

// List returns every outstanding proposal sorted by key.
func (uc *PendingUpgrades) List(ctx context.Context) ([]PendingUpgradeView, error) {
	rec, err := uc.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	views := make([]PendingUpgradeView, 0, len(rec.PendingUpgrades))
	for key, pending := range rec.PendingUpgrades {
		views = append(views, PendingUpgradeView{
			Key:     key,
			Pending: pending,
			Ready:   !now.Before(pending.ExecuteAfter),
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Key < views[j].Key })
	return views, nil
}
