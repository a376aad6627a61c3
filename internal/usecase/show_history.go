package usecase

import (
	"context"
	"fmt"

	"github.com/modreg-org/modreg-cli/internal/config"
	"github.com/modreg-org/modreg-cli/internal/domain"
	"github.com/modreg-org/modreg-cli/internal/domain/models"
)

// ShowHistoryResult contains the surviving audit trail for one key,
// oldest entry first.
type ShowHistoryResult struct {
	Key     string
	Count   int
	Entries []models.HistoryEntry
}

// ShowHistory is the read-side use case over the per-key history rings. The
// rings are audit-only: nothing here feeds back into authorization or
// mutation decisions.
type ShowHistory struct {
	cfg   *config.RuntimeConfig
	store RegistryStore
}

// NewShowHistory creates a new ShowHistory use case
func NewShowHistory(cfg *config.RuntimeConfig, store RegistryStore) *ShowHistory {
	return &ShowHistory{cfg: cfg, store: store}
}

// Run returns the full surviving history for a key.
func (uc *ShowHistory) Run(ctx context.Context, key string) (*ShowHistoryResult, error) {
	rec, err := uc.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	ring := rec.History[key]
	return &ShowHistoryResult{
		Key:     key,
		Count:   ring.Count(),
		Entries: ring.Snapshot(),
	}, nil
}

// Count returns how many entries survive for a key.
func (uc *ShowHistory) Count(ctx context.Context, key string) (int, error) {
	rec, err := uc.store.Get(ctx)
	if err != nil {
		return 0, err
	}
	return rec.History[key].Count(), nil
}

// Entry returns the index-th surviving entry for a key, oldest first.
func (uc *ShowHistory) Entry(ctx context.Context, key string, index int) (*models.HistoryEntry, error) {
	rec, err := uc.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	entry, ok := rec.History[key].Entry(index)
	if !ok {
		return nil, fmt.Errorf("%w: %q has %d entries, requested index %d",
			domain.ErrIndexOutOfRange, key, rec.History[key].Count(), index)
	}
	return &entry, nil
}
