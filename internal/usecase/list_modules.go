package usecase

import (
	"context"
	"sort"

	"github.com/modreg-org/modreg-cli/internal/config"
)

// ListModulesResult contains the full binding table and summary statistics
type ListModulesResult struct {
	Bindings []Binding
	Summary  RegistrySummary
}

// ListModules is the use case for listing the binding table.
type ListModules struct {
	cfg   *config.RuntimeConfig
	store RegistryStore
}

// NewListModules creates a new ListModules use case
func NewListModules(cfg *config.RuntimeConfig, store RegistryStore) *ListModules {
	return &ListModules{cfg: cfg, store: store}
}

// Run executes the list modules use case
func (uc *ListModules) Run(ctx context.Context) (*ListModulesResult, error) {
	rec, err := uc.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]Binding, 0, len(rec.Modules))
	for key, addr := range rec.Modules {
		row := Binding{
			Key:          key,
			Address:      addr,
			HistoryCount: rec.History[key].Count(),
		}
		if pending, ok := rec.PendingUpgrades[key]; ok {
			p := pending
			row.Pending = &p
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })

	return &ListModulesResult{
		Bindings: rows,
		Summary: RegistrySummary{
			Total:          len(rows),
			PendingCount:   len(rec.PendingUpgrades),
			Paused:         rec.Paused,
			StorageVersion: rec.StorageVersion,
			MinDelay:       rec.MinDelay,
		},
	}, nil
}
