package migrations

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/modreg-org/modreg-cli/internal/domain"
	"github.com/modreg-org/modreg-cli/internal/domain/models"
	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// Registry holds the built-in storage migrators by name.
type Registry struct {
	byName map[string]usecase.Migrator
}

// NewRegistry creates the migrator registry with all built-ins installed.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]usecase.Migrator)}
	r.register(&funcMigrator{
		name: "backfill-nonce-table",
		fn:   backfillNonceTable,
	})
	r.register(&funcMigrator{
		name: "backfill-history-rings",
		fn:   backfillHistoryRings,
	})
	return r
}

func (r *Registry) register(m usecase.Migrator) {
	r.byName[m.Name()] = m
}

// Lookup finds a migrator by name.
func (r *Registry) Lookup(name string) (usecase.Migrator, error) {
	m, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMigrator, name)
	}
	return m, nil
}

// Names lists the available migrators.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	return names
}

type funcMigrator struct {
	name string
	fn   func(ctx context.Context, rec *models.RegistryRecord) error
}

func (m *funcMigrator) Name() string { return m.name }

func (m *funcMigrator) Apply(ctx context.Context, rec *models.RegistryRecord) error {
	return m.fn(ctx, rec)
}

// backfillNonceTable initializes the signer nonce table on records written
// before signed authorization existed.
func backfillNonceTable(_ context.Context, rec *models.RegistryRecord) error {
	if rec.Nonces == nil {
		rec.Nonces = make(map[common.Address]uint64)
	}
	return nil
}

// backfillHistoryRings gives every registered key an (empty) history ring so
// readers can distinguish "never rebound" from "key unknown".
func backfillHistoryRings(_ context.Context, rec *models.RegistryRecord) error {
	for key := range rec.Modules {
		if rec.History[key] == nil {
			rec.History[key] = &models.HistoryRing{}
		}
	}
	return nil
}
