package usecase

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/modreg-org/modreg-cli/internal/domain"
	"github.com/modreg-org/modreg-cli/internal/domain/models"
)

// RegistryStore owns the single shared RegistryRecord. Get returns a
// snapshot clone; Update applies mutate to a clone and commits it only when
// mutate returns nil, so every mutating operation is all-or-nothing.
type RegistryStore interface {
	Get(ctx context.Context) (*models.RegistryRecord, error)
	Update(ctx context.Context, mutate func(*models.RegistryRecord) error) error
	Init(ctx context.Context, rec *models.RegistryRecord) error
}

// Clock abstracts time so timelock math is testable.
type Clock interface {
	Now() time.Time
}

// EventSink receives audit events after a mutation commits.
type EventSink interface {
	Emit(ctx context.Context, event domain.Event)
}

// NopSink is a no-op implementation of EventSink.
type NopSink struct{}

func (NopSink) Emit(context.Context, domain.Event) {}

// SignatureVerifier recovers the signer of an authorization digest.
type SignatureVerifier interface {
	Recover(digest common.Hash, sig []byte) (common.Address, error)
}

// CacheTarget is one dependent component holding a locally cached module
// address behind a standard refresh entry point.
type CacheTarget interface {
	Name() string
	RefreshLocalCache(ctx context.Context) error
}

// TargetDirectory resolves refresh targets by name. An empty name list
// means every declared target.
type TargetDirectory interface {
	Targets(ctx context.Context, names []string) ([]CacheTarget, error)
}

// Migrator transforms the shared record in place during a storage migration.
// It may add or reshape fields but must leave the layout valid.
type Migrator interface {
	Name() string
	Apply(ctx context.Context, rec *models.RegistryRecord) error
}

// MigratorRegistry looks up built-in migrators by name.
type MigratorRegistry interface {
	Lookup(name string) (Migrator, error)
}

// RefreshAttempt is the per-target outcome of a cache refresh sweep.
type RefreshAttempt struct {
	Target string
	OK     bool
	Reason string
}

// RefreshReport collects the outcomes of one batchRefresh call.
type RefreshReport struct {
	Attempts  []RefreshAttempt
	Succeeded int
	Failed    int
}

// Binding is one key→address row for list output.
type Binding struct {
	Key          string
	Address      common.Address
	Pending      *models.PendingUpgrade
	HistoryCount int
}

// RegistrySummary provides summary statistics for list output.
type RegistrySummary struct {
	Total          int
	PendingCount   int
	Paused         bool
	StorageVersion uint64
	MinDelay       time.Duration
}
