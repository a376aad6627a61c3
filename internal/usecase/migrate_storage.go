package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/modreg-org/modreg-cli/internal/config"
	"github.com/modreg-org/modreg-cli/internal/domain"
	"github.com/modreg-org/modreg-cli/internal/domain/models"
)

// MigrateStorageParams contains parameters for a storage migration
type MigrateStorageParams struct {
	FromVersion uint64
	ToVersion   uint64
	Migrator    string
	Signature   []byte
}

// MigrateStorageResult reports the completed migration
type MigrateStorageResult struct {
	FromVersion uint64
	ToVersion   uint64
	Migrator    string
}

// MigrateStorage evolves the shape of the shared storage region. The
// migrator runs against the record itself, never a copy, and the whole
// migration is rejected as a unit if the post-check fails: a partially
// migrated registry is a platform-wide outage, not a local bug.
type MigrateStorage struct {
	cfg       *config.RuntimeConfig
	store     RegistryStore
	migrators MigratorRegistry
	verifier  SignatureVerifier
	sink      EventSink
}

// NewMigrateStorage creates a new MigrateStorage use case
func NewMigrateStorage(cfg *config.RuntimeConfig, store RegistryStore, migrators MigratorRegistry, verifier SignatureVerifier, sink EventSink) *MigrateStorage {
	return &MigrateStorage{
		cfg:       cfg,
		store:     store,
		migrators: migrators,
		verifier:  verifier,
		sink:      sink,
	}
}

// Run executes the storage migration use case
func (uc *MigrateStorage) Run(ctx context.Context, params MigrateStorageParams) (*MigrateStorageResult, error) {
	if params.Migrator == "" {
		return nil, fmt.Errorf("%w: migrator name required", domain.ErrUnknownMigrator)
	}

	migrator, err := uc.migrators.Lookup(params.Migrator)
	if err != nil {
		return nil, err
	}

	var events []domain.Event

	err = uc.store.Update(ctx, func(rec *models.RegistryRecord) error {
		caller, err := authorizeCaller(rec, uc.cfg.Caller, uc.verifier, "migrate", params.Migrator, common.Address{}, params.Signature)
		if err != nil {
			return err
		}
		if !rec.IsOwner(caller) {
			return fmt.Errorf("%w: migrate requires the registry owner", domain.ErrUnauthorized)
		}
		if rec.Paused {
			return domain.ErrPaused
		}

		if params.FromVersion != rec.StorageVersion {
			return fmt.Errorf("%w: storage is at v%d, migration expects v%d",
				domain.ErrVersionMismatch, rec.StorageVersion, params.FromVersion)
		}
		if params.ToVersion <= params.FromVersion {
			return fmt.Errorf("%w: v%d -> v%d is not an increase",
				domain.ErrInvalidTarget, params.FromVersion, params.ToVersion)
		}

		// Structural pre-check: governance anchors must be intact before
		// the migrator is allowed to touch anything.
		if err := rec.ValidateLayout(); err != nil {
			return fmt.Errorf("pre-migration check failed: %w", err)
		}

		if err := migrator.Apply(ctx, rec); err != nil {
			return fmt.Errorf("migrator %s failed: %w", migrator.Name(), err)
		}

		rec.StorageVersion = params.ToVersion

		// Post-check rejects the whole migration as a unit.
		if err := rec.ValidateLayout(); err != nil {
			return fmt.Errorf("post-migration check failed: %w", err)
		}

		events = append(events, domain.MigrationCompletedEvent{
			FromVersion: params.FromVersion,
			ToVersion:   params.ToVersion,
			Migrator:    migrator.Name(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, e := range events {
		uc.sink.Emit(ctx, e)
	}
	return &MigrateStorageResult{
		FromVersion: params.FromVersion,
		ToVersion:   params.ToVersion,
		Migrator:    migrator.Name(),
	}, nil
}
