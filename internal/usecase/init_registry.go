package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/modreg-org/modreg-cli/internal/config"
	"github.com/modreg-org/modreg-cli/internal/domain"
	"github.com/modreg-org/modreg-cli/internal/domain/models"
)

// InitRegistryParams are the constructor-time inputs owned by the
// deployment collaborator: governance identities, the initial delay, and
// the initial key set.
type InitRegistryParams struct {
	Admin          common.Address
	UpgradeAdmin   common.Address
	EmergencyAdmin common.Address
	MinDelay       time.Duration
	InitialModules map[string]common.Address
}

// InitRegistryResult reports the created registry
type InitRegistryResult struct {
	StorageVersion uint64
	Seeded         int
}

// InitRegistry creates the single registry record. It can only run once.
type InitRegistry struct {
	cfg   *config.RuntimeConfig
	store RegistryStore
	clock Clock
}

// NewInitRegistry creates a new InitRegistry use case
func NewInitRegistry(cfg *config.RuntimeConfig, store RegistryStore, clock Clock) *InitRegistry {
	return &InitRegistry{cfg: cfg, store: store, clock: clock}
}

// Run executes the init registry use case
func (uc *InitRegistry) Run(ctx context.Context, params InitRegistryParams) (*InitRegistryResult, error) {
	rec, err := models.NewRegistryRecord(params.Admin, params.UpgradeAdmin, params.EmergencyAdmin, params.MinDelay)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	for key, addr := range params.InitialModules {
		if key == "" {
			return nil, domain.ErrEmptyKey
		}
		if addr == (common.Address{}) {
			return nil, fmt.Errorf("%w: initial module %q", domain.ErrZeroAddress, key)
		}
		rec.Modules[key] = addr
		rec.AppendHistory(key, common.Address{}, addr, params.Admin, now)
	}

	if err := uc.store.Init(ctx, rec); err != nil {
		return nil, err
	}

	return &InitRegistryResult{
		StorageVersion: rec.StorageVersion,
		Seeded:         len(params.InitialModules),
	}, nil
}
