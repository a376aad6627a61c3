package usecase

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/modreg-org/modreg-cli/internal/config"
)

// StatusResult is the unrestricted read view of the registry's governance
// and storage state.
type StatusResult struct {
	StorageVersion uint64
	Admin          common.Address
	PendingAdmin   common.Address
	UpgradeAdmin   common.Address
	EmergencyAdmin common.Address
	Paused         bool
	MinDelay       time.Duration
	ModuleCount    int
	PendingCount   int
}

// ShowStatus is the use case for inspecting registry state.
type ShowStatus struct {
	cfg   *config.RuntimeConfig
	store RegistryStore
}

// NewShowStatus creates a new ShowStatus use case
func NewShowStatus(cfg *config.RuntimeConfig, store RegistryStore) *ShowStatus {
	return &ShowStatus{cfg: cfg, store: store}
}

// Run executes the show status use case
func (uc *ShowStatus) Run(ctx context.Context) (*StatusResult, error) {
	rec, err := uc.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &StatusResult{
		StorageVersion: rec.StorageVersion,
		Admin:          rec.Admin,
		PendingAdmin:   rec.PendingAdmin,
		UpgradeAdmin:   rec.UpgradeAdmin,
		EmergencyAdmin: rec.EmergencyAdmin,
		Paused:         rec.Paused,
		MinDelay:       rec.MinDelay,
		ModuleCount:    len(rec.Modules),
		PendingCount:   len(rec.PendingUpgrades),
	}, nil
}

// IsPaused reports the pause switch.
func (uc *ShowStatus) IsPaused(ctx context.Context) (bool, error) {
	rec, err := uc.store.Get(ctx)
	if err != nil {
		return false, err
	}
	return rec.Paused, nil
}
