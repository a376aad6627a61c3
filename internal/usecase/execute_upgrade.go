package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/modreg-org/modreg-cli/internal/config"
	"github.com/modreg-org/modreg-cli/internal/domain"
	"github.com/modreg-org/modreg-cli/internal/domain/models"
)

// ExecuteUpgradeParams contains parameters for executing a ready proposal
type ExecuteUpgradeParams struct {
	Key       string
	Signature []byte
}

// ExecuteUpgradeResult reports the rebinding that took effect
type ExecuteUpgradeResult struct {
	Key        string
	OldAddress common.Address
	NewAddress common.Address
}

// ExecuteUpgrade is the use case for applying a timelocked proposal once its
// delay has elapsed.
type ExecuteUpgrade struct {
	cfg      *config.RuntimeConfig
	store    RegistryStore
	clock    Clock
	verifier SignatureVerifier
	sink     EventSink
}

// NewExecuteUpgrade creates a new ExecuteUpgrade use case
func NewExecuteUpgrade(cfg *config.RuntimeConfig, store RegistryStore, clock Clock, verifier SignatureVerifier, sink EventSink) *ExecuteUpgrade {
	return &ExecuteUpgrade{
		cfg:      cfg,
		store:    store,
		clock:    clock,
		verifier: verifier,
		sink:     sink,
	}
}

// Run executes the upgrade. On success the key is rebound, a history entry
// appended, and the pending proposal cleared, all in one atomic unit.
func (uc *ExecuteUpgrade) Run(ctx context.Context, params ExecuteUpgradeParams) (*ExecuteUpgradeResult, error) {
	var (
		result ExecuteUpgradeResult
		events []domain.Event
	)

	err := uc.store.Update(ctx, func(rec *models.RegistryRecord) error {
		caller, err := authorizeCaller(rec, uc.cfg.Caller, uc.verifier, "execute", params.Key, common.Address{}, params.Signature)
		if err != nil {
			return err
		}
		if !rec.CanUpgrade(caller) {
			return fmt.Errorf("%w: execute requires the owner or upgrade admin", domain.ErrUnauthorized)
		}
		if rec.Paused {
			return domain.ErrPaused
		}

		pending, ok := rec.PendingUpgrades[params.Key]
		if !ok {
			return fmt.Errorf("%w: %q", domain.ErrNoPendingUpgrade, params.Key)
		}

		now := uc.clock.Now()
		if now.Before(pending.ExecuteAfter) {
			return fmt.Errorf("%w: %q executable at %s, now %s",
				domain.ErrNotReady, params.Key,
				pending.ExecuteAfter.Format("2006-01-02T15:04:05Z07:00"),
				now.Format("2006-01-02T15:04:05Z07:00"))
		}

		old := rec.Modules[params.Key]
		rec.Modules[params.Key] = pending.NewAddress
		rec.AppendHistory(params.Key, old, pending.NewAddress, caller, now)
		delete(rec.PendingUpgrades, params.Key)

		result = ExecuteUpgradeResult{
			Key:        params.Key,
			OldAddress: old,
			NewAddress: pending.NewAddress,
		}
		events = append(events, domain.UpgradeExecutedEvent{
			Key:        params.Key,
			OldAddress: old,
			NewAddress: pending.NewAddress,
			Executor:   caller,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, e := range events {
		uc.sink.Emit(ctx, e)
	}
	return &result, nil
}
