package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/modreg-org/modreg-cli/internal/config"
	"github.com/modreg-org/modreg-cli/internal/domain"
	"github.com/modreg-org/modreg-cli/internal/domain/models"
)

// ScheduleUpgradeParams contains parameters for scheduling a timelocked rebinding
type ScheduleUpgradeParams struct {
	Key        string
	NewAddress common.Address
	Signature  []byte
}

// ScheduleUpgradeResult reports the created proposal
type ScheduleUpgradeResult struct {
	Key     string
	Pending models.PendingUpgrade
}

// ScheduleUpgrade is the use case for proposing a delayed key rebinding.
// Separating propose from execute by a mandatory delay gives observers a
// window to react before a binding changes.
type ScheduleUpgrade struct {
	cfg      *config.RuntimeConfig
	store    RegistryStore
	clock    Clock
	verifier SignatureVerifier
	sink     EventSink
}

// NewScheduleUpgrade creates a new ScheduleUpgrade use case
func NewScheduleUpgrade(cfg *config.RuntimeConfig, store RegistryStore, clock Clock, verifier SignatureVerifier, sink EventSink) *ScheduleUpgrade {
	return &ScheduleUpgrade{
		cfg:      cfg,
		store:    store,
		clock:    clock,
		verifier: verifier,
		sink:     sink,
	}
}

// Run executes the schedule upgrade use case
func (uc *ScheduleUpgrade) Run(ctx context.Context, params ScheduleUpgradeParams) (*ScheduleUpgradeResult, error) {
	var (
		result ScheduleUpgradeResult
		events []domain.Event
	)

	err := uc.store.Update(ctx, func(rec *models.RegistryRecord) error {
		caller, err := authorizeCaller(rec, uc.cfg.Caller, uc.verifier, "schedule", params.Key, params.NewAddress, params.Signature)
		if err != nil {
			return err
		}
		if !rec.CanUpgrade(caller) {
			return fmt.Errorf("%w: schedule requires the owner or upgrade admin", domain.ErrUnauthorized)
		}
		if rec.Paused {
			return domain.ErrPaused
		}
		if params.Key == "" {
			return domain.ErrEmptyKey
		}
		if params.NewAddress == (common.Address{}) {
			return fmt.Errorf("%w: cannot schedule %q to the zero address", domain.ErrZeroAddress, params.Key)
		}
		if pending, ok := rec.PendingUpgrades[params.Key]; ok {
			return fmt.Errorf("%w: %q already has a proposal for %s",
				domain.ErrAlreadyPending, params.Key, pending.NewAddress.Hex())
		}

		now := uc.clock.Now()
		pending := models.PendingUpgrade{
			NewAddress:   params.NewAddress,
			ExecuteAfter: now.Add(rec.MinDelay),
			ScheduledBy:  caller,
			ScheduledAt:  now,
		}
		rec.PendingUpgrades[params.Key] = pending

		result = ScheduleUpgradeResult{Key: params.Key, Pending: pending}
		events = append(events, domain.UpgradeScheduledEvent{
			Key:          params.Key,
			NewAddress:   params.NewAddress,
			ExecuteAfter: pending.ExecuteAfter,
			ScheduledBy:  caller,
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
