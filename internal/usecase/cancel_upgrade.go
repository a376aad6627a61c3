package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/modreg-org/modreg-cli/internal/config"
	"github.com/modreg-org/modreg-cli/internal/domain"
	"github.com/modreg-org/modreg-cli/internal/domain/models"
)

// CancelUpgradeParams contains parameters for cancelling a pending proposal
type CancelUpgradeParams struct {
	Key       string
	Signature []byte
}

// CancelUpgradeResult reports the proposal that was dropped
type CancelUpgradeResult struct {
	Key     string
	Dropped models.PendingUpgrade
}

// CancelUpgrade unwinds a pending proposal. It is the one operation the
// emergency admin may use without waiting out the delay, and it bypasses the
// pause switch: cancellation can only remove a proposed binding, never
// install one.
type CancelUpgrade struct {
	cfg      *config.RuntimeConfig
	store    RegistryStore
	verifier SignatureVerifier
	sink     EventSink
}

// NewCancelUpgrade creates a new CancelUpgrade use case
func NewCancelUpgrade(cfg *config.RuntimeConfig, store RegistryStore, verifier SignatureVerifier, sink EventSink) *CancelUpgrade {
	return &CancelUpgrade{
		cfg:      cfg,
		store:    store,
		verifier: verifier,
		sink:     sink,
	}
}

// Run executes the cancel upgrade use case
func (uc *CancelUpgrade) Run(ctx context.Context, params CancelUpgradeParams) (*CancelUpgradeResult, error) {
	var (
		result CancelUpgradeResult
		events []domain.Event
	)

	err := uc.store.Update(ctx, func(rec *models.RegistryRecord) error {
		caller, err := authorizeCaller(rec, uc.cfg.Caller, uc.verifier, "cancel", params.Key, common.Address{}, params.Signature)
		if err != nil {
			return err
		}
		if !rec.CanEmergency(caller) {
			return fmt.Errorf("%w: cancel requires the owner or emergency admin", domain.ErrUnauthorized)
		}

		pending, ok := rec.PendingUpgrades[params.Key]
		if !ok {
			return fmt.Errorf("%w: %q", domain.ErrNoPendingUpgrade, params.Key)
		}
		delete(rec.PendingUpgrades, params.Key)

		result = CancelUpgradeResult{Key: params.Key, Dropped: pending}
		events = append(events, domain.UpgradeCancelledEvent{
			Key:         params.Key,
			NewAddress:  pending.NewAddress,
			CancelledBy: caller,
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
