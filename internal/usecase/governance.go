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

// PauseRegistry throws the global pause switch. Owner or emergency admin.
type PauseRegistry struct {
	cfg      *config.RuntimeConfig
	store    RegistryStore
	verifier SignatureVerifier
	sink     EventSink
}

// NewPauseRegistry creates a new PauseRegistry use case
func NewPauseRegistry(cfg *config.RuntimeConfig, store RegistryStore, verifier SignatureVerifier, sink EventSink) *PauseRegistry {
	return &PauseRegistry{cfg: cfg, store: store, verifier: verifier, sink: sink}
}

// Run executes the pause use case
func (uc *PauseRegistry) Run(ctx context.Context) error {
	var events []domain.Event

	err := uc.store.Update(ctx, func(rec *models.RegistryRecord) error {
		caller, err := authorizeCaller(rec, uc.cfg.Caller, uc.verifier, "pause", "", common.Address{}, nil)
		if err != nil {
			return err
		}
		if !rec.CanEmergency(caller) {
			return fmt.Errorf("%w: pause requires the owner or emergency admin", domain.ErrUnauthorized)
		}
		if rec.Paused {
			return fmt.Errorf("%w: already paused", domain.ErrPaused)
		}
		rec.Paused = true
		events = append(events, domain.PausedEvent{By: caller})
		return nil
	})
	if err != nil {
		return err
	}

	for _, e := range events {
		uc.sink.Emit(ctx, e)
	}
	return nil
}

// UnpauseRegistry resumes the registry. Owner only; this is one of the two
// designated pause-bypassing escape paths.
type UnpauseRegistry struct {
	cfg      *config.RuntimeConfig
	store    RegistryStore
	verifier SignatureVerifier
	sink     EventSink
}

// NewUnpauseRegistry creates a new UnpauseRegistry use case
func NewUnpauseRegistry(cfg *config.RuntimeConfig, store RegistryStore, verifier SignatureVerifier, sink EventSink) *UnpauseRegistry {
	return &UnpauseRegistry{cfg: cfg, store: store, verifier: verifier, sink: sink}
}

// Run executes the unpause use case
func (uc *UnpauseRegistry) Run(ctx context.Context) error {
	var events []domain.Event

	err := uc.store.Update(ctx, func(rec *models.RegistryRecord) error {
		caller, err := authorizeCaller(rec, uc.cfg.Caller, uc.verifier, "unpause", "", common.Address{}, nil)
		if err != nil {
			return err
		}
		if !rec.IsOwner(caller) {
			return fmt.Errorf("%w: unpause requires the registry owner", domain.ErrUnauthorized)
		}
		if !rec.Paused {
			return domain.ErrNotPaused
		}
		rec.Paused = false
		events = append(events, domain.UnpausedEvent{By: caller})
		return nil
	})
	if err != nil {
		return err
	}

	for _, e := range events {
		uc.sink.Emit(ctx, e)
	}
	return nil
}

// SetMinDelay adjusts the timelock lower bound. The hard ceiling stops
// governance from locking itself out behind an unserviceable delay.
type SetMinDelay struct {
	cfg      *config.RuntimeConfig
	store    RegistryStore
	verifier SignatureVerifier
}

// NewSetMinDelay creates a new SetMinDelay use case
func NewSetMinDelay(cfg *config.RuntimeConfig, store RegistryStore, verifier SignatureVerifier) *SetMinDelay {
	return &SetMinDelay{cfg: cfg, store: store, verifier: verifier}
}

// Run executes the set min delay use case
func (uc *SetMinDelay) Run(ctx context.Context, delay time.Duration) error {
	return uc.store.Update(ctx, func(rec *models.RegistryRecord) error {
		caller, err := authorizeCaller(rec, uc.cfg.Caller, uc.verifier, "setMinDelay", delay.String(), common.Address{}, nil)
		if err != nil {
			return err
		}
		if !rec.IsOwner(caller) {
			return fmt.Errorf("%w: setMinDelay requires the registry owner", domain.ErrUnauthorized)
		}
		if rec.Paused {
			return domain.ErrPaused
		}
		if delay <= 0 || delay > models.MaxMinDelay {
			return fmt.Errorf("%w: %s outside (0, %s]", domain.ErrDelayOutOfBounds, delay, models.MaxMinDelay)
		}
		rec.MinDelay = delay
		return nil
	})
}
