package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/modreg-org/modreg-cli/internal/config"
	"github.com/modreg-org/modreg-cli/internal/domain"
	"github.com/modreg-org/modreg-cli/internal/domain/models"
)

// RegisterModuleParams contains parameters for registering a module binding
type RegisterModuleParams struct {
	Key          string
	Address      common.Address
	AllowReplace bool
	Signature    []byte
}

// RegisterModuleResult reports the binding that was written
type RegisterModuleResult struct {
	Key        string
	OldAddress common.Address
	NewAddress common.Address
	Replaced   bool
}

// RegisterModule is the use case for the immediate-path binding mutation.
type RegisterModule struct {
	cfg      *config.RuntimeConfig
	store    RegistryStore
	clock    Clock
	verifier SignatureVerifier
	sink     EventSink
}

// NewRegisterModule creates a new RegisterModule use case
func NewRegisterModule(cfg *config.RuntimeConfig, store RegistryStore, clock Clock, verifier SignatureVerifier, sink EventSink) *RegisterModule {
	return &RegisterModule{
		cfg:      cfg,
		store:    store,
		clock:    clock,
		verifier: verifier,
		sink:     sink,
	}
}

// Run executes the register module use case
func (uc *RegisterModule) Run(ctx context.Context, params RegisterModuleParams) (*RegisterModuleResult, error) {
	var (
		result RegisterModuleResult
		events []domain.Event
	)

	err := uc.store.Update(ctx, func(rec *models.RegistryRecord) error {
		caller, err := authorizeCaller(rec, uc.cfg.Caller, uc.verifier, "register", params.Key, params.Address, params.Signature)
		if err != nil {
			return err
		}
		if !rec.IsOwner(caller) {
			return fmt.Errorf("%w: register requires the registry owner", domain.ErrUnauthorized)
		}
		if rec.Paused {
			return domain.ErrPaused
		}
		if params.Key == "" {
			return domain.ErrEmptyKey
		}
		if params.Address == (common.Address{}) {
			return fmt.Errorf("%w: cannot bind %q to the zero address", domain.ErrZeroAddress, params.Key)
		}

		old, exists := rec.Modules[params.Key]
		if exists && !params.AllowReplace {
			return fmt.Errorf("%w: %q is bound to %s", domain.ErrAlreadyRegistered, params.Key, old.Hex())
		}

		rec.Modules[params.Key] = params.Address
		rec.AppendHistory(params.Key, old, params.Address, caller, uc.clock.Now())

		result = RegisterModuleResult{
			Key:        params.Key,
			OldAddress: old,
			NewAddress: params.Address,
			Replaced:   exists,
		}
		events = append(events, domain.ModuleRegisteredEvent{
			Key:        params.Key,
			OldAddress: old,
			NewAddress: params.Address,
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
