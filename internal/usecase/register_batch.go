package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"

	"github.com/modreg-org/modreg-cli/internal/config"
	"github.com/modreg-org/modreg-cli/internal/domain"
	"github.com/modreg-org/modreg-cli/internal/domain/models"
)

// RegisterBatchParams contains parameters for a batch registration
type RegisterBatchParams struct {
	Keys      []string
	Addresses []common.Address
	Signature []byte
}

// RegisterBatchResult reports how many bindings actually changed, letting
// callers distinguish no-ops from silent skips.
type RegisterBatchResult struct {
	Changed int
	Skipped []string
}

// RegisterBatch is the use case for registering several bindings atomically.
type RegisterBatch struct {
	cfg      *config.RuntimeConfig
	store    RegistryStore
	clock    Clock
	verifier SignatureVerifier
	sink     EventSink
}

// NewRegisterBatch creates a new RegisterBatch use case
func NewRegisterBatch(cfg *config.RuntimeConfig, store RegistryStore, clock Clock, verifier SignatureVerifier, sink EventSink) *RegisterBatch {
	return &RegisterBatch{
		cfg:      cfg,
		store:    store,
		clock:    clock,
		verifier: verifier,
		sink:     sink,
	}
}

// Run executes the batch registration. The whole batch is one atomic unit:
// an invalid entry fails everything, while an entry that would rebind a key
// to the address it already has is skipped and not counted as a change.
func (uc *RegisterBatch) Run(ctx context.Context, params RegisterBatchParams) (*RegisterBatchResult, error) {
	if len(params.Keys) != len(params.Addresses) {
		return nil, fmt.Errorf("%w: %d keys, %d addresses",
			domain.ErrLengthMismatch, len(params.Keys), len(params.Addresses))
	}
	if len(params.Keys) > models.MaxBatchSize {
		return nil, domain.BatchTooLargeErr{Size: len(params.Keys), Max: models.MaxBatchSize}
	}
	if dupes := lo.FindDuplicates(params.Keys); len(dupes) > 0 {
		return nil, fmt.Errorf("%w: duplicate keys in batch: %v", domain.ErrAlreadyRegistered, dupes)
	}

	var (
		result RegisterBatchResult
		events []domain.Event
	)

	batchDigestKey := fmt.Sprintf("batch:%d", len(params.Keys))

	err := uc.store.Update(ctx, func(rec *models.RegistryRecord) error {
		caller, err := authorizeCaller(rec, uc.cfg.Caller, uc.verifier, "registerBatch", batchDigestKey, common.Address{}, params.Signature)
		if err != nil {
			return err
		}
		if !rec.IsOwner(caller) {
			return fmt.Errorf("%w: registerBatch requires the registry owner", domain.ErrUnauthorized)
		}
		if rec.Paused {
			return domain.ErrPaused
		}

		result = RegisterBatchResult{}
		events = events[:0]
		now := uc.clock.Now()

		for i, key := range params.Keys {
			addr := params.Addresses[i]
			if key == "" {
				return fmt.Errorf("%w: entry %d", domain.ErrEmptyKey, i)
			}
			if addr == (common.Address{}) {
				return fmt.Errorf("%w: entry %d (%q)", domain.ErrZeroAddress, i, key)
			}

			old, exists := rec.Modules[key]
			if exists {
				if old == addr {
					result.Skipped = append(result.Skipped, key)
					continue
				}
				return fmt.Errorf("%w: %q is bound to %s", domain.ErrAlreadyRegistered, key, old.Hex())
			}

			rec.Modules[key] = addr
			rec.AppendHistory(key, old, addr, caller, now)
			result.Changed++
			events = append(events, domain.ModuleRegisteredEvent{
				Key:        key,
				OldAddress: old,
				NewAddress: addr,
				Executor:   caller,
			})
		}
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
