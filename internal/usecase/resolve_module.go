package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sahilm/fuzzy"

	"github.com/modreg-org/modreg-cli/internal/config"
	"github.com/modreg-org/modreg-cli/internal/domain"
)

// maxSuggestions caps the "did you mean" list on a failed resolution.
const maxSuggestions = 3

// ResolveModuleParams contains parameters for resolving a key
type ResolveModuleParams struct {
	Key string

	// OrFail makes an unknown key an error instead of an empty result.
	// Internal collaborators are expected to set this: a silent empty
	// address propagating into business logic is the failure mode the
	// registry exists to prevent.
	OrFail bool
}

// ResolveModuleResult is the outcome of a resolution
type ResolveModuleResult struct {
	Key     string
	Address common.Address
	Found   bool
}

// ResolveModule is the use case for key→address lookups.
type ResolveModule struct {
	cfg   *config.RuntimeConfig
	store RegistryStore
}

// NewResolveModule creates a new ResolveModule use case
func NewResolveModule(cfg *config.RuntimeConfig, store RegistryStore) *ResolveModule {
	return &ResolveModule{cfg: cfg, store: store}
}

// Run executes the resolution. Reads are unrestricted; only mutation is gated.
func (uc *ResolveModule) Run(ctx context.Context, params ResolveModuleParams) (*ResolveModuleResult, error) {
	rec, err := uc.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	addr, found := rec.Modules[params.Key]
	if !found && params.OrFail {
		return nil, domain.ModuleNotRegisteredErr{
			Key:         params.Key,
			Suggestions: suggestKeys(params.Key, rec.Keys()),
		}
	}

	return &ResolveModuleResult{
		Key:     params.Key,
		Address: addr,
		Found:   found,
	}, nil
}

// IsRegistered reports whether a key is currently bound.
func (uc *ResolveModule) IsRegistered(ctx context.Context, key string) (bool, error) {
	rec, err := uc.store.Get(ctx)
	if err != nil {
		return false, err
	}
	_, found := rec.Modules[key]
	return found, nil
}

// suggestKeys returns the closest registered keys to a missing one.
func suggestKeys(key string, keys []string) []string {
	matches := fuzzy.Find(key, keys)
	var out []string
	for i := 0; i < len(matches) && i < maxSuggestions; i++ {
		out = append(out, matches[i].Str)
	}
	return out
}
