package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modreg-org/modreg-cli/internal/domain"
	"github.com/modreg-org/modreg-cli/internal/usecase"
)

func TestRegisterModule(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		f := newFixture(t, owner)
		f.register(t, "ledger", addr(1))

		resolve := usecase.NewResolveModule(f.cfg, f.store)
		res, err := resolve.Run(ctx, usecase.ResolveModuleParams{Key: "ledger", OrFail: true})
		require.NoError(t, err)
		assert.Equal(t, addr(1), res.Address)

		registered, err := resolve.IsRegistered(ctx, "ledger")
		require.NoError(t, err)
		assert.True(t, registered)

		rec := f.record(t)
		assert.Equal(t, 1, rec.History["ledger"].Count())
		require.Len(t, f.sink.events, 1)
	})

	t.Run("replace requires the flag", func(t *testing.T) {
		f := newFixture(t, owner)
		f.register(t, "ledger", addr(1))

		uc := usecase.NewRegisterModule(f.cfg, f.store, f.clock, stubVerifier{}, f.sink)
		_, err := uc.Run(ctx, usecase.RegisterModuleParams{Key: "ledger", Address: addr(2)})
		assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)

		result, err := uc.Run(ctx, usecase.RegisterModuleParams{Key: "ledger", Address: addr(2), AllowReplace: true})
		require.NoError(t, err)
		assert.True(t, result.Replaced)
		assert.Equal(t, addr(1), result.OldAddress)
		assert.Equal(t, 2, f.record(t).History["ledger"].Count())
	})

	t.Run("zero address rejected", func(t *testing.T) {
		f := newFixture(t, owner)
		uc := usecase.NewRegisterModule(f.cfg, f.store, f.clock, stubVerifier{}, f.sink)
		_, err := uc.Run(ctx, usecase.RegisterModuleParams{Key: "ledger", Address: common.Address{}})
		assert.ErrorIs(t, err, domain.ErrZeroAddress)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		f := newFixture(t, owner)
		uc := usecase.NewRegisterModule(f.cfg, f.store, f.clock, stubVerifier{}, f.sink)
		_, err := uc.Run(ctx, usecase.RegisterModuleParams{Key: "", Address: addr(1)})
		assert.ErrorIs(t, err, domain.ErrEmptyKey)
	})

	t.Run("owner only", func(t *testing.T) {
		f := newFixture(t, owner)
		for _, caller := range []common.Address{upgrader, guardian, outsider} {
			uc := usecase.NewRegisterModule(f.as(caller), f.store, f.clock, stubVerifier{}, f.sink)
			_, err := uc.Run(ctx, usecase.RegisterModuleParams{Key: "ledger", Address: addr(1)})
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		}
	})

	t.Run("failed mutation leaves no trace", func(t *testing.T) {
		f := newFixture(t, owner)
		f.register(t, "ledger", addr(1))
		before := f.record(t)

		uc := usecase.NewRegisterModule(f.cfg, f.store, f.clock, stubVerifier{}, f.sink)
		_, err := uc.Run(ctx, usecase.RegisterModuleParams{Key: "ledger", Address: addr(2)})
		require.Error(t, err)

		after := f.record(t)
		assert.Equal(t, before.Modules, after.Modules)
		assert.Equal(t, before.History["ledger"].Count(), after.History["ledger"].Count())
		assert.Len(t, f.sink.events, 1) // only the original registration
	})
}

func TestRegisterBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("atomic happy path", func(t *testing.T) {
		f := newFixture(t, owner)
		uc := usecase.NewRegisterBatch(f.cfg, f.store, f.clock, stubVerifier{}, f.sink)

		result, err := uc.Run(ctx, usecase.RegisterBatchParams{
			Keys:      []string{"ledger", "router", "vault"},
			Addresses: []common.Address{addr(1), addr(2), addr(3)},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Changed)
		assert.Empty(t, result.Skipped)
		assert.Len(t, f.sink.events, 3)
	})

	t.Run("length mismatch", func(t *testing.T) {
		f := newFixture(t, owner)
		uc := usecase.NewRegisterBatch(f.cfg, f.store, f.clock, stubVerifier{}, f.sink)
		_, err := uc.Run(ctx, usecase.RegisterBatchParams{
			Keys:      []string{"ledger", "router"},
			Addresses: []common.Address{addr(1)},
		})
		assert.ErrorIs(t, err, domain.ErrLengthMismatch)
	})

	t.Run("batch too large", func(t *testing.T) {
		f := newFixture(t, owner)
		uc := usecase.NewRegisterBatch(f.cfg, f.store, f.clock, stubVerifier{}, f.sink)

		keys := make([]string, 51)
		addrs := make([]common.Address, 51)
		for i := range keys {
			keys[i] = fmt.Sprintf("key-%d", i)
			addrs[i] = addr(i + 1)
		}

		_, err := uc.Run(ctx, usecase.RegisterBatchParams{Keys: keys, Addresses: addrs})
		assert.ErrorIs(t, err, domain.ErrBatchTooLarge)

		var tooLarge domain.BatchTooLargeErr
		require.ErrorAs(t, err, &tooLarge)
		assert.Equal(t, 51, tooLarge.Size)
	})

	t.Run("duplicate keys rejected", func(t *testing.T) {
		f := newFixture(t, owner)
		uc := usecase.NewRegisterBatch(f.cfg, f.store, f.clock, stubVerifier{}, f.sink)
		_, err := uc.Run(ctx, usecase.RegisterBatchParams{
			Keys:      []string{"ledger", "ledger"},
			Addresses: []common.Address{addr(1), addr(2)},
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	})

	t.Run("identical binding skipped, conflict fails all", func(t *testing.T) {
		f := newFixture(t, owner)
		f.register(t, "ledger", addr(1))
		uc := usecase.NewRegisterBatch(f.cfg, f.store, f.clock, stubVerifier{}, f.sink)

		result, err := uc.Run(ctx, usecase.RegisterBatchParams{
			Keys:      []string{"ledger", "router"},
			Addresses: []common.Address{addr(1), addr(2)},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Changed)
		assert.Equal(t, []string{"ledger"}, result.Skipped)

		_, err = uc.Run(ctx, usecase.RegisterBatchParams{
			Keys:      []string{"vault", "ledger"},
			Addresses: []common.Address{addr(3), addr(9)},
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
		assert.False(t, f.record(t).Modules["vault"] == addr(3), "conflicting batch must not partially apply")
	})
}

func TestResolveModule(t *testing.T) {
	ctx := context.Background()

	t.Run("resolve never fails on unknown key", func(t *testing.T) {
		f := newFixture(t, owner)
		uc := usecase.NewResolveModule(f.cfg, f.store)

		res, err := uc.Run(ctx, usecase.ResolveModuleParams{Key: "ghost"})
		require.NoError(t, err)
		assert.False(t, res.Found)
		assert.Equal(t, common.Address{}, res.Address)
	})

	t.Run("or-fail suggests close keys", func(t *testing.T) {
		f := newFixture(t, owner)
		f.register(t, "ledger", addr(1))
		f.register(t, "router", addr(2))

		uc := usecase.NewResolveModule(f.cfg, f.store)
		_, err := uc.Run(ctx, usecase.ResolveModuleParams{Key: "ledgr", OrFail: true})
		require.ErrorIs(t, err, domain.ErrModuleNotRegistered)

		var notFound domain.ModuleNotRegisteredErr
		require.ErrorAs(t, err, &notFound)
		assert.Contains(t, notFound.Suggestions, "ledger")
	})
}
