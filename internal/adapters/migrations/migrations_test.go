package migrations_test

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modreg-org/modreg-cli/internal/adapters/migrations"
	"github.com/modreg-org/modreg-cli/internal/domain"
	"github.com/modreg-org/modreg-cli/internal/domain/models"
)

func TestRegistry(t *testing.T) {
	reg := migrations.NewRegistry()

	t.Run("lookup", func(t *testing.T) {
		m, err := reg.Lookup("backfill-nonce-table")
		require.NoError(t, err)
		assert.Equal(t, "backfill-nonce-table", m.Name())

		_, err = reg.Lookup("ghost")
		assert.ErrorIs(t, err, domain.ErrUnknownMigrator)
	})

	t.Run("names lists all built-ins", func(t *testing.T) {
		names := reg.Names()
		assert.Contains(t, names, "backfill-nonce-table")
		assert.Contains(t, names, "backfill-history-rings")
	})
}

func TestBackfillMigrators(t *testing.T) {
	ctx := context.Background()
	admin := common.HexToAddress("0x1000000000000000000000000000000000000001")
	reg := migrations.NewRegistry()

	t.Run("backfill-nonce-table", func(t *testing.T) {
		rec, err := models.NewRegistryRecord(admin, common.Address{}, common.Address{}, time.Hour)
		require.NoError(t, err)
		rec.Nonces = nil

		m, err := reg.Lookup("backfill-nonce-table")
		require.NoError(t, err)
		require.NoError(t, m.Apply(ctx, rec))
		assert.NotNil(t, rec.Nonces)
	})

	t.Run("backfill-history-rings", func(t *testing.T) {
		rec, err := models.NewRegistryRecord(admin, common.Address{}, common.Address{}, time.Hour)
		require.NoError(t, err)
		rec.Modules["ledger"] = common.HexToAddress("0x00000000000000000000000000000000000000A1")

		m, err := reg.Lookup("backfill-history-rings")
		require.NoError(t, err)
		require.NoError(t, m.Apply(ctx, rec))

		require.NotNil(t, rec.History["ledger"])
		assert.Equal(t, 0, rec.History["ledger"].Count())
	})
}
