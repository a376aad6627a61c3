package models_test

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modreg-org/modreg-cli/internal/domain"
	"github.com/modreg-org/modreg-cli/internal/domain/models"
)

var (
	owner    = common.HexToAddress("0x1000000000000000000000000000000000000001")
	upgrader = common.HexToAddress("0x2000000000000000000000000000000000000002")
	guardian = common.HexToAddress("0x3000000000000000000000000000000000000003")
	outsider = common.HexToAddress("0x4000000000000000000000000000000000000004")
)

func newRecord(t *testing.T) *models.RegistryRecord {
	t.Helper()
	rec, err := models.NewRegistryRecord(owner, upgrader, guardian, 24*time.Hour)
	require.NoError(t, err)
	return rec
}

func TestNewRegistryRecord(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		rec := newRecord(t)
		assert.Equal(t, uint64(models.CurrentStorageVersion), rec.StorageVersion)
		assert.False(t, rec.Paused)
		assert.NotNil(t, rec.Modules)
		assert.NotNil(t, rec.PendingUpgrades)
		assert.NotNil(t, rec.History)
		assert.NotNil(t, rec.Nonces)
	})

	t.Run("zero admin rejected", func(t *testing.T) {
		_, err := models.NewRegistryRecord(common.Address{}, upgrader, guardian, time.Hour)
		assert.ErrorIs(t, err, domain.ErrLayoutInvalid)
	})

	t.Run("delay bounds", func(t *testing.T) {
		_, err := models.NewRegistryRecord(owner, upgrader, guardian, 0)
		assert.ErrorIs(t, err, domain.ErrLayoutInvalid)

		_, err = models.NewRegistryRecord(owner, upgrader, guardian, models.MaxMinDelay+time.Second)
		assert.ErrorIs(t, err, domain.ErrLayoutInvalid)

		_, err = models.NewRegistryRecord(owner, upgrader, guardian, models.MaxMinDelay)
		assert.NoError(t, err)
	})
}

func TestAuthorityTiers(t *testing.T) {
	rec := newRecord(t)

	t.Run("owner holds every tier", func(t *testing.T) {
		assert.True(t, rec.IsOwner(owner))
		assert.True(t, rec.CanUpgrade(owner))
		assert.True(t, rec.CanEmergency(owner))
	})

	t.Run("upgrade admin is narrower", func(t *testing.T) {
		assert.False(t, rec.IsOwner(upgrader))
		assert.True(t, rec.CanUpgrade(upgrader))
		assert.False(t, rec.CanEmergency(upgrader))
	})

	t.Run("emergency admin is narrower", func(t *testing.T) {
		assert.False(t, rec.IsOwner(guardian))
		assert.False(t, rec.CanUpgrade(guardian))
		assert.True(t, rec.CanEmergency(guardian))
	})

	t.Run("outsider holds nothing", func(t *testing.T) {
		assert.False(t, rec.IsOwner(outsider))
		assert.False(t, rec.CanUpgrade(outsider))
		assert.False(t, rec.CanEmergency(outsider))
	})

	t.Run("zero identity never matches a vacant role", func(t *testing.T) {
		vacant, err := models.NewRegistryRecord(owner, common.Address{}, common.Address{}, time.Hour)
		require.NoError(t, err)
		assert.False(t, vacant.CanUpgrade(common.Address{}))
		assert.False(t, vacant.CanEmergency(common.Address{}))
	})
}

func TestClone(t *testing.T) {
	rec := newRecord(t)
	rec.Modules["ledger"] = addr(1)
	rec.PendingUpgrades["ledger"] = models.PendingUpgrade{NewAddress: addr(2)}
	rec.AppendHistory("ledger", common.Address{}, addr(1), owner, time.Now())
	rec.BumpNonce(owner)

	clone := rec.Clone()
	clone.Modules["ledger"] = addr(9)
	clone.PendingUpgrades["router"] = models.PendingUpgrade{NewAddress: addr(3)}
	clone.History["ledger"].Append(models.HistoryEntry{NewAddress: addr(9)})
	clone.BumpNonce(owner)

	// Mutating the clone must never reach the original.
	assert.Equal(t, addr(1), rec.Modules["ledger"])
	assert.Len(t, rec.PendingUpgrades, 1)
	assert.Equal(t, 1, rec.History["ledger"].Count())
	assert.Equal(t, uint64(1), rec.NonceOf(owner))
	assert.Equal(t, uint64(2), clone.NonceOf(owner))
}

func TestValidateLayout(t *testing.T) {
	rec := newRecord(t)
	require.NoError(t, rec.ValidateLayout())

	rec.Modules = nil
	assert.ErrorIs(t, rec.ValidateLayout(), domain.ErrLayoutInvalid)
}

func TestNonces(t *testing.T) {
	rec := newRecord(t)
	assert.Equal(t, uint64(0), rec.NonceOf(owner))
	rec.BumpNonce(owner)
	rec.BumpNonce(owner)
	assert.Equal(t, uint64(2), rec.NonceOf(owner))
	assert.Equal(t, uint64(0), rec.NonceOf(outsider))
}
