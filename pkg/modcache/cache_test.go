package modcache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	orchestrator = common.HexToAddress("0x00000000000000000000000000000000000000CE")
	ledgerV1     = common.HexToAddress("0x00000000000000000000000000000000000000A1")
	ledgerV2     = common.HexToAddress("0x00000000000000000000000000000000000000B2")
)

// scriptedResolver serves a mutable key table and counts resolutions.
type scriptedResolver struct {
	table map[string]common.Address
	calls map[string]int
	err   error
}

func newScriptedResolver() *scriptedResolver {
	return &scriptedResolver{
		table: map[string]common.Address{
			DefaultOrchestratorKey: orchestrator,
			"ledger":               ledgerV1,
		},
		calls: make(map[string]int),
	}
}

func (r *scriptedResolver) resolve(_ context.Context, key string) (common.Address, error) {
	r.calls[key]++
	if r.err != nil {
		return common.Address{}, r.err
	}
	addr, ok := r.table[key]
	if !ok {
		return common.Address{}, errors.New("not registered")
	}
	return addr, nil
}

func newTestCache(r *scriptedResolver, ttl time.Duration) (*Cache, *time.Time) {
	c := NewCache(r.resolve, ttl)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestCacheGet(t *testing.T) {
	ctx := context.Background()

	t.Run("serves fresh entries without resolving", func(t *testing.T) {
		r := newScriptedResolver()
		c, now := newTestCache(r, time.Minute)

		addr, err := c.Get(ctx, "ledger")
		require.NoError(t, err)
		assert.Equal(t, ledgerV1, addr)
		assert.Equal(t, 1, r.calls["ledger"])

		*now = now.Add(30 * time.Second)
		addr, err = c.Get(ctx, "ledger")
		require.NoError(t, err)
		assert.Equal(t, ledgerV1, addr)
		assert.Equal(t, 1, r.calls["ledger"], "fresh entry must not re-resolve")
	})

	t.Run("re-resolves inline on TTL expiry", func(t *testing.T) {
		r := newScriptedResolver()
		c, now := newTestCache(r, time.Minute)

		_, err := c.Get(ctx, "ledger")
		require.NoError(t, err)

		r.table["ledger"] = ledgerV2
		*now = now.Add(time.Minute)

		addr, err := c.Get(ctx, "ledger")
		require.NoError(t, err)
		assert.Equal(t, ledgerV2, addr)
		assert.Equal(t, 2, r.calls["ledger"])
	})

	t.Run("stale beats unavailable", func(t *testing.T) {
		r := newScriptedResolver()
		c, now := newTestCache(r, time.Minute)

		_, err := c.Get(ctx, "ledger")
		require.NoError(t, err)

		r.err = errors.New("registry unreachable")
		*now = now.Add(2 * time.Minute)

		addr, err := c.Get(ctx, "ledger")
		require.NoError(t, err)
		assert.Equal(t, ledgerV1, addr)
	})

	t.Run("never-resolved key fails", func(t *testing.T) {
		r := newScriptedResolver()
		c, _ := newTestCache(r, time.Minute)

		_, err := c.Get(ctx, "ghost")
		assert.Error(t, err)
		assert.Equal(t, 0, c.Len())
	})
}

func TestRefreshLocalCache(t *testing.T) {
	ctx := context.Background()

	t.Run("orchestrator only", func(t *testing.T) {
		r := newScriptedResolver()
		c, _ := newTestCache(r, time.Minute)

		_, err := c.Get(ctx, "ledger")
		require.NoError(t, err)

		stranger := common.HexToAddress("0x0000000000000000000000000000000000000BAD")
		err = c.RefreshLocalCache(ctx, stranger)
		assert.ErrorIs(t, err, ErrNotOrchestrator)

		assert.NoError(t, c.RefreshLocalCache(ctx, orchestrator))
	})

	t.Run("forces re-resolution of tracked keys", func(t *testing.T) {
		r := newScriptedResolver()
		c, _ := newTestCache(r, time.Hour)

		_, err := c.Get(ctx, "ledger")
		require.NoError(t, err)

		// Rebind upstream; the TTL alone would keep serving the old value.
		r.table["ledger"] = ledgerV2
		require.NoError(t, c.RefreshLocalCache(ctx, orchestrator))

		addr, err := c.Get(ctx, "ledger")
		require.NoError(t, err)
		assert.Equal(t, ledgerV2, addr)
	})

	t.Run("per-key failures reported but sweep continues", func(t *testing.T) {
		r := newScriptedResolver()
		c, _ := newTestCache(r, time.Hour)

		_, err := c.Get(ctx, "ledger")
		require.NoError(t, err)

		delete(r.table, "ledger")
		err = c.RefreshLocalCache(ctx, orchestrator)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ledger")

		// The stale value survives a failed refresh.
		addr, err := c.Get(ctx, "ledger")
		require.NoError(t, err)
		assert.Equal(t, ledgerV1, addr)
	})
}
