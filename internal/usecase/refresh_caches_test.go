package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modreg-org/modreg-cli/internal/domain"
	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// fakeTarget counts refresh calls and optionally fails them.
type fakeTarget struct {
	name      string
	err       error
	refreshed int
}

func (t *fakeTarget) Name() string { return t.name }

func (t *fakeTarget) RefreshLocalCache(context.Context) error {
	t.refreshed++
	return t.err
}

// fakeDirectory serves a fixed target list.
type fakeDirectory struct {
	targets []*fakeTarget
}

func (d *fakeDirectory) Targets(_ context.Context, names []string) ([]usecase.CacheTarget, error) {
	if len(names) == 0 {
		out := make([]usecase.CacheTarget, len(d.targets))
		for i, t := range d.targets {
			out[i] = t
		}
		return out, nil
	}

	var out []usecase.CacheTarget
	for _, name := range names {
		found := false
		for _, t := range d.targets {
			if t.name == name {
				out = append(out, t)
				found = true
				break
			}
		}
		if !found {
			return nil, domain.ErrUnknownTarget
		}
	}
	return out, nil
}

func TestRefreshCaches(t *testing.T) {
	ctx := context.Background()

	t.Run("partial failure never aborts the sweep", func(t *testing.T) {
		f := newFixture(t, owner)
		a := &fakeTarget{name: "billing-api"}
		b := &fakeTarget{name: "settlement-worker", err: errors.New("connection refused")}
		c := &fakeTarget{name: "risk-engine"}
		dir := &fakeDirectory{targets: []*fakeTarget{a, b, c}}

		uc := usecase.NewRefreshCaches(f.cfg, dir, f.sink)
		report, err := uc.Run(ctx, usecase.RefreshCachesParams{})
		require.NoError(t, err)

		assert.Equal(t, 2, report.Succeeded)
		assert.Equal(t, 1, report.Failed)
		require.Len(t, report.Attempts, 3)

		// Every target was attempted, the failing one exactly once too.
		assert.Equal(t, 1, a.refreshed)
		assert.Equal(t, 1, b.refreshed)
		assert.Equal(t, 1, c.refreshed)

		// One RefreshAttempted event per target, in sweep order.
		require.Len(t, f.sink.events, 3)
		wantOK := []bool{true, false, true}
		for i, e := range f.sink.events {
			attempt, ok := e.(domain.RefreshAttemptedEvent)
			require.True(t, ok)
			assert.Equal(t, wantOK[i], attempt.OK)
		}
		failed := f.sink.events[1].(domain.RefreshAttemptedEvent)
		assert.Equal(t, "settlement-worker", failed.Target)
		assert.Contains(t, failed.Reason, "connection refused")
	})

	t.Run("subset by name", func(t *testing.T) {
		f := newFixture(t, owner)
		a := &fakeTarget{name: "billing-api"}
		b := &fakeTarget{name: "risk-engine"}
		dir := &fakeDirectory{targets: []*fakeTarget{a, b}}

		uc := usecase.NewRefreshCaches(f.cfg, dir, f.sink)
		report, err := uc.Run(ctx, usecase.RefreshCachesParams{Targets: []string{"risk-engine"}})
		require.NoError(t, err)

		assert.Equal(t, 1, report.Succeeded)
		assert.Equal(t, 0, a.refreshed)
		assert.Equal(t, 1, b.refreshed)
	})

	t.Run("unknown target name fails the call", func(t *testing.T) {
		f := newFixture(t, owner)
		dir := &fakeDirectory{}

		uc := usecase.NewRefreshCaches(f.cfg, dir, f.sink)
		_, err := uc.Run(ctx, usecase.RefreshCachesParams{Targets: []string{"ghost"}})
		assert.ErrorIs(t, err, domain.ErrUnknownTarget)
		assert.Empty(t, f.sink.events)
	})
}
