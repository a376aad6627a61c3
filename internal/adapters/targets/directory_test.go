package targets_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modreg-org/modreg-cli/internal/adapters/targets"
	"github.com/modreg-org/modreg-cli/internal/config"
	"github.com/modreg-org/modreg-cli/internal/domain"
)

func writeManifest(t *testing.T, dir, content string) *config.RuntimeConfig {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "targets.yaml"), []byte(content), 0644))
	return &config.RuntimeConfig{ProjectRoot: dir, DataDir: dir}
}

func TestDirectory(t *testing.T) {
	ctx := context.Background()

	t.Run("missing manifest means no targets", func(t *testing.T) {
		dir := targets.NewDirectory(&config.RuntimeConfig{DataDir: t.TempDir()})
		got, err := dir.Targets(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("resolves declared targets", func(t *testing.T) {
		cfg := writeManifest(t, t.TempDir(), `
targets:
  - name: billing-api
    url: http://billing.internal/refresh
  - name: risk-engine
    url: http://risk.internal/refresh
    timeout: 3s
`)
		dir := targets.NewDirectory(cfg)

		all, err := dir.Targets(ctx, nil)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "billing-api", all[0].Name())

		subset, err := dir.Targets(ctx, []string{"risk-engine"})
		require.NoError(t, err)
		require.Len(t, subset, 1)
		assert.Equal(t, "risk-engine", subset[0].Name())
	})

	t.Run("undeclared target rejected", func(t *testing.T) {
		cfg := writeManifest(t, t.TempDir(), "targets:\n  - name: billing-api\n    url: http://billing.internal/refresh\n")
		dir := targets.NewDirectory(cfg)

		_, err := dir.Targets(ctx, []string{"ghost"})
		assert.ErrorIs(t, err, domain.ErrUnknownTarget)
	})

	t.Run("invalid manifest entries rejected", func(t *testing.T) {
		cfg := writeManifest(t, t.TempDir(), "targets:\n  - url: http://nameless.internal/refresh\n")
		dir := targets.NewDirectory(cfg)

		_, err := dir.Targets(ctx, nil)
		assert.Error(t, err)
	})
}

func TestHTTPTargetRefresh(t *testing.T) {
	ctx := context.Background()
	orchestrator := common.HexToAddress("0x00000000000000000000000000000000000000CE")

	manifestFor := func(url string) string {
		return "targets:\n  - name: dependent\n    url: " + url + "\n"
	}

	t.Run("posts with orchestrator identity", func(t *testing.T) {
		var gotMethod, gotHeader string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotHeader = r.Header.Get(targets.OrchestratorHeader)
		}))
		defer srv.Close()

		cfg := writeManifest(t, t.TempDir(), manifestFor(srv.URL))
		cfg.Orchestrator = orchestrator
		dir := targets.NewDirectory(cfg)

		list, err := dir.Targets(ctx, nil)
		require.NoError(t, err)
		require.Len(t, list, 1)

		require.NoError(t, list[0].RefreshLocalCache(ctx))
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, orchestrator.Hex(), gotHeader)
	})

	t.Run("non-2xx is a failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "cache locked", http.StatusConflict)
		}))
		defer srv.Close()

		cfg := writeManifest(t, t.TempDir(), manifestFor(srv.URL))
		dir := targets.NewDirectory(cfg)

		list, err := dir.Targets(ctx, nil)
		require.NoError(t, err)
		require.Len(t, list, 1)

		err = list[0].RefreshLocalCache(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cache locked")
	})
}
