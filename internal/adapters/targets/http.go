package targets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// defaultRefreshTimeout bounds one refresh call when the manifest doesn't.
const defaultRefreshTimeout = 10 * time.Second

// OrchestratorHeader carries the orchestrator identity on refresh calls.
// Dependents verify it against the orchestrator key resolved through the
// registry before touching their cache.
const OrchestratorHeader = "X-Modreg-Orchestrator"

// httpTarget is one dependent reachable over its refresh endpoint.
type httpTarget struct {
	spec         TargetSpec
	client       *http.Client
	orchestrator common.Address
}

func newHTTPTarget(spec TargetSpec, client *http.Client, orchestrator common.Address) *httpTarget {
	return &httpTarget{spec: spec, client: client, orchestrator: orchestrator}
}

// Name returns the manifest name of the target.
func (t *httpTarget) Name() string {
	return t.spec.Name
}

// RefreshLocalCache asks the dependent to re-resolve its cached module
// addresses. A non-2xx status is a failure for this target only; the
// orchestrator keeps sweeping.
func (t *httpTarget) RefreshLocalCache(ctx context.Context) error {
	timeout := t.spec.Timeout
	if timeout <= 0 {
		timeout = defaultRefreshTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.spec.URL, nil)
	if err != nil {
		return fmt.Errorf("bad refresh url: %w", err)
	}
	req.Header.Set(OrchestratorHeader, t.orchestrator.Hex())

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("refresh returned %s: %s", resp.Status, string(body))
	}
	return nil
}
