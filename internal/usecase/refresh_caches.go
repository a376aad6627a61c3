package usecase

import (
	"context"

	"github.com/modreg-org/modreg-cli/internal/config"
	"github.com/modreg-org/modreg-cli/internal/domain"
)

// RefreshCachesParams contains parameters for a cache refresh sweep
type RefreshCachesParams struct {
	// Targets is the subset of manifest targets to refresh; empty means all
	Targets []string
}

// RefreshCaches is the cache maintenance orchestrator: it asks each
// dependent component to refresh its locally cached module addresses,
// capturing per-target failure so one broken dependent never blocks the
// rest of the sweep. It deliberately covers only module-address caches;
// business-data caches are a different class and must not be routed
// through this authority.
type RefreshCaches struct {
	cfg       *config.RuntimeConfig
	directory TargetDirectory
	sink      EventSink
}

// NewRefreshCaches creates a new RefreshCaches use case
func NewRefreshCaches(cfg *config.RuntimeConfig, directory TargetDirectory, sink EventSink) *RefreshCaches {
	return &RefreshCaches{cfg: cfg, directory: directory, sink: sink}
}

// Run executes the refresh sweep. The sweep itself never fails because a
// target failed; only a missing target name or an unreadable manifest is an
// error.
func (uc *RefreshCaches) Run(ctx context.Context, params RefreshCachesParams) (*RefreshReport, error) {
	targets, err := uc.directory.Targets(ctx, params.Targets)
	if err != nil {
		return nil, err
	}

	report := &RefreshReport{}
	for _, target := range targets {
		attempt := RefreshAttempt{Target: target.Name(), OK: true}
		if err := target.RefreshLocalCache(ctx); err != nil {
			attempt.OK = false
			attempt.Reason = err.Error()
			report.Failed++
		} else {
			report.Succeeded++
		}
		report.Attempts = append(report.Attempts, attempt)

		uc.sink.Emit(ctx, domain.RefreshAttemptedEvent{
			Target: attempt.Target,
			OK:     attempt.OK,
			Reason: attempt.Reason,
		})
	}

	return report, nil
}
