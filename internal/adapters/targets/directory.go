package targets

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/modreg-org/modreg-cli/internal/config"
	"github.com/modreg-org/modreg-cli/internal/domain"
	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// Manifest is the parsed targets.yaml: the closed set of dependents whose
// module-address caches the orchestrator may refresh. Business-data caches
// have no place in this schema on purpose.
type Manifest struct {
	Targets []TargetSpec `yaml:"targets"`
}

// TargetSpec declares one refreshable dependent.
type TargetSpec struct {
	// Name is the stable identifier used in refresh commands and events
	Name string `yaml:"name"`

	// URL is the dependent's refresh endpoint
	URL string `yaml:"url"`

	// Timeout bounds one refresh call; zero means the directory default
	Timeout time.Duration `yaml:"timeout"`
}

// Directory resolves refresh targets from the project manifest.
type Directory struct {
	cfg    *config.RuntimeConfig
	client *http.Client
}

// NewDirectory creates a manifest-backed target directory
func NewDirectory(cfg *config.RuntimeConfig) *Directory {
	return &Directory{
		cfg:    cfg,
		client: &http.Client{},
	}
}

// manifestPath resolves the manifest location relative to the project root.
func (d *Directory) manifestPath() string {
	path := filepath.Join(d.cfg.DataDir, "targets.yaml")
	if d.cfg.ModregConfig != nil && d.cfg.ModregConfig.Targets.Manifest != "" {
		path = d.cfg.ModregConfig.Targets.Manifest
		if !filepath.IsAbs(path) {
			path = filepath.Join(d.cfg.ProjectRoot, path)
		}
	}
	return path
}

// Targets returns the named targets, or all declared targets for an empty
// name list. Naming a target missing from the manifest is an error; the
// orchestrator must never be pointed at undeclared components.
func (d *Directory) Targets(ctx context.Context, names []string) ([]usecase.CacheTarget, error) {
	manifest, err := d.loadManifest()
	if err != nil {
		return nil, err
	}

	byName := make(map[string]TargetSpec, len(manifest.Targets))
	for _, spec := range manifest.Targets {
		byName[spec.Name] = spec
	}

	specs := manifest.Targets
	if len(names) > 0 {
		specs = specs[:0:0]
		for _, name := range names {
			spec, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("%w: %q not in manifest", domain.ErrUnknownTarget, name)
			}
			specs = append(specs, spec)
		}
	}

	targets := make([]usecase.CacheTarget, 0, len(specs))
	for _, spec := range specs {
		targets = append(targets, newHTTPTarget(spec, d.client, d.cfg.Orchestrator))
	}
	return targets, nil
}

// loadManifest reads and validates targets.yaml.
func (d *Directory) loadManifest() (*Manifest, error) {
	data, err := os.ReadFile(d.manifestPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("failed to read targets manifest: %w", err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse targets manifest: %w", err)
	}

	for i, spec := range manifest.Targets {
		if spec.Name == "" {
			return nil, fmt.Errorf("targets manifest: entry %d has no name", i)
		}
		if spec.URL == "" {
			return nil, fmt.Errorf("targets manifest: target %q has no url", spec.Name)
		}
	}
	return &manifest, nil
}
