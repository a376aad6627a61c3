package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ModregFileName is the project file that marks a registry project root.
const ModregFileName = "modreg.toml"

// ModregFile is the parsed modreg.toml project configuration.
type ModregFile struct {
	// Orchestrator is the hex identity of the cache maintenance orchestrator
	Orchestrator string `toml:"orchestrator"`

	Registry RegistrySection `toml:"registry"`
	Targets  TargetsSection  `toml:"targets"`
}

// RegistrySection configures where the registry record is stored.
type RegistrySection struct {
	// Dir is the data directory, relative to the project root
	Dir string `toml:"dir"`
}

// TargetsSection configures the cache-refresh target manifest.
type TargetsSection struct {
	// Manifest is the path to targets.yaml, relative to the project root
	Manifest string `toml:"manifest"`
}

// LoadModregFile parses modreg.toml from the project root.
func LoadModregFile(projectRoot string) (*ModregFile, error) {
	path := filepath.Join(projectRoot, ModregFileName)

	var mf ModregFile
	if _, err := toml.DecodeFile(path, &mf); err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to parse %s: %w", ModregFileName, err)
	}

	if mf.Registry.Dir == "" {
		mf.Registry.Dir = ".modreg"
	}
	if mf.Targets.Manifest == "" {
		mf.Targets.Manifest = filepath.Join(mf.Registry.Dir, "targets.yaml")
	}

	return &mf, nil
}
