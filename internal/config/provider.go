package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Provider creates RuntimeConfig for Wire dependency injection.
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	mf, err := LoadModregFile(projectRoot)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load project config: %w", err)
	}

	dataDir := ".modreg"
	if mf != nil && mf.Registry.Dir != "" {
		dataDir = mf.Registry.Dir
	}
	if override := v.GetString("registry_dir"); override != "" {
		dataDir = override
	}
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(projectRoot, dataDir)
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        dataDir,
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Debug:          v.GetBool("debug"),
		Timeout:        v.GetDuration("timeout"),
		ModregConfig:   mf,
	}

	if caller := v.GetString("as"); caller != "" {
		if !common.IsHexAddress(caller) {
			return nil, fmt.Errorf("invalid caller identity %q", caller)
		}
		cfg.Caller = common.HexToAddress(caller)
	}

	if mf != nil && mf.Orchestrator != "" {
		if !common.IsHexAddress(mf.Orchestrator) {
			return nil, fmt.Errorf("invalid orchestrator identity %q in %s", mf.Orchestrator, ModregFileName)
		}
		cfg.Orchestrator = common.HexToAddress(mf.Orchestrator)
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find modreg.toml.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ModregFileName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s not found in current directory or any parent", ModregFileName)
		}
		dir = parent
	}
}

// SetupViper initializes viper with env bindings and the project .env file.
func SetupViper(projectRoot string) *viper.Viper {
	// .env is optional; missing file is fine
	_ = godotenv.Load(filepath.Join(projectRoot, ".env"))

	v := viper.New()
	v.SetEnvPrefix("MODREG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.Set("project_root", projectRoot)

	return v
}

// BindGlobalFlags copies the cobra global flags that were set into viper.
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		v.Set(key, f.Value.String())
	})
	cmd.InheritedFlags().Visit(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		v.Set(key, f.Value.String())
	})
}
