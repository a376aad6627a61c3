package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// RuntimeConfig carries the resolved per-invocation configuration. It is
// built once by the Provider and injected into every use case.
type RuntimeConfig struct {
	// ProjectRoot is the directory containing modreg.toml
	ProjectRoot string

	// DataDir is where the registry record and targets manifest live
	DataDir string

	// Caller is the identity mutating operations are attributed to
	Caller common.Address

	// Orchestrator is the identity dependents accept cache refreshes from
	Orchestrator common.Address

	// NonInteractive disables confirmation prompts
	NonInteractive bool

	// JSON switches renderers to machine-readable output
	JSON bool

	// Debug enables debug logging
	Debug bool

	// Timeout bounds a single command invocation
	Timeout time.Duration

	// ModregConfig is the parsed project file, nil outside a project
	ModregConfig *ModregFile
}
