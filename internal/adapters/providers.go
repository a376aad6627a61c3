package adapters

import (
	"github.com/google/wire"

	"github.com/modreg-org/modreg-cli/internal/adapters/auth"
	"github.com/modreg-org/modreg-cli/internal/adapters/clock"
	"github.com/modreg-org/modreg-cli/internal/adapters/migrations"
	"github.com/modreg-org/modreg-cli/internal/adapters/registry"
	"github.com/modreg-org/modreg-cli/internal/adapters/targets"
	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// StorageSet provides the file-backed registry store.
var StorageSet = wire.NewSet(
	registry.NewStore,
	wire.Bind(new(usecase.RegistryStore), new(*registry.Store)),
)

// ClockSet provides the system clock.
var ClockSet = wire.NewSet(
	clock.NewSystem,
	wire.Bind(new(usecase.Clock), new(*clock.System)),
)

// AuthSet provides the signature verifier.
var AuthSet = wire.NewSet(
	auth.NewVerifier,
	wire.Bind(new(usecase.SignatureVerifier), new(*auth.Verifier)),
)

// MigrationSet provides the built-in migrator registry.
var MigrationSet = wire.NewSet(
	migrations.NewRegistry,
	wire.Bind(new(usecase.MigratorRegistry), new(*migrations.Registry)),
)

// TargetSet provides the manifest-backed refresh target directory.
var TargetSet = wire.NewSet(
	targets.NewDirectory,
	wire.Bind(new(usecase.TargetDirectory), new(*targets.Directory)),
)

// AllAdapters bundles every adapter set for app wiring.
var AllAdapters = wire.NewSet(
	StorageSet,
	ClockSet,
	AuthSet,
	MigrationSet,
	TargetSet,
)
