package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for registry operations. Callers match these with
// errors.Is; wrapping sites add context with fmt.Errorf("...: %w", err).
var (
	// ErrUnauthorized is returned when the caller lacks the required authority tier
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPaused is returned when a mutating operation is attempted while the registry is paused
	ErrPaused = errors.New("registry is paused")

	// ErrNotPaused is returned when unpause is called on a running registry
	ErrNotPaused = errors.New("registry is not paused")

	// ErrZeroAddress is returned when a null address is supplied where a real one is required
	ErrZeroAddress = errors.New("zero address")

	// ErrEmptyKey is returned when a module key is empty
	ErrEmptyKey = errors.New("empty module key")

	// ErrAlreadyRegistered is returned when registering a key that exists without the replace flag
	ErrAlreadyRegistered = errors.New("module already registered")

	// ErrModuleNotRegistered is returned when a key resolves to nothing
	ErrModuleNotRegistered = errors.New("module not registered")

	// ErrLengthMismatch is returned when batch keys and addresses differ in length
	ErrLengthMismatch = errors.New("keys and addresses length mismatch")

	// ErrBatchTooLarge is returned when a batch exceeds the registration cap
	ErrBatchTooLarge = errors.New("batch too large")

	// ErrAlreadyPending is returned when scheduling over an outstanding upgrade proposal
	ErrAlreadyPending = errors.New("upgrade already pending")

	// ErrNoPendingUpgrade is returned when executing or cancelling a key with no proposal
	ErrNoPendingUpgrade = errors.New("no pending upgrade")

	// ErrNotReady is returned when executing an upgrade before its delay has elapsed
	ErrNotReady = errors.New("upgrade not ready")

	// ErrVersionMismatch is returned when a migration's fromVersion doesn't match storage
	ErrVersionMismatch = errors.New("storage version mismatch")

	// ErrInvalidTarget is returned when a migration targets a non-increasing version
	ErrInvalidTarget = errors.New("invalid migration target version")

	// ErrUnknownMigrator is returned when no migrator is registered under the given name
	ErrUnknownMigrator = errors.New("unknown migrator")

	// ErrIndexOutOfRange is returned when reading past the end of a history log
	ErrIndexOutOfRange = errors.New("history index out of range")

	// ErrDelayOutOfBounds is returned when minDelay is zero or above the hard ceiling
	ErrDelayOutOfBounds = errors.New("min delay out of bounds")

	// ErrNotPendingAdmin is returned when acceptAdmin is called by anyone but the pending admin
	ErrNotPendingAdmin = errors.New("caller is not the pending admin")

	// ErrInvalidSignature is returned when a signed authorization doesn't recover to the claimed identity
	ErrInvalidSignature = errors.New("invalid authorization signature")

	// ErrNotInitialized is returned when no registry record exists yet
	ErrNotInitialized = errors.New("registry not initialized")

	// ErrAlreadyInitialized is returned when init is run against an existing registry
	ErrAlreadyInitialized = errors.New("registry already initialized")

	// ErrLayoutInvalid is returned when the structural validation of the record fails
	ErrLayoutInvalid = errors.New("registry layout invalid")

	// ErrUnknownTarget is returned when a refresh names a target missing from the manifest
	ErrUnknownTarget = errors.New("unknown refresh target")
)

// ModuleNotRegisteredErr decorates ErrModuleNotRegistered with the missing
// key and close matches from the current key set.
type ModuleNotRegisteredErr struct {
	Key         string
	Suggestions []string
}

func (e ModuleNotRegisteredErr) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("module %q not registered", e.Key)
	}
	return fmt.Sprintf("module %q not registered (did you mean: %s?)",
		e.Key, strings.Join(e.Suggestions, ", "))
}

func (e ModuleNotRegisteredErr) Unwrap() error {
	return ErrModuleNotRegistered
}

// BatchTooLargeErr reports how far over the cap a batch registration went.
type BatchTooLargeErr struct {
	Size int
	Max  int
}

func (e BatchTooLargeErr) Error() string {
	return fmt.Sprintf("batch of %d entries exceeds cap of %d", e.Size, e.Max)
}

func (e BatchTooLargeErr) Unwrap() error {
	return ErrBatchTooLarge
}
