package domain

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type EventType string

const (
	EventTypeModuleRegistered   EventType = "ModuleRegistered"
	EventTypeUpgradeScheduled   EventType = "UpgradeScheduled"
	EventTypeUpgradeExecuted    EventType = "UpgradeExecuted"
	EventTypeUpgradeCancelled   EventType = "UpgradeCancelled"
	EventTypeMigrationCompleted EventType = "MigrationCompleted"
	EventTypeRefreshAttempted   EventType = "RefreshAttempted"
	EventTypePaused             EventType = "Paused"
	EventTypeUnpaused           EventType = "Unpaused"
)

// Event is the interface for all registry audit events.
type Event interface {
	RegistryEventName() string
	String() string
}

// ModuleRegisteredEvent is emitted on every immediate-path rebinding.
type ModuleRegisteredEvent struct {
	Key        string
	OldAddress common.Address
	NewAddress common.Address
	Executor   common.Address
}

func (ModuleRegisteredEvent) RegistryEventName() string {
	return string(EventTypeModuleRegistered)
}

func (e ModuleRegisteredEvent) String() string {
	return fmt.Sprintf("%s: key=%s, old=%s, new=%s",
		e.RegistryEventName(), e.Key, short(e.OldAddress), short(e.NewAddress))
}

// UpgradeScheduledEvent is emitted when a timelocked proposal is created.
type UpgradeScheduledEvent struct {
	Key          string
	NewAddress   common.Address
	ExecuteAfter time.Time
	ScheduledBy  common.Address
}

func (UpgradeScheduledEvent) RegistryEventName() string {
	return string(EventTypeUpgradeScheduled)
}

func (e UpgradeScheduledEvent) String() string {
	return fmt.Sprintf("%s: key=%s, new=%s, executeAfter=%s",
		e.RegistryEventName(), e.Key, short(e.NewAddress), e.ExecuteAfter.Format(time.RFC3339))
}

// UpgradeExecutedEvent is emitted when a ready proposal rebinds its key.
type UpgradeExecutedEvent struct {
	Key        string
	OldAddress common.Address
	NewAddress common.Address
	Executor   common.Address
}

func (UpgradeExecutedEvent) RegistryEventName() string {
	return string(EventTypeUpgradeExecuted)
}

func (e UpgradeExecutedEvent) String() string {
	return fmt.Sprintf("%s: key=%s, old=%s, new=%s",
		e.RegistryEventName(), e.Key, short(e.OldAddress), short(e.NewAddress))
}

// UpgradeCancelledEvent is emitted when a pending proposal is unwound.
type UpgradeCancelledEvent struct {
	Key         string
	NewAddress  common.Address
	CancelledBy common.Address
}

func (UpgradeCancelledEvent) RegistryEventName() string {
	return string(EventTypeUpgradeCancelled)
}

func (e UpgradeCancelledEvent) String() string {
	return fmt.Sprintf("%s: key=%s, dropped=%s",
		e.RegistryEventName(), e.Key, short(e.NewAddress))
}

// MigrationCompletedEvent is emitted after a storage migration commits.
type MigrationCompletedEvent struct {
	FromVersion uint64
	ToVersion   uint64
	Migrator    string
}

func (MigrationCompletedEvent) RegistryEventName() string {
	return string(EventTypeMigrationCompleted)
}

func (e MigrationCompletedEvent) String() string {
	return fmt.Sprintf("%s: v%d -> v%d via %s",
		e.RegistryEventName(), e.FromVersion, e.ToVersion, e.Migrator)
}

// RefreshAttemptedEvent is emitted once per target in a cache refresh sweep,
// whether or not the target's refresh succeeded.
type RefreshAttemptedEvent struct {
	Target string
	OK     bool
	Reason string
}

func (RefreshAttemptedEvent) RegistryEventName() string {
	return string(EventTypeRefreshAttempted)
}

func (e RefreshAttemptedEvent) String() string {
	if e.OK {
		return fmt.Sprintf("%s: target=%s ok", e.RegistryEventName(), e.Target)
	}
	return fmt.Sprintf("%s: target=%s failed (%s)", e.RegistryEventName(), e.Target, e.Reason)
}

// PausedEvent is emitted when the global pause switch is thrown.
type PausedEvent struct {
	By common.Address
}

func (PausedEvent) RegistryEventName() string { return string(EventTypePaused) }

func (e PausedEvent) String() string {
	return fmt.Sprintf("%s: by=%s", e.RegistryEventName(), short(e.By))
}

// UnpausedEvent is emitted when the registry resumes.
type UnpausedEvent struct {
	By common.Address
}

func (UnpausedEvent) RegistryEventName() string { return string(EventTypeUnpaused) }

func (e UnpausedEvent) String() string {
	return fmt.Sprintf("%s: by=%s", e.RegistryEventName(), short(e.By))
}

func short(addr common.Address) string {
	return addr.Hex()[:10] + "..."
}
