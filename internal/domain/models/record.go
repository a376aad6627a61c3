package models

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/modreg-org/modreg-cli/internal/domain"
)

const (
	// CurrentStorageVersion is the layout version new registries are created at.
	CurrentStorageVersion = 1

	// MaxMinDelay is the hard ceiling on the configurable upgrade delay. It
	// keeps governance from locking itself out behind an unbounded timelock.
	MaxMinDelay = 7 * 24 * time.Hour

	// MaxBatchSize caps a single registerBatch call.
	MaxBatchSize = 50
)

// PendingUpgrade is an outstanding timelocked proposal for one key.
type PendingUpgrade struct {
	NewAddress   common.Address `json:"newAddress"`
	ExecuteAfter time.Time      `json:"executeAfter"`
	ScheduledBy  common.Address `json:"scheduledBy"`
	ScheduledAt  time.Time      `json:"scheduledAt"`
}

// RegistryRecord is the single shared storage region: the authoritative
// key→address table plus its governance fields, pending-upgrade queue,
// per-key history rings and signer nonces. Exactly one logical instance
// exists at runtime; every collaborator operates on it by reference through
// the store, never on a private copy.
type RegistryRecord struct {
	StorageVersion uint64 `json:"storageVersion"`

	Admin          common.Address `json:"admin"`
	PendingAdmin   common.Address `json:"pendingAdmin"`
	UpgradeAdmin   common.Address `json:"upgradeAdmin"`
	EmergencyAdmin common.Address `json:"emergencyAdmin"`

	Paused   bool          `json:"paused"`
	MinDelay time.Duration `json:"minDelay"`

	Modules         map[string]common.Address `json:"modules"`
	PendingUpgrades map[string]PendingUpgrade `json:"pendingUpgrades"`
	History         map[string]*HistoryRing   `json:"history"`
	Nonces          map[common.Address]uint64 `json:"nonces"`
}

// NewRegistryRecord builds a fresh record at the current storage version.
func NewRegistryRecord(admin, upgradeAdmin, emergencyAdmin common.Address, minDelay time.Duration) (*RegistryRecord, error) {
	rec := &RegistryRecord{
		StorageVersion:  CurrentStorageVersion,
		Admin:           admin,
		UpgradeAdmin:    upgradeAdmin,
		EmergencyAdmin:  emergencyAdmin,
		MinDelay:        minDelay,
		Modules:         make(map[string]common.Address),
		PendingUpgrades: make(map[string]PendingUpgrade),
		History:         make(map[string]*HistoryRing),
		Nonces:          make(map[common.Address]uint64),
	}
	if err := rec.ValidateLayout(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Clone deep-copies the record. The store hands clones to readers and
// mutates a clone inside Update so a failed mutation leaves no trace.
func (r *RegistryRecord) Clone() *RegistryRecord {
	clone := *r
	clone.Modules = make(map[string]common.Address, len(r.Modules))
	for k, v := range r.Modules {
		clone.Modules[k] = v
	}
	clone.PendingUpgrades = make(map[string]PendingUpgrade, len(r.PendingUpgrades))
	for k, v := range r.PendingUpgrades {
		clone.PendingUpgrades[k] = v
	}
	clone.History = make(map[string]*HistoryRing, len(r.History))
	for k, v := range r.History {
		clone.History[k] = v.clone()
	}
	clone.Nonces = make(map[common.Address]uint64, len(r.Nonces))
	for k, v := range r.Nonces {
		clone.Nonces[k] = v
	}
	return &clone
}

// ValidateLayout is the structural check run before and after migrations:
// governance must still be anchored to a real admin and the delay bound must
// hold. A record failing this check must never be persisted.
func (r *RegistryRecord) ValidateLayout() error {
	if r.Admin == (common.Address{}) {
		return fmt.Errorf("%w: admin is zero", domain.ErrLayoutInvalid)
	}
	if r.MinDelay <= 0 || r.MinDelay > MaxMinDelay {
		return fmt.Errorf("%w: minDelay %s outside (0, %s]", domain.ErrLayoutInvalid, r.MinDelay, MaxMinDelay)
	}
	if r.Modules == nil || r.PendingUpgrades == nil || r.History == nil {
		return fmt.Errorf("%w: nil table", domain.ErrLayoutInvalid)
	}
	return nil
}

// IsOwner reports whether id is the registry admin.
func (r *RegistryRecord) IsOwner(id common.Address) bool {
	return id != (common.Address{}) && id == r.Admin
}

// CanUpgrade reports whether id may schedule or execute timelocked upgrades.
// The owner outranks the delegated upgrade admin.
func (r *RegistryRecord) CanUpgrade(id common.Address) bool {
	return r.IsOwner(id) || (id != (common.Address{}) && id == r.UpgradeAdmin)
}

// CanEmergency reports whether id may use the emergency escape paths
// (cancel a pending upgrade, pause).
func (r *RegistryRecord) CanEmergency(id common.Address) bool {
	return r.IsOwner(id) || (id != (common.Address{}) && id == r.EmergencyAdmin)
}

// AppendHistory records a successful rebinding of key in its ring.
func (r *RegistryRecord) AppendHistory(key string, oldAddr, newAddr common.Address, executor common.Address, at time.Time) {
	ring := r.History[key]
	if ring == nil {
		ring = &HistoryRing{}
		r.History[key] = ring
	}
	ring.Append(HistoryEntry{
		OldAddress: oldAddr,
		NewAddress: newAddr,
		Timestamp:  at,
		Executor:   executor,
	})
}

// NonceOf returns the next expected nonce for a signing identity.
func (r *RegistryRecord) NonceOf(id common.Address) uint64 {
	if r.Nonces == nil {
		return 0
	}
	return r.Nonces[id]
}

// BumpNonce consumes the current nonce of a signing identity.
func (r *RegistryRecord) BumpNonce(id common.Address) {
	if r.Nonces == nil {
		r.Nonces = make(map[common.Address]uint64)
	}
	r.Nonces[id]++
}

// Keys returns the registered module keys in no particular order.
func (r *RegistryRecord) Keys() []string {
	keys := make([]string, 0, len(r.Modules))
	for k := range r.Modules {
		keys = append(keys, k)
	}
	return keys
}
