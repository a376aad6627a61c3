package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// HistoryCapacity is the fixed per-key size of the upgrade history log.
const HistoryCapacity = 100

// HistoryEntry records one successful rebinding of a key.
type HistoryEntry struct {
	OldAddress common.Address `json:"oldAddress"`
	NewAddress common.Address `json:"newAddress"`
	Timestamp  time.Time      `json:"timestamp"`
	Executor   common.Address `json:"executor"`
}

// HistoryRing is a fixed-capacity ring of rebinding entries. Writes land at
// Cursor % HistoryCapacity and the cursor increments unconditionally, so once
// the arena is full the oldest entry is overwritten. The ring is audit-only:
// nothing in the mutation path ever reads it back.
type HistoryRing struct {
	Entries []HistoryEntry `json:"entries"`
	Cursor  uint64         `json:"cursor"`
}

// Append writes an entry into the next slot, evicting the oldest once full.
func (r *HistoryRing) Append(entry HistoryEntry) {
	slot := int(r.Cursor % HistoryCapacity)
	if slot < len(r.Entries) {
		r.Entries[slot] = entry
	} else {
		r.Entries = append(r.Entries, entry)
	}
	r.Cursor++
}

// Count reports how many entries survive in the ring.
func (r *HistoryRing) Count() int {
	if r == nil {
		return 0
	}
	if r.Cursor > HistoryCapacity {
		return HistoryCapacity
	}
	return int(r.Cursor)
}

// Entry returns the i-th surviving entry, oldest first.
func (r *HistoryRing) Entry(i int) (HistoryEntry, bool) {
	if r == nil || i < 0 || i >= r.Count() {
		return HistoryEntry{}, false
	}
	if r.Cursor <= HistoryCapacity {
		return r.Entries[i], true
	}
	oldest := int(r.Cursor % HistoryCapacity)
	return r.Entries[(oldest+i)%HistoryCapacity], true
}

// Snapshot returns the surviving entries oldest-first as a flat slice.
func (r *HistoryRing) Snapshot() []HistoryEntry {
	n := r.Count()
	out := make([]HistoryEntry, 0, n)
	for i := 0; i < n; i++ {
		e, _ := r.Entry(i)
		out = append(out, e)
	}
	return out
}

// clone deep-copies the ring.
func (r *HistoryRing) clone() *HistoryRing {
	if r == nil {
		return nil
	}
	entries := make([]HistoryEntry, len(r.Entries))
	copy(entries, r.Entries)
	return &HistoryRing{Entries: entries, Cursor: r.Cursor}
}
