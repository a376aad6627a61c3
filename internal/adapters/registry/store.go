package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/modreg-org/modreg-cli/internal/config"
	"github.com/modreg-org/modreg-cli/internal/domain"
	"github.com/modreg-org/modreg-cli/internal/domain/models"
)

// RecordFile is the on-disk name of the registry record.
const RecordFile = "registry.json"

// Store owns the single shared RegistryRecord and its on-disk form. Every
// mutation runs against a clone under the write lock and is persisted with a
// tmp-file + atomic rename, so a failed mutation or a crashed write leaves the
// previous record fully intact.
type Store struct {
	dataDir string
	mu      sync.RWMutex
	record  *models.RegistryRecord
}

// NewStore creates a registry store rooted at the configured data directory,
// loading the existing record if one is present.
func NewStore(cfg *config.RuntimeConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{dataDir: cfg.DataDir}
	if err := s.load(); err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}
	return s, nil
}

// load reads the record file; a missing file means "not initialized yet".
func (s *Store) load() error {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var rec models.RegistryRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("corrupt record file: %w", err)
	}
	s.record = &rec
	return nil
}

func (s *Store) path() string {
	return filepath.Join(s.dataDir, RecordFile)
}

// save writes the record with a tmp-file and atomic rename.
func (s *Store) save(rec *models.RegistryRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := s.path() + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.path())
}

// Init creates the record. It fails if one already exists: the registry is a
// singleton and re-running init must never clobber it.
func (s *Store) Init(ctx context.Context, rec *models.RegistryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record != nil {
		return domain.ErrAlreadyInitialized
	}
	if _, err := os.Stat(s.path()); err == nil {
		return domain.ErrAlreadyInitialized
	}

	if err := s.save(rec); err != nil {
		return fmt.Errorf("failed to persist registry: %w", err)
	}
	s.record = rec.Clone()
	return nil
}

// Get returns a snapshot clone of the record.
func (s *Store) Get(ctx context.Context) (*models.RegistryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.record == nil {
		return nil, domain.ErrNotInitialized
	}
	return s.record.Clone(), nil
}

// Update applies mutate to a clone of the record, then persists and swaps it
// in only if mutate returned nil. Mutations observe a single total order (the
// write lock) and are all-or-nothing: a failed call leaves zero trace.
func (s *Store) Update(ctx context.Context, mutate func(*models.RegistryRecord) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record == nil {
		return domain.ErrNotInitialized
	}

	next := s.record.Clone()
	if err := mutate(next); err != nil {
		return err
	}

	if err := s.save(next); err != nil {
		return fmt.Errorf("failed to persist registry: %w", err)
	}
	s.record = next
	return nil
}
