package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/modreg-org/modreg-cli/internal/config"
	"github.com/modreg-org/modreg-cli/internal/domain"
	"github.com/modreg-org/modreg-cli/internal/domain/models"
	"github.com/modreg-org/modreg-cli/internal/usecase"
)

var (
	owner    = common.HexToAddress("0x1000000000000000000000000000000000000001")
	upgrader = common.HexToAddress("0x2000000000000000000000000000000000000002")
	guardian = common.HexToAddress("0x3000000000000000000000000000000000000003")
	outsider = common.HexToAddress("0x4000000000000000000000000000000000000004")
)

func addr(i int) common.Address {
	return common.HexToAddress(fmt.Sprintf("0x%040x", i))
}

// memStore is an in-memory RegistryStore with the same clone-and-commit
// contract as the file-backed store.
type memStore struct {
	mu  sync.Mutex
	rec *models.RegistryRecord
}

func (s *memStore) Get(ctx context.Context) (*models.RegistryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rec == nil {
		return nil, domain.ErrNotInitialized
	}
	return s.rec.Clone(), nil
}

func (s *memStore) Update(ctx context.Context, mutate func(*models.RegistryRecord) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rec == nil {
		return domain.ErrNotInitialized
	}
	clone := s.rec.Clone()
	if err := mutate(clone); err != nil {
		return err
	}
	s.rec = clone
	return nil
}

func (s *memStore) Init(ctx context.Context, rec *models.RegistryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rec != nil {
		return domain.ErrAlreadyInitialized
	}
	s.rec = rec.Clone()
	return nil
}

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// recordingSink captures committed events in order.
type recordingSink struct {
	events []domain.Event
}

func (s *recordingSink) Emit(_ context.Context, event domain.Event) {
	s.events = append(s.events, event)
}

// stubVerifier recovers a fixed identity; tests of the real recovery path
// live with the signature adapter.
type stubVerifier struct {
	recovered common.Address
	err       error
}

func (v stubVerifier) Recover(common.Hash, []byte) (common.Address, error) {
	return v.recovered, v.err
}

// fixture wires an initialized store, fake clock and recording sink behind
// a caller identity.
type fixture struct {
	cfg   *config.RuntimeConfig
	store *memStore
	clock *fakeClock
	sink  *recordingSink
}

func newFixture(t *testing.T, caller common.Address) *fixture {
	t.Helper()

	rec, err := models.NewRegistryRecord(owner, upgrader, guardian, 24*time.Hour)
	require.NoError(t, err)

	store := &memStore{}
	require.NoError(t, store.Init(context.Background(), rec))

	return &fixture{
		cfg:   &config.RuntimeConfig{Caller: caller},
		store: store,
		clock: &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		sink:  &recordingSink{},
	}
}

// as returns a copy of the fixture config acting as a different identity.
func (f *fixture) as(caller common.Address) *config.RuntimeConfig {
	cfg := *f.cfg
	cfg.Caller = caller
	return &cfg
}

// record reads the committed record directly, bypassing the use cases.
func (f *fixture) record(t *testing.T) *models.RegistryRecord {
	t.Helper()
	rec, err := f.store.Get(context.Background())
	require.NoError(t, err)
	return rec
}

func (f *fixture) register(t *testing.T, key string, a common.Address) {
	t.Helper()
	uc := usecase.NewRegisterModule(f.cfg, f.store, f.clock, stubVerifier{}, f.sink)
	_, err := uc.Run(context.Background(), usecase.RegisterModuleParams{Key: key, Address: a})
	require.NoError(t, err)
}

func (f *fixture) pause(t *testing.T) {
	t.Helper()
	uc := usecase.NewPauseRegistry(f.cfg, f.store, stubVerifier{}, f.sink)
	require.NoError(t, uc.Run(context.Background()))
}
