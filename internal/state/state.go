// Package state owns the marketplace's in-memory tables: assets by id and
// accounts by principal. All mutation happens through a single lock with
// run-to-completion semantics, so no operation ever observes another
// operation's partial effects.
package state

import (
	"sync"

	"skillmart/internal/models"
)

// Tables holds the complete marketplace state. A Tables value is threaded
// through every operation's transaction scope; there are no ambient globals.
type Tables struct {
	Assets   map[uint64]*models.Asset
	Accounts map[models.Principal]*models.Account
	NextID   uint64
}

// NewTables returns empty tables with the id counter at 1.
func NewTables() Tables {
	return Tables{
		Assets:   make(map[uint64]*models.Asset),
		Accounts: make(map[models.Principal]*models.Account),
		NextID:   1,
	}
}

// Account returns the account for a principal, creating it with a zero
// balance on first use. Accounts are never deleted.
func (t *Tables) Account(p models.Principal) *models.Account {
	acct, ok := t.Accounts[p]
	if !ok {
		acct = &models.Account{Principal: p}
		t.Accounts[p] = acct
	}
	return acct
}

// Balance returns the balance for a principal without materializing an
// account, defaulting to 0 for unknown principals.
func (t *Tables) Balance(p models.Principal) int64 {
	if acct, ok := t.Accounts[p]; ok {
		return acct.Balance
	}
	return 0
}

// AllocateID assigns the next asset id. IDs are monotonic and never reused.
func (t *Tables) AllocateID() uint64 {
	id := t.NextID
	t.NextID++
	return id
}

// clone deep-copies the tables so snapshots never alias live state.
func (t *Tables) clone() Tables {
	cp := Tables{
		Assets:   make(map[uint64]*models.Asset, len(t.Assets)),
		Accounts: make(map[models.Principal]*models.Account, len(t.Accounts)),
		NextID:   t.NextID,
	}
	for id, asset := range t.Assets {
		cp.Assets[id] = asset.Clone()
	}
	for p, acct := range t.Accounts {
		cp.Accounts[p] = acct.Clone()
	}
	return cp
}

// Store wraps Tables behind a single lock. Every externally triggered
// operation runs as one Atomic or View call; the restart boundary
// (Export/Replace) takes the same lock, so no marketplace call can be in
// flight while a snapshot is taken or restored.
type Store struct {
	mu     sync.RWMutex
	tables Tables
}

// NewStore creates a store with empty tables.
func NewStore() *Store {
	return &Store{tables: NewTables()}
}

// Atomic runs fn with exclusive access to the tables. fn must either apply
// all of its mutations or, on error, leave the tables untouched; callers
// get no opportunity to observe anything in between.
func (s *Store) Atomic(fn func(t *Tables) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.tables)
}

// View runs fn with shared read-only access to the tables. fn must not
// mutate anything it is handed; copy out what you need.
func (s *Store) View(fn func(t *Tables) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.tables)
}

// Export returns a deep copy of the current tables for snapshotting.
func (s *Store) Export() Tables {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tables.clone()
}

// Replace swaps in fully rebuilt tables. Used only when restoring a
// snapshot at startup.
func (s *Store) Replace(t Tables) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables = t
}
