package store

import (
	"sync"

	"github.com/gagliardetto/solana-go"

	"clmm-gateway/internal/clmm"
)

// PositionKey identifies a position by owner, pool and tick bounds.
type PositionKey struct {
	Owner     solana.PublicKey
	Pool      solana.PublicKey
	TickLower int32
	TickUpper int32
}

type poolEntry struct {
	mu    sync.Mutex
	state clmm.PoolState
}

// Store keeps pool and position records. Each pool has its own lock: one
// request runs to completion against a pool before the next begins, so no
// caller observes a half-applied state. Pools are never deleted; the pause
// flag substitutes for decommissioning.
type Store struct {
	mu        sync.RWMutex
	pools     map[solana.PublicKey]*poolEntry
	posMu     sync.RWMutex
	positions map[PositionKey]*clmm.UserPosition
}

func New() *Store {
	return &Store{
		pools:     make(map[solana.PublicKey]*poolEntry),
		positions: make(map[PositionKey]*clmm.UserPosition),
	}
}

// AddPool registers a freshly initialized pool. Re-registering an existing
// pool id fails.
func (s *Store) AddPool(state clmm.PoolState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pools[state.PoolID]; ok {
		return clmm.ErrInvalidPoolState
	}
	s.pools[state.PoolID] = &poolEntry{state: state}
	return nil
}

// GetPool returns a snapshot copy of the pool record.
func (s *Store) GetPool(id solana.PublicKey) (clmm.PoolState, error) {
	s.mu.RLock()
	entry, ok := s.pools[id]
	s.mu.RUnlock()
	if !ok {
		return clmm.PoolState{}, clmm.ErrInvalidPoolState
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.state, nil
}

// WithPool runs fn while holding the pool's lock. fn sees and may mutate the
// live record; it must only mutate after all of its checks have passed, so a
// returned error implies an untouched pool.
func (s *Store) WithPool(id solana.PublicKey, fn func(*clmm.PoolState) error) error {
	s.mu.RLock()
	entry, ok := s.pools[id]
	s.mu.RUnlock()
	if !ok {
		return clmm.ErrInvalidPoolState
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(&entry.state)
}

// PoolIDs lists all registered pools.
func (s *Store) PoolIDs() []solana.PublicKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]solana.PublicKey, 0, len(s.pools))
	for id := range s.pools {
		ids = append(ids, id)
	}
	return ids
}

// GetPosition returns a snapshot copy of a position.
func (s *Store) GetPosition(key PositionKey) (clmm.UserPosition, error) {
	s.posMu.RLock()
	defer s.posMu.RUnlock()
	pos, ok := s.positions[key]
	if !ok {
		return clmm.UserPosition{}, clmm.ErrPositionNotFound
	}
	return *pos, nil
}

// PutPosition inserts or replaces a position record.
func (s *Store) PutPosition(key PositionKey, pos clmm.UserPosition) {
	s.posMu.Lock()
	defer s.posMu.Unlock()
	cp := pos
	s.positions[key] = &cp
}

// UpdatePosition applies fn to an existing position under the lock.
func (s *Store) UpdatePosition(key PositionKey, fn func(*clmm.UserPosition) error) error {
	s.posMu.Lock()
	defer s.posMu.Unlock()
	pos, ok := s.positions[key]
	if !ok {
		return clmm.ErrPositionNotFound
	}
	return fn(pos)
}
