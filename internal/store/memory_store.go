package store

import (
	"sync"

	domainpokemon "pokedex-service/internal/domain/pokemon"
)

// MutateFunc receives a copy of the current team and returns the replacement.
// Returning an error leaves the stored team untouched.
type MutateFunc func(team []domainpokemon.Pokemon) ([]domainpokemon.Pokemon, error)

// TeamStore keeps every user's team in memory for the lifetime of the process.
// Mutations for one user are serialized; different users proceed independently.
type TeamStore struct {
	mu    sync.RWMutex
	teams map[string][]domainpokemon.Pokemon
	locks map[string]*userLock
}

// userLock serializes one user's mutations. refs counts the callers holding or waiting on it,
// guarded by TeamStore.mu; the entry is dropped when it reaches zero.
type userLock struct {
	mu   sync.Mutex
	refs int
}

// NewTeamStore constructs an empty TeamStore.
func NewTeamStore() *TeamStore {
	return &TeamStore{
		teams: make(map[string][]domainpokemon.Pokemon),
		locks: make(map[string]*userLock),
	}
}

// Get returns a copy of the user's team; unknown users get an empty, non-nil slice.
func (s *TeamStore) Get(userID string) []domainpokemon.Pokemon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.teams[userID])
}

// Update runs fn while holding the user's lock and commits its result when fn succeeds.
// fn may block (it typically hydrates a record); other users are not held up.
func (s *TeamStore) Update(userID string, fn MutateFunc) ([]domainpokemon.Pokemon, error) {
	lock := s.acquire(userID)
	lock.mu.Lock()
	defer s.release(userID, lock)

	next, err := fn(s.Get(userID))
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.teams[userID] = clone(next)
	s.mu.Unlock()

	return clone(next), nil
}

// Users returns the number of users holding a team entry.
func (s *TeamStore) Users() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.teams)
}

func (s *TeamStore) acquire(userID string) *userLock {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[userID]
	if !ok {
		lock = &userLock{}
		s.locks[userID] = lock
	}
	lock.refs++
	return lock
}

func (s *TeamStore) release(userID string, lock *userLock) {
	lock.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	lock.refs--
	if lock.refs == 0 {
		delete(s.locks, userID)
	}
}

// pendingLocks reports how many per-user lock entries are live.
func (s *TeamStore) pendingLocks() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.locks)
}

func clone(team []domainpokemon.Pokemon) []domainpokemon.Pokemon {
	out := make([]domainpokemon.Pokemon, len(team))
	copy(out, team)
	return out
}
