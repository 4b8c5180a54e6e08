// internal/datastore/store.go
package datastore

import (
	"log"
	"sync"

	"github.com/yackko/userlist/types"
)

// Store holds the working set of users and the snapshot it was loaded from.
// The snapshot is captured once by Populate and never modified afterwards;
// Reset copies it back over the working set.
type Store struct {
	mu       sync.Mutex
	users    []types.User // working set, shrinks on Delete
	snapshot []types.User
	logger   *log.Logger
}

// New returns an empty store. A nil logger means the standard logger.
func New(logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{logger: logger}
}

// Populate replaces both the working set and the snapshot with users, in
// order. Users repeating an earlier uuid are dropped so the collection stays
// unique; the number dropped is returned.
func (s *Store) Populate(users []types.User) int {
	seen := make(map[string]struct{}, len(users))
	unique := make([]types.User, 0, len(users))
	dropped := 0
	for _, u := range users {
		if _, dup := seen[u.ID()]; dup {
			s.logger.Printf("[STORE] Dropping duplicate user %q (%s)", u.ID(), u.FullName())
			dropped++
			continue
		}
		seen[u.ID()] = struct{}{}
		unique = append(unique, u)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = unique
	s.users = append([]types.User(nil), unique...)
	return dropped
}

// Users returns a copy of the working set.
func (s *Store) Users() []types.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.User(nil), s.users...)
}

// Snapshot returns a copy of the original snapshot.
func (s *Store) Snapshot() []types.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.User(nil), s.snapshot...)
}

// Delete removes the user with the given uuid from the working set. It
// reports whether a user was removed; an unknown uuid leaves the set as is.
func (s *Store) Delete(uuid string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID() != uuid {
			continue
		}
		next := make([]types.User, 0, len(s.users)-1)
		next = append(next, s.users[:i]...)
		s.users = append(next, s.users[i+1:]...)
		return true
	}
	return false
}

// Reset discards every deletion by copying the snapshot over the working set.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]types.User(nil), s.snapshot...)
}

// Len is the size of the working set.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// Total is the size of the snapshot.
func (s *Store) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.snapshot)
}
