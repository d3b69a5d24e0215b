// Package memory is the default storage.Storage backend: an ordered slice
// plus a monotonic id counter, guarded by a mutex.
package memory

import (
	"slices"
	"sync"

	"github.com/aanand-mishra/users-table/internal/storage"
	"github.com/aanand-mishra/users-table/internal/types"
)

// Memory keeps records in insertion order.
type Memory struct {
	mu     sync.RWMutex
	users  []types.User
	lastID int64
}

// New returns a store holding a copy of seed. The id counter starts after
// the largest seeded id so new ids never collide with seeded ones.
func New(seed []types.User) *Memory {
	m := &Memory{users: slices.Clone(seed)}
	for _, u := range seed {
		m.lastID = max(m.lastID, u.ID)
	}
	if m.users == nil {
		m.users = make([]types.User, 0)
	}
	return m
}

func (m *Memory) Add(name string, age int, email string) (types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastID++
	u := types.User{ID: m.lastID, Name: name, Age: age, Email: email}
	m.users = append(m.users, u)
	return u, nil
}

func (m *Memory) Update(id int64, name string, age int, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.index(id); i >= 0 {
		m.users[i] = types.User{ID: id, Name: name, Age: age, Email: email}
	}
	return nil
}

func (m *Memory) Remove(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.index(id); i >= 0 {
		m.users = slices.Delete(m.users, i, i+1)
	}
	return nil
}

func (m *Memory) Get(id int64) (types.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i := m.index(id); i >= 0 {
		return m.users[i], nil
	}
	return types.User{}, storage.ErrNotFound
}

func (m *Memory) List() ([]types.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *Memory) Close() error { return nil }

// index must be called with mu held.
func (m *Memory) index(id int64) int {
	return slices.IndexFunc(m.users, func(u types.User) bool { return u.ID == id })
}

var _ storage.Storage = (*Memory)(nil)
