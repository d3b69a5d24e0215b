// Package storage defines the Storage interface, the Record Store
// contract that every backend must satisfy.
//
// The editor and both renderers only depend on this interface, so the
// in-memory slice backend and the SQLite backend are interchangeable and
// tests can run against either.
//
// Every backend is volatile: records live as long as the process does.
package storage

import (
	"errors"

	"github.com/aanand-mishra/users-table/internal/types"
)

// ErrNotFound is returned by Get when no record has the requested id.
// Update and Remove never return it: a missing id is a silent no-op there.
var ErrNotFound = errors.New("user not found")

// Storage is the ordered Record Store.
type Storage interface {
	// Add appends a new record and returns it with its freshly assigned id.
	// Ids are unique and strictly increasing for the life of the store.
	Add(name string, age int, email string) (types.User, error)

	// Update overwrites name, age and email of the record with the given id,
	// keeping its position. No-op if no record matches.
	Update(id int64, name string, age int, email string) error

	// Remove deletes the record with the given id, keeping the order of the
	// rest. No-op if no record matches.
	Remove(id int64) error

	// Get returns one record, or ErrNotFound.
	Get(id int64) (types.User, error)

	// List returns a snapshot of every record in order.
	// Returns an empty slice (not nil) when the store is empty.
	List() ([]types.User, error)

	// Close releases backend resources.
	Close() error
}

// Seed is the initial table content.
var Seed = []types.User{
	{ID: 1, Name: "Shivansh", Age: 23, Email: "shivansh@example.com"},
	{ID: 2, Name: "Simran", Age: 22, Email: "simran@example.com"},
	{ID: 3, Name: "Aakash", Age: 23, Email: "aakash@example.com"},
}
