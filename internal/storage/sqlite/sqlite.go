// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// The database always lives in memory (mode=memory), so it is exactly as
// volatile as the slice backend: the table disappears with the process.
//
// A private in-memory database exists per connection, which is why the
// pool is pinned to a single connection that is never recycled.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/users-table/internal/storage"
	"github.com/aanand-mishra/users-table/internal/types"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
type SQLite struct {
	Db *sql.DB
}

// New opens the in-memory database called name, creates the users table
// and inserts seed with its ids preserved.
func New(name string, seed []types.User) (*SQLite, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=memory", name))
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// AUTOINCREMENT guarantees ids are never reused, even after the row
	// holding the largest id is deleted.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id    INTEGER PRIMARY KEY AUTOINCREMENT,
			name  TEXT    NOT NULL,
			age   INTEGER NOT NULL,
			email TEXT    NOT NULL
		)
	`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	s := &SQLite{Db: db}
	if err := s.seed(seed); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) seed(users []types.User) error {
	if len(users) == 0 {
		return nil
	}

	tx, err := s.Db.Begin()
	if err != nil {
		return fmt.Errorf("sqlite.seed: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.Prepare("INSERT INTO users (id, name, age, email) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("sqlite.seed: prepare: %w", err)
	}
	defer stmt.Close()

	for _, u := range users {
		if _, err := stmt.Exec(u.ID, u.Name, u.Age, u.Email); err != nil {
			return fmt.Errorf("sqlite.seed: insert %d: %w", u.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite.seed: commit: %w", err)
	}
	return nil
}

// Add inserts a new row; SQLite assigns the id.
func (s *SQLite) Add(name string, age int, email string) (types.User, error) {
	stmt, err := s.Db.Prepare("INSERT INTO users (name, age, email) VALUES (?, ?, ?)")
	if err != nil {
		return types.User{}, fmt.Errorf("Add: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(name, age, email)
	if err != nil {
		return types.User{}, fmt.Errorf("Add: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return types.User{}, fmt.Errorf("Add: last insert id: %w", err)
	}

	return types.User{ID: lastID, Name: name, Age: age, Email: email}, nil
}

// Update rewrites the row in place. Zero affected rows is not an error.
func (s *SQLite) Update(id int64, name string, age int, email string) error {
	stmt, err := s.Db.Prepare("UPDATE users SET name = ?, age = ?, email = ? WHERE id = ?")
	if err != nil {
		return fmt.Errorf("Update: prepare: %w", err)
	}
	defer stmt.Close()

	// Argument order matches the ? order: name, age, email, id.
	if _, err := stmt.Exec(name, age, email, id); err != nil {
		return fmt.Errorf("Update: exec: %w", err)
	}
	return nil
}

func (s *SQLite) Remove(id int64) error {
	stmt, err := s.Db.Prepare("DELETE FROM users WHERE id = ?")
	if err != nil {
		return fmt.Errorf("Remove: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(id); err != nil {
		return fmt.Errorf("Remove: exec: %w", err)
	}
	return nil
}

func (s *SQLite) Get(id int64) (types.User, error) {
	stmt, err := s.Db.Prepare("SELECT id, name, age, email FROM users WHERE id = ? LIMIT 1")
	if err != nil {
		return types.User{}, fmt.Errorf("Get: prepare: %w", err)
	}
	defer stmt.Close()

	var u types.User
	err = stmt.QueryRow(id).Scan(&u.ID, &u.Name, &u.Age, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return types.User{}, fmt.Errorf("Get: id %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return types.User{}, fmt.Errorf("Get: scan: %w", err)
	}
	return u, nil
}

// List returns rows ordered by id, which is insertion order because ids
// only ever grow and updates keep the id.
func (s *SQLite) List() ([]types.User, error) {
	rows, err := s.Db.Query("SELECT id, name, age, email FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("List: query: %w", err)
	}
	defer rows.Close()

	users := make([]types.User, 0)
	for rows.Next() {
		var u types.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Age, &u.Email); err != nil {
			return nil, fmt.Errorf("List: scan row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows iteration: %w", err)
	}
	return users, nil
}

func (s *SQLite) Close() error {
	return s.Db.Close()
}

var _ storage.Storage = (*SQLite)(nil)
