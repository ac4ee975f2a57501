package data

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// InitDuckDB opens (and creates, if needed) the database at path and makes
// sure the slots table exists. An empty path opens an in-memory database,
// which gives session-scoped storage.
func InitDuckDB(path string) (*sql.DB, error) {
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	schema := `CREATE TABLE IF NOT EXISTS slots (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// SlotStore implements Slot on top of DuckDB. One row per key, full
// overwrite on Put.
type SlotStore struct {
	db *sql.DB
}

var duckDB *sql.DB

// NewDuckDBStore returns a SlotStore over the shared database at path.
// The connection is opened once and reused by later calls.
func NewDuckDBStore(path string) *SlotStore {
	if duckDB == nil {
		db, err := InitDuckDB(path)
		if err != nil {
			log.Fatal(err)
		}
		duckDB = db
	}

	return &SlotStore{db: duckDB}
}

// NewSlotStore wraps an existing database connection. Used by tests and
// anywhere a private connection is wanted.
func NewSlotStore(db *sql.DB) *SlotStore {
	return &SlotStore{db: db}
}

func (s *SlotStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *SlotStore) Put(key, value string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO slots (key, value) VALUES (?, ?)`, key, value)
	return err
}
