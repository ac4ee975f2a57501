package data

import (
	"os"
	"path/filepath"
	"testing"
)

func setupTestSlot(t *testing.T) (*SlotStore, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "wordbook-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := InitDuckDB(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to init DB: %v", err)
	}

	store := NewSlotStore(db)

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return store, cleanup
}

func TestInitDuckDB(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "test-init-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := InitDuckDB(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize DB: %v", err)
	}
	defer db.Close()

	var tableCount int
	err = db.QueryRow(`SELECT COUNT(*) FROM information_schema.tables WHERE table_name = 'slots'`).Scan(&tableCount)
	if err != nil {
		t.Fatalf("Failed to query tables: %v", err)
	}

	if tableCount != 1 {
		t.Errorf("Expected 1 table, got %d", tableCount)
	}
}

func TestInitDuckDBCreatesDirectory(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "test-init-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	db, err := InitDuckDB(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize DB with nested path: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("DB file was not created")
	}
}

func TestSlotGetMissing(t *testing.T) {
	store, cleanup := setupTestSlot(t)
	defer cleanup()

	_, ok, err := store.Get("missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Expected missing key to report absent")
	}
}

func TestSlotPutAndGet(t *testing.T) {
	store, cleanup := setupTestSlot(t)
	defer cleanup()

	if err := store.Put("favorites", `[{"word":"test"}]`); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	value, ok, err := store.Get("favorites")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected key to be present")
	}
	if value != `[{"word":"test"}]` {
		t.Errorf("Unexpected value: %s", value)
	}
}

func TestSlotPutOverwrites(t *testing.T) {
	store, cleanup := setupTestSlot(t)
	defer cleanup()

	store.Put("theme", "dark")
	store.Put("theme", "light")

	value, ok, err := store.Get("theme")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected key to be present")
	}
	if value != "light" {
		t.Errorf("Expected overwritten value 'light', got '%s'", value)
	}
}

func TestSlotKeysAreIndependent(t *testing.T) {
	store, cleanup := setupTestSlot(t)
	defer cleanup()

	store.Put(FavoritesKey, "[]")
	store.Put(ThemeKey, "dark")

	value, _, _ := store.Get(FavoritesKey)
	if value != "[]" {
		t.Errorf("Expected favorites slot untouched, got '%s'", value)
	}
}

func TestNewDuckDBStoreSingleton(t *testing.T) {
	// Reset global var for testing
	oldDB := duckDB
	duckDB = nil
	defer func() { duckDB = oldDB }()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "singleton.db")

	store1 := NewDuckDBStore(dbPath)
	store2 := NewDuckDBStore(dbPath)

	if store1.db != store2.db {
		t.Error("Expected singleton pattern - both stores should share the same DB")
	}
}
