package data

import (
	"encoding/json"
	"fmt"
	"sync"
)

// FavoritesKey is the storage slot holding the serialized collection.
const FavoritesKey = "favorites"

// Favorites is the bookmarked-words collection. The in-memory list is the
// source of truth; every mutation re-serializes the whole collection into
// the backing slot. The read-modify-write plus the persistence write form
// one critical section so concurrent mutations cannot lose updates.
type Favorites struct {
	mu      sync.RWMutex
	slot    Slot
	entries []FavoriteEntry
}

func NewFavorites(slot Slot) *Favorites {
	return &Favorites{slot: slot}
}

// Load reads the persisted collection. A missing slot means an empty
// collection. Malformed JSON resets the collection to empty and returns
// the parse error so the caller can surface it; the store stays usable.
func (f *Favorites) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, ok, err := f.slot.Get(FavoritesKey)
	if err != nil {
		return fmt.Errorf("load favorites: %w", err)
	}
	if !ok {
		f.entries = nil
		return nil
	}

	var entries []FavoriteEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		f.entries = nil
		return fmt.Errorf("favorites slot holds invalid JSON, starting empty: %w", err)
	}

	f.entries = entries
	return nil
}

// Toggle bookmarks word if it is not a favorite, or removes it if it is.
// Returns the new state: true when the word is now a favorite.
func (f *Favorites) Toggle(word string, def Definition) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, e := range f.entries {
		if e.Word == word {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return false, f.persist()
		}
	}

	f.entries = append(f.entries, FavoriteEntry{Word: word, Definition: def})
	return true, f.persist()
}

// Remove drops all entries matching word. At most one exists by the
// uniqueness invariant; removing an absent word still persists.
func (f *Favorites) Remove(word string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.Word != word {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return f.persist()
}

// IsFavorite reports exact-string membership.
func (f *Favorites) IsFavorite(word string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, e := range f.entries {
		if e.Word == word {
			return true
		}
	}
	return false
}

// Get returns the entry for word, or nil.
func (f *Favorites) Get(word string) *FavoriteEntry {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, e := range f.entries {
		if e.Word == word {
			entry := e
			return &entry
		}
	}
	return nil
}

// List returns the entries in insertion order.
func (f *Favorites) List() []FavoriteEntry {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]FavoriteEntry, len(f.entries))
	copy(out, f.entries)
	return out
}

// Len returns the number of favorites.
func (f *Favorites) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.entries)
}

// persist writes the entire collection. Callers hold the write lock.
func (f *Favorites) persist() error {
	raw := []byte("[]")
	if len(f.entries) > 0 {
		var err error
		raw, err = json.Marshal(f.entries)
		if err != nil {
			return fmt.Errorf("serialize favorites: %w", err)
		}
	}
	if err := f.slot.Put(FavoritesKey, string(raw)); err != nil {
		return fmt.Errorf("persist favorites: %w", err)
	}
	return nil
}
