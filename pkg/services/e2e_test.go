package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kerbaras/wordbook/pkg/data"
	"github.com/kerbaras/wordbook/pkg/sources"
)

// E2E test for the full lookup-and-favorite flow over a fake upstream.

func TestE2E_LookupAndFavoriteFlow(t *testing.T) {
	body := `[{
		"word": "example",
		"phonetics": [
			{"text": "/ɪɡˈzɑːmpəl/", "audio": "https://example.com/example-us.mp3"}
		],
		"meanings": [
			{
				"partOfSpeech": "noun",
				"definitions": [
					{
						"definition": "Something that is representative of all such things in a group.",
						"example": "This is an example of a red car."
					}
				]
			}
		]
	}]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/entries/en/example" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(body))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"title":"No Definitions Found"}`))
	}))
	defer server.Close()

	lookup := NewLookup(sources.NewFreeDictionaryWithURL(server.URL))
	slot := data.NewMemorySlot()
	favorites := data.NewFavorites(slot)
	if err := favorites.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	t.Run("Lookup", func(t *testing.T) {
		def, err := lookup.Lookup("example")
		if err != nil {
			t.Fatalf("Lookup failed: %v", err)
		}
		if def.Word != "example" {
			t.Errorf("Expected word 'example', got '%s'", def.Word)
		}
		if def.AudioURL() != "https://example.com/example-us.mp3" {
			t.Errorf("Unexpected audio URL: %s", def.AudioURL())
		}

		t.Run("Favorite it", func(t *testing.T) {
			added, err := favorites.Toggle(def.Word, *def)
			if err != nil {
				t.Fatalf("Toggle failed: %v", err)
			}
			if !added {
				t.Error("Expected toggle to add")
			}
			if !favorites.IsFavorite("example") {
				t.Error("Expected 'example' to be a favorite")
			}
		})
	})

	t.Run("Survives a reload", func(t *testing.T) {
		reloaded := data.NewFavorites(slot)
		if err := reloaded.Load(); err != nil {
			t.Fatalf("Reload failed: %v", err)
		}
		if !reloaded.IsFavorite("example") {
			t.Error("Expected favorite to survive reload from the same slot")
		}

		entry := reloaded.Get("example")
		if entry == nil {
			t.Fatal("Expected stored entry")
		}
		got := entry.Definition.Meanings[0].Senses[0].Definition
		if got != "Something that is representative of all such things in a group." {
			t.Errorf("Unexpected stored definition: %s", got)
		}
	})

	t.Run("Unknown word", func(t *testing.T) {
		_, err := lookup.Lookup("nonexistentword")
		if err != sources.ErrNotFound {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		if err := favorites.Remove("example"); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if favorites.IsFavorite("example") {
			t.Error("Expected 'example' to be removed")
		}

		raw, ok, _ := slot.Get(data.FavoritesKey)
		if !ok {
			t.Fatal("Expected favorites slot to exist")
		}
		if raw != "[]" {
			t.Errorf("Expected persisted collection to be empty, got %s", raw)
		}
	})
}
