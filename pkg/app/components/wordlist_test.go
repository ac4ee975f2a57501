package components

import (
	"strings"
	"testing"

	"github.com/kerbaras/wordbook/pkg/app/styles"
	"github.com/kerbaras/wordbook/pkg/data"
)

func entry(word string) data.FavoriteEntry {
	return data.FavoriteEntry{
		Word: word,
		Definition: data.Definition{
			Word: word,
			Meanings: []data.Meaning{
				{PartOfSpeech: "noun", Senses: []data.Sense{{Definition: "meaning of " + word}}},
			},
		},
	}
}

func TestNewWordList(t *testing.T) {
	list := NewWordList(styles.Dark())

	if list == nil {
		t.Fatal("Expected word list to be created")
	}

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0, got %d", list.SelectedIndex)
	}

	if len(list.Items) != 0 {
		t.Errorf("Expected 0 items, got %d", len(list.Items))
	}
}

func TestSetItems(t *testing.T) {
	list := NewWordList(styles.Dark())

	list.SetItems([]data.FavoriteEntry{entry("alpha"), entry("beta")})

	if len(list.Items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(list.Items))
	}

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0, got %d", list.SelectedIndex)
	}
}

func TestSetItemsResetsSelection(t *testing.T) {
	list := NewWordList(styles.Dark())

	list.SetItems([]data.FavoriteEntry{entry("alpha"), entry("beta"), entry("gamma")})
	list.SelectedIndex = 2

	list.SetItems([]data.FavoriteEntry{entry("alpha")})

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to be reset to 0, got %d", list.SelectedIndex)
	}
}

func TestNext(t *testing.T) {
	list := NewWordList(styles.Dark())
	list.SetItems([]data.FavoriteEntry{entry("alpha"), entry("beta"), entry("gamma")})

	list.Next()
	if list.SelectedIndex != 1 {
		t.Errorf("Expected SelectedIndex 1, got %d", list.SelectedIndex)
	}

	list.Next()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected SelectedIndex 2, got %d", list.SelectedIndex)
	}

	// Should wrap around
	list.Next()
	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to wrap to 0, got %d", list.SelectedIndex)
	}
}

func TestPrev(t *testing.T) {
	list := NewWordList(styles.Dark())
	list.SetItems([]data.FavoriteEntry{entry("alpha"), entry("beta"), entry("gamma")})

	// Should wrap around when at start
	list.Prev()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected SelectedIndex to wrap to 2, got %d", list.SelectedIndex)
	}

	list.Prev()
	if list.SelectedIndex != 1 {
		t.Errorf("Expected SelectedIndex 1, got %d", list.SelectedIndex)
	}
}

func TestNextPrevEmptyList(t *testing.T) {
	list := NewWordList(styles.Dark())

	// Should not panic with empty list
	list.Next()
	list.Prev()

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to remain 0, got %d", list.SelectedIndex)
	}
}

func TestSelected(t *testing.T) {
	list := NewWordList(styles.Dark())

	if list.Selected() != nil {
		t.Error("Expected nil for empty list")
	}

	list.SetItems([]data.FavoriteEntry{entry("alpha"), entry("beta")})

	selected := list.Selected()
	if selected == nil {
		t.Fatal("Expected selected item")
	}
	if selected.Word != "alpha" {
		t.Errorf("Expected selected word 'alpha', got '%s'", selected.Word)
	}

	list.Next()
	selected = list.Selected()
	if selected.Word != "beta" {
		t.Errorf("Expected selected word 'beta', got '%s'", selected.Word)
	}
}

func TestViewEmptyList(t *testing.T) {
	list := NewWordList(styles.Dark())
	list.Width = 80
	list.Height = 20

	view := list.View()

	if !strings.Contains(view, "No favorites yet") {
		t.Error("Expected 'No favorites yet' message")
	}
}

func TestViewWithItems(t *testing.T) {
	list := NewWordList(styles.Dark())
	list.Width = 80
	list.Height = 20

	list.SetItems([]data.FavoriteEntry{entry("serendipity")})

	view := list.View()

	if !strings.Contains(view, "serendipity") {
		t.Error("Expected word in view")
	}

	if !strings.Contains(view, "meaning of serendipity") {
		t.Error("Expected first sense in view")
	}

	if !strings.Contains(view, "1 meanings") {
		t.Error("Expected meanings count in view")
	}
}
