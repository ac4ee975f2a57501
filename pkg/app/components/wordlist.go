package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/wordbook/pkg/app/styles"
	"github.com/kerbaras/wordbook/pkg/data"
)

// WordList renders the favorites collection as a vertical stack of cards
// with a movable selection.
type WordList struct {
	Items         []data.FavoriteEntry
	SelectedIndex int
	Width         int
	Height        int
	Theme         *styles.Theme
}

func NewWordList(theme *styles.Theme) *WordList {
	return &WordList{
		Items:         []data.FavoriteEntry{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
		Theme:         theme,
	}
}

func (w *WordList) SetItems(items []data.FavoriteEntry) {
	w.Items = items
	if w.SelectedIndex >= len(items) && len(items) > 0 {
		w.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		w.SelectedIndex = 0
	}
}

func (w *WordList) Next() {
	if len(w.Items) == 0 {
		return
	}
	w.SelectedIndex++
	if w.SelectedIndex >= len(w.Items) {
		w.SelectedIndex = 0
	}
}

func (w *WordList) Prev() {
	if len(w.Items) == 0 {
		return
	}
	w.SelectedIndex--
	if w.SelectedIndex < 0 {
		w.SelectedIndex = len(w.Items) - 1
	}
}

func (w *WordList) Selected() *data.FavoriteEntry {
	if len(w.Items) == 0 || w.SelectedIndex >= len(w.Items) {
		return nil
	}
	return &w.Items[w.SelectedIndex]
}

func (w *WordList) View() string {
	if len(w.Items) == 0 {
		emptyMsg := w.Theme.Muted.Render("No favorites yet")
		return lipgloss.Place(w.Width, w.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder

	for i, entry := range w.Items {
		cardStyle := w.Theme.Card
		if i == w.SelectedIndex {
			cardStyle = w.Theme.ActiveCard
		}

		title := w.Theme.Title.Render(entry.Word)

		transcription := ""
		if t := entry.Definition.Transcription(); t != "" {
			transcription = w.Theme.Subtitle.Render(t)
		}

		summary := w.Theme.Text.Render(firstSense(entry.Definition))
		counts := w.Theme.Muted.Render(fmt.Sprintf("%d meanings", len(entry.Definition.Meanings)))

		cardContent := lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			transcription,
			summary,
			counts,
		)

		card := cardStyle.Width(w.Width - 4).Render(cardContent)
		b.WriteString(card)
		b.WriteString("\n")
	}

	return b.String()
}

// firstSense returns the first definition text, truncated for card display.
func firstSense(def data.Definition) string {
	for _, meaning := range def.Meanings {
		for _, sense := range meaning.Senses {
			if sense.Definition == "" {
				continue
			}
			text := sense.Definition
			if len(text) > 80 {
				text = text[:77] + "..."
			}
			return text
		}
	}
	return "(no definition text)"
}
