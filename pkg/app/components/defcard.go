package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/wordbook/pkg/app/styles"
	"github.com/kerbaras/wordbook/pkg/data"
)

// DefinitionCard renders one Definition as the result card: headword,
// phonetics, then meanings grouped by part of speech.
type DefinitionCard struct {
	Width int
	Theme *styles.Theme
}

func NewDefinitionCard(theme *styles.Theme) *DefinitionCard {
	return &DefinitionCard{Width: 80, Theme: theme}
}

func (c *DefinitionCard) View(def *data.Definition, favorited bool) string {
	if def == nil {
		return ""
	}

	star := "☆"
	if favorited {
		star = c.Theme.StatusOK.Render("★")
	}
	header := fmt.Sprintf("%s %s", c.Theme.Title.Render(def.Word), star)

	var lines []string
	lines = append(lines, header)

	if phonetics := c.renderPhonetics(def); phonetics != "" {
		lines = append(lines, phonetics)
	}

	for _, meaning := range def.Meanings {
		lines = append(lines, "")
		if meaning.PartOfSpeech != "" {
			lines = append(lines, c.Theme.Subtitle.Render(meaning.PartOfSpeech))
		}
		for i, sense := range meaning.Senses {
			lines = append(lines, c.Theme.Text.Render(fmt.Sprintf("%d. %s", i+1, sense.Definition)))
			if sense.Example != "" {
				lines = append(lines, c.Theme.Muted.Render(fmt.Sprintf("   “%s”", sense.Example)))
			}
		}
	}

	if len(def.Meanings) == 0 {
		lines = append(lines, c.Theme.Muted.Render("No meanings returned"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return c.Theme.Card.Width(c.Width - 4).Render(content)
}

func (c *DefinitionCard) renderPhonetics(def *data.Definition) string {
	var parts []string
	for _, p := range def.Phonetics {
		if p.Text == "" {
			continue
		}
		text := p.Text
		if p.Audio != "" {
			text += " ♪"
		}
		parts = append(parts, text)
	}
	if len(parts) == 0 {
		return ""
	}
	return c.Theme.Subtitle.Render(strings.Join(parts, "  "))
}
