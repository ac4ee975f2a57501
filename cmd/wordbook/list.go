package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your favorite words",
	Long:  "Display all favorite words in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		favorites := openFavorites()
		entries := favorites.List()

		if len(entries) == 0 {
			fmt.Println("★ No favorites yet. Use 'wordbook save' or the TUI to bookmark words.")
			return
		}

		columns := []table.Column{
			{Title: "Word", Width: 24},
			{Title: "Phonetic", Width: 16},
			{Title: "Meanings", Width: 10},
			{Title: "First definition", Width: 48},
		}

		rows := []table.Row{}
		for _, entry := range entries {
			first := ""
			if len(entry.Definition.Meanings) > 0 && len(entry.Definition.Meanings[0].Senses) > 0 {
				first = entry.Definition.Meanings[0].Senses[0].Definition
			}

			rows = append(rows, table.Row{
				truncateString(entry.Word, 22),
				entry.Definition.Transcription(),
				fmt.Sprintf("%d", len(entry.Definition.Meanings)),
				truncateString(first, 46),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n★ Favorites (%d words)\n\n", len(entries))
		fmt.Println(t.View())
	},
}
