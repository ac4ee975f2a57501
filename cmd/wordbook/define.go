package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/wordbook/pkg/services"
	"github.com/kerbaras/wordbook/pkg/sources"
	"github.com/spf13/cobra"
)

var defineCmd = &cobra.Command{
	Use:   "define [word]",
	Short: "Look up a word",
	Long:  "Look up a word on the FreeDictionary API and display its meanings in a table",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")
		lookup := services.NewLookup(sources.NewFreeDictionary())

		def, err := lookup.Lookup(query)
		if err != nil {
			if errors.Is(err, sources.ErrNotFound) {
				fmt.Printf("No definitions found for %q.\n", query)
				return
			}
			cobra.CheckErr(fmt.Errorf("lookup failed: %w", err))
		}

		fmt.Printf("\n%s", def.Word)
		if t := def.Transcription(); t != "" {
			fmt.Printf("  %s", t)
		}
		fmt.Println()

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(purple)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("#", "Part of speech", "Definition")

		i := 0
		for _, meaning := range def.Meanings {
			for _, sense := range meaning.Senses {
				i++
				t.Row(fmt.Sprintf("%d", i), meaning.PartOfSpeech, truncateString(sense.Definition, 70))
			}
		}

		fmt.Println(t)
	},
}
