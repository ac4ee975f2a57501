package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [word]",
	Short: "Remove a word from your favorites",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		word := strings.Join(args, " ")
		favorites := openFavorites()

		if !favorites.IsFavorite(word) {
			fmt.Printf("'%s' is not in your favorites.\n", word)
			return
		}

		if err := favorites.Remove(word); err != nil {
			cobra.CheckErr(fmt.Errorf("failed to remove favorite: %w", err))
		}

		fmt.Printf("✅ Removed '%s' (%d favorites left)\n", word, favorites.Len())
	},
}
