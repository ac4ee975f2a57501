package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kerbaras/wordbook/pkg/services"
	"github.com/kerbaras/wordbook/pkg/sources"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save [word]",
	Short: "Look up a word and add it to your favorites",
	Long:  "Look up a word and bookmark it; saving an already-bookmarked word removes it (toggle)",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")
		lookup := services.NewLookup(sources.NewFreeDictionary())
		favorites := openFavorites()

		fmt.Printf("🔍 Looking up '%s'...\n", query)

		def, err := lookup.Lookup(query)
		if err != nil {
			if errors.Is(err, sources.ErrNotFound) {
				fmt.Printf("❌ No definitions found for %q.\n", query)
				return
			}
			cobra.CheckErr(fmt.Errorf("lookup failed: %w", err))
		}

		added, err := favorites.Toggle(def.Word, *def)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to save favorite: %w", err))
		}

		if added {
			fmt.Printf("✅ Added '%s' to favorites (%d saved)\n", def.Word, favorites.Len())
		} else {
			fmt.Printf("✅ Removed '%s' from favorites (%d saved)\n", def.Word, favorites.Len())
		}
	},
}
