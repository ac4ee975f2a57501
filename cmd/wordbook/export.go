package cmd

import (
	"fmt"

	"github.com/kerbaras/wordbook/pkg/app"
	"github.com/kerbaras/wordbook/pkg/integrations"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your favorites as an EPUB study booklet",
	Long:  "Compile all favorite words and their definitions into a single EPUB file",
	Run: func(cmd *cobra.Command, args []string) {
		outputDir, _ := cmd.Flags().GetString("output")
		title, _ := cmd.Flags().GetString("title")

		favorites := openFavorites()
		if favorites.Len() == 0 {
			fmt.Println("★ No favorites to export.")
			return
		}

		builder := integrations.NewEPubBuilder(outputDir)
		path, err := builder.CreateEPub(title, favorites.List())
		if err != nil {
			cobra.CheckErr(fmt.Errorf("export failed: %w", err))
		}

		fmt.Printf("📖 EPUB created: %s\n", path)
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", app.DefaultConfig().ExportDir, "Output directory")
	exportCmd.Flags().StringP("title", "t", "Wordbook Favorites", "Booklet title")
}
