package cmd

import (
	"fmt"
	"os"

	"github.com/kerbaras/wordbook/pkg/app"
	"github.com/kerbaras/wordbook/pkg/data"
	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "wordbook",
	Short: "A dictionary and favorites CLI",
	Long:  "Look up word definitions and keep your favorites with a beautiful TUI and CLI",
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		cfg := app.DefaultConfig()
		cfg.DBPath = dbPath
		a := app.NewApp(cfg)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", app.DefaultConfig().DBPath,
		"database path (empty keeps favorites for this session only)")

	rootCmd.AddCommand(defineCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(exportCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openFavorites loads the persisted collection for the CLI commands. A
// corrupted collection is reported and treated as empty.
func openFavorites() *data.Favorites {
	slot := data.NewDuckDBStore(dbPath)
	favorites := data.NewFavorites(slot)
	if err := favorites.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return favorites
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
