package app

import (
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/wordbook/pkg/app/screens"
	"github.com/kerbaras/wordbook/pkg/data"
	"github.com/kerbaras/wordbook/pkg/integrations"
	"github.com/kerbaras/wordbook/pkg/services"
	"github.com/kerbaras/wordbook/pkg/sources"
)

// Config selects where the app keeps its state. An empty DBPath keeps
// favorites and the theme preference for the session only.
type Config struct {
	DBPath    string
	CacheDir  string
	ExportDir string
}

// DefaultConfig stores everything under ~/.wordbook and exports to the
// user's home directory.
func DefaultConfig() Config {
	homeDir, _ := os.UserHomeDir()
	return Config{
		DBPath:    filepath.Join(homeDir, ".wordbook", "wordbook.db"),
		CacheDir:  filepath.Join(homeDir, ".wordbook", "audio"),
		ExportDir: homeDir,
	}
}

type App struct {
	cfg Config
}

func NewApp(cfg Config) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	slot := data.NewDuckDBStore(a.cfg.DBPath)

	favorites := data.NewFavorites(slot)
	loadErr := favorites.Load()

	settings := data.NewSettings(slot)
	lookup := services.NewLookup(sources.NewFreeDictionary())
	player := services.NewPlayer(a.cfg.CacheDir)
	exporter := integrations.NewEPubBuilder(a.cfg.ExportDir)

	if loadErr != nil {
		// The store already reset itself to empty; the user just loses the
		// corrupted collection.
		log.Printf("warning: %v", loadErr)
	}

	model := screens.NewRootScreen(favorites, settings, lookup, player, exporter)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
