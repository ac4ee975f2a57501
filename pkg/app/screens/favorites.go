package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/wordbook/pkg/app/components"
	"github.com/kerbaras/wordbook/pkg/app/styles"
	"github.com/kerbaras/wordbook/pkg/data"
	"github.com/kerbaras/wordbook/pkg/integrations"
)

type FavoritesScreen struct {
	favorites *data.Favorites
	exporter  *integrations.EPubBuilder
	wordList  *components.WordList
	theme     *styles.Theme
	width     int
	height    int
	status    string
	err       error
}

func NewFavoritesScreen(favorites *data.Favorites, exporter *integrations.EPubBuilder, theme *styles.Theme) *FavoritesScreen {
	return &FavoritesScreen{
		favorites: favorites,
		exporter:  exporter,
		wordList:  components.NewWordList(theme),
		theme:     theme,
	}
}

func (s *FavoritesScreen) Init() tea.Cmd {
	return s.loadFavorites
}

func (s *FavoritesScreen) SetTheme(theme *styles.Theme) {
	s.theme = theme
	s.wordList.Theme = theme
}

func (s *FavoritesScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.wordList.Width = msg.Width - 4
		s.wordList.Height = msg.Height - 10

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.wordList.Prev()
		case "down", "j":
			s.wordList.Next()
		case "r":
			return s, s.loadFavorites
		case "d":
			if selected := s.wordList.Selected(); selected != nil {
				return s, s.removeFavorite(selected.Word)
			}
		case "e":
			return s, s.exportFavorites
		case "enter":
			if selected := s.wordList.Selected(); selected != nil {
				entry := *selected
				return s, func() tea.Msg {
					return SwitchScreenMsg{Screen: "search", Data: entry}
				}
			}
		}

	case favoritesLoadedMsg:
		s.wordList.SetItems(msg.items)
		s.err = msg.err

	case favoriteRemovedMsg:
		s.err = msg.err
		s.status = ""
		return s, s.loadFavorites

	case exportDoneMsg:
		s.err = msg.err
		if msg.err == nil {
			s.status = fmt.Sprintf("Exported to %s", msg.path)
		}
	}

	return s, nil
}

func (s *FavoritesScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := s.theme.Title.Render("★ Favorites")

	var errorMsg string
	if s.err != nil {
		errorMsg = s.theme.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
		errorMsg += "\n\n"
	}

	var statusMsg string
	if s.status != "" {
		statusMsg = s.theme.StatusOK.Render(s.status)
		statusMsg += "\n\n"
	}

	listView := s.wordList.View()

	help := s.theme.Help.Render(
		"↑/k ↓/j: navigate • enter: open • d: remove • e: export EPUB • r: refresh • t: theme • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s%s%s\n%s", header, errorMsg, statusMsg, listView, help)
}

// Messages
type favoritesLoadedMsg struct {
	items []data.FavoriteEntry
	err   error
}

type favoriteRemovedMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

// Commands
func (s *FavoritesScreen) loadFavorites() tea.Msg {
	return favoritesLoadedMsg{items: s.favorites.List()}
}

func (s *FavoritesScreen) removeFavorite(word string) tea.Cmd {
	return func() tea.Msg {
		return favoriteRemovedMsg{err: s.favorites.Remove(word)}
	}
}

func (s *FavoritesScreen) exportFavorites() tea.Msg {
	path, err := s.exporter.CreateEPub("Wordbook Favorites", s.favorites.List())
	return exportDoneMsg{path: path, err: err}
}
