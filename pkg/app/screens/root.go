package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/wordbook/pkg/app/styles"
	"github.com/kerbaras/wordbook/pkg/data"
	"github.com/kerbaras/wordbook/pkg/integrations"
	"github.com/kerbaras/wordbook/pkg/services"
)

type screenType int

const (
	favoritesView screenType = iota
	searchView
)

// SwitchScreenMsg asks the root screen to change the active view.
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

type RootScreen struct {
	favorites *data.Favorites
	settings  *data.Settings
	theme     *styles.Theme

	currentView screenType
	favScreen   *FavoritesScreen
	search      *SearchScreen

	width  int
	height int
}

func NewRootScreen(
	favorites *data.Favorites,
	settings *data.Settings,
	lookup *services.Lookup,
	player *services.Player,
	exporter *integrations.EPubBuilder,
) *RootScreen {
	theme := styles.ForName(settings.Theme())

	favScreen := NewFavoritesScreen(favorites, exporter, theme)
	search := NewSearchScreen(lookup, favorites, player, theme)

	return &RootScreen{
		favorites:   favorites,
		settings:    settings,
		theme:       theme,
		currentView: favoritesView,
		favScreen:   favScreen,
		search:      search,
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.favScreen.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		// Global shortcuts stay out of the way while the user is typing a
		// query.
		typing := r.currentView == searchView && r.search.InputFocused()

		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			if !typing {
				return r, tea.Quit
			}
		case "tab":
			r.currentView = (r.currentView + 1) % 2
			if r.currentView == searchView {
				cmd = r.search.Init()
			} else {
				cmd = r.favScreen.Init()
			}
			return r, cmd
		case "t":
			if !typing {
				r.setTheme(r.theme.Toggle())
				return r, nil
			}
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "favorites":
			r.currentView = favoritesView
			cmd = r.favScreen.Init()
		case "search":
			r.currentView = searchView
			if entry, ok := msg.Data.(data.FavoriteEntry); ok {
				r.search.ShowFavorite(entry)
			}
			cmd = r.search.Init()
		}
		return r, cmd
	}

	// Forward message to the active screen.
	switch r.currentView {
	case favoritesView:
		newModel, newCmd := r.favScreen.Update(msg)
		r.favScreen = newModel.(*FavoritesScreen)
		return r, newCmd
	case searchView:
		newModel, newCmd := r.search.Update(msg)
		r.search = newModel.(*SearchScreen)
		return r, newCmd
	}

	return r, cmd
}

// setTheme swaps the active palette everywhere and persists the choice.
// Lookup and favorites state are untouched.
func (r *RootScreen) setTheme(theme *styles.Theme) {
	r.theme = theme
	r.favScreen.SetTheme(theme)
	r.search.SetTheme(theme)
	if err := r.settings.SetTheme(theme.Name); err != nil {
		r.favScreen.err = err
	}
}

func (r *RootScreen) View() string {
	tabs := r.renderTabs()

	var content string
	switch r.currentView {
	case favoritesView:
		content = r.favScreen.View()
	case searchView:
		content = r.search.View()
	}

	return fmt.Sprintf("%s\n\n%s", tabs, content)
}

func (r *RootScreen) renderTabs() string {
	favTab := "Favorites"
	searchTab := "Search"

	if r.currentView == favoritesView {
		favTab = r.theme.ActiveTab.Render(favTab)
		searchTab = r.theme.InactiveTab.Render(searchTab)
	} else {
		favTab = r.theme.InactiveTab.Render(favTab)
		searchTab = r.theme.ActiveTab.Render(searchTab)
	}

	themeTag := r.theme.Muted.Render(fmt.Sprintf(" theme: %s", r.theme.Name))
	return lipgloss.JoinHorizontal(lipgloss.Top, favTab, searchTab, themeTag)
}
