package screens

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/wordbook/pkg/app/components"
	"github.com/kerbaras/wordbook/pkg/app/styles"
	"github.com/kerbaras/wordbook/pkg/data"
	"github.com/kerbaras/wordbook/pkg/services"
	"github.com/kerbaras/wordbook/pkg/sources"
)

type SearchScreen struct {
	lookup    *services.Lookup
	favorites *data.Favorites
	player    *services.Player

	input     textinput.Model
	card      *components.DefinitionCard
	result    *data.Definition
	searching bool
	theme     *styles.Theme
	width     int
	height    int
	err       error
}

func NewSearchScreen(lookup *services.Lookup, favorites *data.Favorites, player *services.Player, theme *styles.Theme) *SearchScreen {
	ti := textinput.New()
	ti.Placeholder = "Look up a word..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50

	return &SearchScreen{
		lookup:    lookup,
		favorites: favorites,
		player:    player,
		input:     ti,
		card:      components.NewDefinitionCard(theme),
		theme:     theme,
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *SearchScreen) SetTheme(theme *styles.Theme) {
	s.theme = theme
	s.card.Theme = theme
}

// InputFocused reports whether keystrokes currently go to the query field.
func (s *SearchScreen) InputFocused() bool {
	return s.input.Focused()
}

// ShowFavorite re-populates the query and result from a stored entry
// without touching the network.
func (s *SearchScreen) ShowFavorite(entry data.FavoriteEntry) {
	def := entry.Definition
	s.input.SetValue(entry.Word)
	s.result = &def
	s.err = nil
	s.input.Blur()
}

func (s *SearchScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.card.Width = msg.Width

	case tea.KeyMsg:
		// Submit is disabled while a lookup is in flight.
		if s.searching {
			return s, nil
		}

		switch msg.String() {
		case "enter":
			if s.input.Focused() {
				s.searching = true
				return s, s.performLookup(s.input.Value())
			}

		case "esc":
			if s.input.Focused() {
				s.input.Blur()
			} else {
				s.input.Focus()
				cmd = textinput.Blink
			}

		case "f":
			if !s.input.Focused() && s.result != nil {
				_, err := s.favorites.Toggle(s.result.Word, *s.result)
				s.err = err
				return s, nil
			}

		case "p":
			if !s.input.Focused() && s.result != nil {
				if url := s.result.AudioURL(); url != "" {
					s.player.Play(url)
				}
				return s, nil
			}
		}

	case lookupResultMsg:
		s.searching = false
		if msg.err != nil {
			s.err = msg.err
			s.result = nil
		} else {
			s.result = msg.def
			s.err = nil
			s.input.Blur()
		}
	}

	if s.input.Focused() {
		s.input, cmd = s.input.Update(msg)
	}

	return s, cmd
}

func (s *SearchScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := s.theme.Title.Render("🔍 Look Up")

	inputStyle := s.theme.Input
	if s.input.Focused() {
		inputStyle = s.theme.FocusedInput
	}
	inputView := inputStyle.Render(s.input.View())

	var errorMsg string
	if s.err != nil {
		errorMsg = s.theme.StatusError.Render(errorText(s.err))
		errorMsg += "\n\n"
	}

	var resultView string
	if s.searching {
		resultView = s.theme.Pending.Render("Looking up...")
	} else if s.result != nil {
		resultView = s.card.View(s.result, s.favorites.IsFavorite(s.result.Word))
	}

	help := s.theme.Help.Render(
		"enter: look up • esc: switch focus • f: favorite • p: pronounce • t: theme • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s\n\n%s%s\n\n%s",
		header,
		inputView,
		errorMsg,
		resultView,
		help,
	)
}

// errorText maps the lookup error taxonomy to short user-facing messages.
// Upstream error bodies are never shown.
func errorText(err error) string {
	switch {
	case errors.Is(err, services.ErrEmptyQuery):
		return "Type a word first"
	case errors.Is(err, services.ErrBusy):
		return "A lookup is already running"
	case errors.Is(err, sources.ErrNotFound):
		return "No definitions found"
	default:
		return fmt.Sprintf("Error: %s", err)
	}
}

type lookupResultMsg struct {
	def *data.Definition
	err error
}

func (s *SearchScreen) performLookup(query string) tea.Cmd {
	return func() tea.Msg {
		def, err := s.lookup.Lookup(query)
		return lookupResultMsg{def: def, err: err}
	}
}
