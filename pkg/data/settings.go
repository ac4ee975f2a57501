package data

// ThemeKey is the storage slot holding the display theme preference.
const ThemeKey = "theme"

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Settings exposes the two-valued display preference. It shares a Slot with
// the favorites collection but is otherwise independent of it.
type Settings struct {
	slot Slot
}

func NewSettings(slot Slot) *Settings {
	return &Settings{slot: slot}
}

// Theme returns the stored preference, defaulting to dark.
func (s *Settings) Theme() string {
	v, ok, err := s.slot.Get(ThemeKey)
	if err != nil || !ok {
		return ThemeDark
	}
	if v == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

func (s *Settings) SetTheme(theme string) error {
	if theme != ThemeLight {
		theme = ThemeDark
	}
	return s.slot.Put(ThemeKey, theme)
}
