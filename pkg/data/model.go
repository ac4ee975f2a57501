package data

// Definition is one dictionary entry as returned by the upstream API.
// The JSON tags follow the FreeDictionary response shape; fields the
// upstream omits decode to zero values and simply render as absent.
type Definition struct {
	Word      string     `json:"word"`
	Phonetics []Phonetic `json:"phonetics"`
	Meanings  []Meaning  `json:"meanings"`
}

// Phonetic is a single transcription, optionally with a pronunciation clip.
type Phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio,omitempty"`
}

// Meaning groups senses sharing a part of speech.
type Meaning struct {
	PartOfSpeech string  `json:"partOfSpeech"`
	Senses       []Sense `json:"definitions"`
}

type Sense struct {
	Definition string `json:"definition"`
	Example    string `json:"example,omitempty"`
}

// FavoriteEntry is a bookmarked word together with the definition it had
// when the user saved it. Word is the uniqueness key (exact, case-sensitive).
type FavoriteEntry struct {
	Word       string     `json:"word"`
	Definition Definition `json:"definition"`
}

// AudioURL returns the first phonetic that carries a pronunciation clip,
// or an empty string if none does.
func (d *Definition) AudioURL() string {
	for _, p := range d.Phonetics {
		if p.Audio != "" {
			return p.Audio
		}
	}
	return ""
}

// Transcription returns the first non-empty phonetic text.
func (d *Definition) Transcription() string {
	for _, p := range d.Phonetics {
		if p.Text != "" {
			return p.Text
		}
	}
	return ""
}
