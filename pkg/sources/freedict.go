package sources

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/kerbaras/wordbook/pkg/data"
	"github.com/kerbaras/wordbook/pkg/utils"
)

const freeDictBaseURL = "https://api.dictionaryapi.dev/api/v2"

// FreeDictionary looks up words against the FreeDictionary API. The API
// returns an array of entries (one per etymology); the first element is
// the definition shown to the user.
type FreeDictionary struct {
	api *utils.API
}

func NewFreeDictionary() *FreeDictionary {
	return &FreeDictionary{api: utils.NewAPI(freeDictBaseURL)}
}

// NewFreeDictionaryWithURL points the client at a custom base URL, for
// tests against a local server.
func NewFreeDictionaryWithURL(baseURL string) *FreeDictionary {
	return &FreeDictionary{api: utils.NewAPI(baseURL)}
}

func (f *FreeDictionary) Lookup(word string) (*data.Definition, error) {
	path := fmt.Sprintf("/entries/en/%s", url.PathEscape(word))

	var entries []data.Definition
	if err := f.api.Get(path, &entries); err != nil {
		var status *utils.StatusError
		if errors.As(err, &status) {
			return nil, ErrNotFound
		}
		return nil, &TransportError{Err: err}
	}

	if len(entries) == 0 {
		return nil, ErrNotFound
	}

	def := entries[0]
	return &def, nil
}
