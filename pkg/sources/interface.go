package sources

import (
	"errors"
	"fmt"

	"github.com/kerbaras/wordbook/pkg/data"
)

// ErrNotFound means the upstream has no entry for the word (any non-2xx
// response; the API reports unknown words as 404).
var ErrNotFound = errors.New("word not found")

// TransportError wraps a network or decoding failure talking to the
// upstream.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("dictionary request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type Source interface {
	Lookup(word string) (*data.Definition, error)
}
