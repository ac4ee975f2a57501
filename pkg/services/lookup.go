package services

import (
	"errors"
	"strings"
	"sync/atomic"

	"github.com/kerbaras/wordbook/pkg/data"
	"github.com/kerbaras/wordbook/pkg/sources"
)

var (
	// ErrEmptyQuery means the query was empty after trimming; no network
	// call is made.
	ErrEmptyQuery = errors.New("empty query")

	// ErrBusy means a lookup is already in flight. At most one lookup may
	// be outstanding; callers retry after the current one resolves.
	ErrBusy = errors.New("lookup already in progress")
)

// Lookup owns the query/response cycle against the dictionary source.
// It enforces the single-in-flight invariant; retry, timeout and
// cancellation are deliberately absent.
type Lookup struct {
	source sources.Source
	busy   atomic.Bool
}

func NewLookup(source sources.Source) *Lookup {
	return &Lookup{source: source}
}

// Busy reports whether a lookup is outstanding.
func (l *Lookup) Busy() bool {
	return l.busy.Load()
}

// Lookup resolves query to a Definition. The query is trimmed of
// surrounding whitespace first. Errors are ErrEmptyQuery, ErrBusy,
// sources.ErrNotFound or *sources.TransportError; all are terminal and
// the controller stays usable after any of them.
func (l *Lookup) Lookup(query string) (*data.Definition, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	if !l.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer l.busy.Store(false)

	return l.source.Lookup(query)
}
