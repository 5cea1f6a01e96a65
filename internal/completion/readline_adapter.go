package completion

import (
	"github.com/warm3snow/gnureadline/pkg/readline"
)

// ReadlineCompleter adapts a Registry to the readline.Completer callback
type ReadlineCompleter struct {
	registry *Registry
}

// NewReadlineCompleter creates a new readline-compatible completer
func NewReadlineCompleter(registry *Registry) *ReadlineCompleter {
	return &ReadlineCompleter{
		registry: registry,
	}
}

// Complete implements readline.Completer. Only the word itself matters
// to the sources, so start and end are ignored.
func (r *ReadlineCompleter) Complete(text string, _, _ int) []string {
	return r.registry.Complete(text)
}

// Func returns the completer in the form readline.SetCompleter takes
func (r *ReadlineCompleter) Func() readline.Completer {
	return r.Complete
}
